package hermes

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
)

type recordingClient struct {
	subjects []string
	payloads []interface{}
	err      error
}

func (c *recordingClient) Publish(_ context.Context, subject string, data interface{}) error {
	c.subjects = append(c.subjects, subject)
	c.payloads = append(c.payloads, data)
	return c.err
}
func (c *recordingClient) Connected() bool { return true }
func (c *recordingClient) Close()          {}

func TestSubjects(t *testing.T) {
	assert.Equal(t, "cobalt.design.abc.created", SubjectDesignCreated("abc"))
	assert.Equal(t, "cobalt.design.abc.updated", SubjectDesignUpdated("abc"))
	assert.Equal(t, "cobalt.design.abc.deleted", SubjectDesignDeleted("abc"))
	assert.Equal(t, "cobalt.scope.refined.computed", SubjectScopeComputed(scoring.StageRefined))
}

func TestStreamCoversSubjects(t *testing.T) {
	prefixes := map[string]bool{}
	for _, s := range StreamSubjects {
		prefixes[s[:len(s)-1]] = true
	}
	for _, subj := range []string{SubjectDesignCreated("x"), SubjectScopeComputed("initial")} {
		matched := false
		for p := range prefixes {
			if len(subj) > len(p) && subj[:len(p)] == p {
				matched = true
			}
		}
		assert.True(t, matched, subj)
	}
}

func TestPublishBestEffort(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := context.Background()

	assert.True(t, PublishBestEffort(ctx, nil, logger, "cobalt.design.x.created", DesignEvent{DesignID: "x"}))
	assert.Empty(t, buf.String())

	c := &recordingClient{}
	assert.True(t, PublishBestEffort(ctx, c, logger, "cobalt.design.x.created", DesignEvent{DesignID: "x"}))
	require.Len(t, c.subjects, 1)
	assert.Empty(t, buf.String())

	c.err = errors.New("no responders")
	assert.False(t, PublishBestEffort(ctx, c, logger, "cobalt.design.x.updated", DesignEvent{DesignID: "x"}))
	assert.Contains(t, buf.String(), "event publish failed")
	assert.Contains(t, buf.String(), "cobalt.design.x.updated")
}

func TestNewScopeComputedEvent(t *testing.T) {
	results := []scoring.ScoreResult{
		{ObjectiveID: "APO12", FinalScore: 100},
		{ObjectiveID: "APO13", FinalScore: 95},
		{ObjectiveID: "EDM01", FinalScore: 10},
	}
	factors := []string{"df1", "df2"}
	ev := NewScopeComputedEvent(scoring.StageInitial, factors, results, 2)
	factors[0] = "mutated"

	assert.Equal(t, "initial", ev.Stage)
	assert.Equal(t, []string{"df1", "df2"}, ev.Factors)
	assert.Equal(t, 3, ev.Objectives)
	assert.Equal(t, []ObjectiveScore{{"APO12", 100}, {"APO13", 95}}, ev.TopObjectives)
	assert.False(t, ev.Timestamp.IsZero())

	ev = NewScopeComputedEvent(scoring.StageInitial, nil, results[:1], 5)
	assert.Len(t, ev.TopObjectives, 1)
}
