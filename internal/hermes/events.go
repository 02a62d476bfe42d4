package hermes

import (
	"context"
	"log/slog"
	"time"

	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
)

type DesignEvent struct {
	DesignID  string    `json:"design_id"`
	Name      string    `json:"name,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ObjectiveScore is one entry of the top objectives carried by ScopeComputedEvent.
type ObjectiveScore struct {
	ObjectiveID string  `json:"objective_id"`
	Score       float64 `json:"score"`
}

type ScopeComputedEvent struct {
	Stage         string           `json:"stage"`
	DesignID      string           `json:"design_id,omitempty"`
	RequestID     string           `json:"request_id,omitempty"`
	Factors       []string         `json:"factors"`
	Objectives    int              `json:"objectives"`
	TopObjectives []ObjectiveScore `json:"top_objectives,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
}

// PublishBestEffort publishes data when c is set and only logs failures.
// It reports false when a publish was attempted and failed.
func PublishBestEffort(ctx context.Context, c Client, logger *slog.Logger, subject string, data interface{}) bool {
	if c == nil {
		return true
	}
	if err := c.Publish(ctx, subject, data); err != nil {
		if logger != nil {
			logger.Warn("event publish failed", "subject", subject, "error", err)
		}
		return false
	}
	return true
}

// NewScopeComputedEvent summarises an aggregation result. results must be
// sorted by score, as the aggregator returns them; the first top rows are
// carried.
func NewScopeComputedEvent(stage string, factorIDs []string, results []scoring.ScoreResult, top int) ScopeComputedEvent {
	ev := ScopeComputedEvent{
		Stage:      stage,
		Factors:    append([]string(nil), factorIDs...),
		Objectives: len(results),
		Timestamp:  time.Now().UTC(),
	}
	for i := 0; i < len(results) && i < top; i++ {
		ev.TopObjectives = append(ev.TopObjectives, ObjectiveScore{
			ObjectiveID: results[i].ObjectiveID,
			Score:       results[i].FinalScore,
		})
	}
	return ev
}
