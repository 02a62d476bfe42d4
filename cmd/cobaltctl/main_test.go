package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const df1YAML = `
df1:
  growth: 5
  innovation: 1
  cost: 3
  client: 3
df3:
  risk11: {impact: 5, likelihood: 5}
`

func TestObjectivesTable(t *testing.T) {
	out, err := run(t, "objectives")
	require.NoError(t, err)
	assert.Contains(t, out, "EDM01")
	assert.Contains(t, out, "MEA04")
}

func TestFactorsJSON(t *testing.T) {
	out, err := run(t, "factors", "--json")
	require.NoError(t, err)
	var factors []catalog.Factor
	require.NoError(t, json.Unmarshal([]byte(out), &factors))
	assert.Len(t, factors, 10)
}

func TestDefaultsRoundTripAsInputsFile(t *testing.T) {
	out, err := run(t, "defaults")
	require.NoError(t, err)

	path := writeFile(t, "defaults.yaml", out)
	out, err = run(t, "scope", "--inputs", path, "--json")
	require.NoError(t, err)

	var results []scoring.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 40)
	for _, r := range results {
		assert.Zero(t, r.FinalScore, r.ObjectiveID)
	}
}

func TestScoreCommand(t *testing.T) {
	path := writeFile(t, "inputs.yaml", df1YAML)

	out, err := run(t, "score", "df1", "--inputs", path, "--json")
	require.NoError(t, err)
	var resp struct {
		FactorID   string                `json:"factor_id"`
		Results    []scoring.ScoreResult `json:"results"`
		Statistics *scoring.Summary      `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "df1", resp.FactorID)
	assert.Equal(t, "APO02", resp.Results[0].ObjectiveID)
	assert.Equal(t, 32.5, resp.Results[0].FinalScore)
	require.NotNil(t, resp.Statistics)
	assert.Equal(t, 3.0, resp.Statistics.Average)

	out, err = run(t, "score", "df1", "--inputs", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Enterprise Strategy")
	assert.Contains(t, out, "32.5")
}

func TestScorePercentageFactorShowsTotal(t *testing.T) {
	path := writeFile(t, "inputs.yaml", "df8:\n  outsourcing: 50\n  cloud: 30\n  insourced: 10\n")

	out, err := run(t, "score", "df8", "--inputs", path)
	require.NoError(t, err)
	assert.Contains(t, out, "total: 90% (does not sum to 100)")

	out, err = run(t, "score", "df8", "--inputs", path, "--json")
	require.NoError(t, err)
	var resp struct {
		PercentageTotal *float64 `json:"percentage_total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.PercentageTotal)
	assert.Equal(t, 90.0, *resp.PercentageTotal)

	out, err = run(t, "score", "df1", "--json")
	require.NoError(t, err)
	assert.NotContains(t, out, "percentage_total")
}

func TestScopeWithWeights(t *testing.T) {
	path := writeFile(t, "inputs.yaml", df1YAML)

	out, err := run(t, "scope", "--inputs", path, "--json")
	require.NoError(t, err)
	var plain []scoring.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &plain))
	assert.Equal(t, 45.0, byID(plain)["APO12"].RawScore)

	out, err = run(t, "scope", "--inputs", path, "--weight", "df3=2", "--json")
	require.NoError(t, err)
	var weighted []scoring.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &weighted))
	assert.NotEqual(t, byID(plain)["APO12"].RawScore, byID(weighted)["APO12"].RawScore)

	out, err = run(t, "scope", "--inputs", path, "--weight", "df3=0", "--json")
	require.NoError(t, err)
	var zero []scoring.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &zero))
	assert.Equal(t, byID(plain)["APO12"].RawScore, byID(zero)["APO12"].RawScore)
}

func TestScopeRefinedTable(t *testing.T) {
	out, err := run(t, "scope", "--refined")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "refined scope"), out)
}

func TestSessionDrivesFinalAndCanvas(t *testing.T) {
	path := writeFile(t, "session.json", `{
		"inputs": {"df1": {"growth": 5, "innovation": 1, "cost": 3, "client": 3}},
		"overrides": {"EDM01": 90},
		"adjustments": {"EDM01": {"adjustment": 10, "agreed_capability": 5}}
	}`)

	out, err := run(t, "final", "--session", path, "--json")
	require.NoError(t, err)
	var final []scoring.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &final))
	edm01 := byID(final)["EDM01"]
	require.NotNil(t, edm01.OverrideScore)
	assert.Equal(t, 90.0, *edm01.OverrideScore)

	out, err = run(t, "canvas", "--session", path, "--json")
	require.NoError(t, err)
	var canvas scoring.Canvas
	require.NoError(t, json.Unmarshal([]byte(out), &canvas))
	assert.Equal(t, "EDM01", canvas.Rows[0].ObjectiveID)
	assert.Equal(t, 5, canvas.Rows[0].AgreedCapability)
	assert.Equal(t, canvas.Rows[0].RefinedScope+10, canvas.Rows[0].ConcludedScope)
}

func TestStatsCommand(t *testing.T) {
	path := writeFile(t, "inputs.yaml", df1YAML)
	out, err := run(t, "stats", "df1", "--inputs", path)
	require.NoError(t, err)
	assert.Contains(t, out, "average:        3.00")

	_, err = run(t, "stats", "df9")
	assert.ErrorContains(t, err, "not a rating factor")
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "score", "df77")
	assert.ErrorContains(t, err, "unknown factor")

	_, err = run(t, "scope", "--weight", "df3")
	assert.ErrorContains(t, err, "--weight")

	_, err = run(t, "scope", "--inputs", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read")

	bad := writeFile(t, "bad.yaml", "df3:\n  risk11: 4\n")
	_, err = run(t, "scope", "--inputs", bad)
	assert.ErrorContains(t, err, "invalid input")

	badSession := writeFile(t, "session.yaml", "overrides:\n  EDM01: 300\n")
	_, err = run(t, "final", "--session", badSession)
	assert.Error(t, err)
}

func byID(results []scoring.ScoreResult) map[string]scoring.ScoreResult {
	out := make(map[string]scoring.ScoreResult, len(results))
	for _, r := range results {
		out[r.ObjectiveID] = r
	}
	return out
}
