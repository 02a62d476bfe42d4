package scoring

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
)

// Recorder receives scoring telemetry. Implementations must be safe for
// concurrent use.
type Recorder interface {
	ObserveFactor(factorID string, d time.Duration)
	DegradedObjective(factorID string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveFactor(string, time.Duration) {}
func (nopRecorder) DegradedObjective(string)            {}

// Scorer runs the per-factor scorers and the scope aggregations. It holds no
// state between calls; every call is a full 40-objective pass.
type Scorer struct {
	logger   *slog.Logger
	recorder Recorder
}

// NewScorer creates a Scorer. A nil recorder discards telemetry.
func NewScorer(logger *slog.Logger, recorder Recorder) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Scorer{logger: logger, recorder: recorder}
}

// ScoreFactor scores one design factor for every objective, sorted by final
// score descending. An absent or unknown factor yields all-zero rows.
func (s *Scorer) ScoreFactor(inputs UserInputs, factorID string) []ScoreResult {
	start := time.Now()
	defer func() { s.recorder.ObserveFactor(factorID, time.Since(start)) }()

	f, known := catalog.LookupFactor(factorID)
	in, present := inputs[factorID]
	if !known || !present {
		return zeroResults()
	}

	row := newObjectiveFunc(f, in)
	objs := catalog.Objectives()
	results := make([]ScoreResult, len(objs))
	for i, obj := range objs {
		results[i] = s.guard(factorID, obj, row)
	}
	sortByFinal(results)
	return results
}

// guard isolates one objective: a panic or a non-finite score degrades that
// row to zero instead of failing the other 39.
func (s *Scorer) guard(factorID string, obj catalog.Objective, fn objectiveFunc) (res ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			s.degrade(factorID, obj, fmt.Sprint(r))
			res = zeroResult(obj)
		}
	}()

	res = fn(obj)
	if !res.finite() {
		s.degrade(factorID, obj, "non-finite score")
		return zeroResult(obj)
	}
	return res
}

func (s *Scorer) degrade(factorID string, obj catalog.Objective, reason string) {
	s.logger.Warn("objective score degraded to zero",
		"factor_id", factorID,
		"objective_id", obj.ID,
		"reason", reason,
	)
	s.recorder.DegradedObjective(factorID)
}

func sortByFinal(results []ScoreResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
}

func sortByEffective(results []ScoreResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].EffectiveScore() > results[j].EffectiveScore()
	})
}
