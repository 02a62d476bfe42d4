package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/MikeSquared-Agency/Cobalt/internal/metrics"
	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
	"github.com/MikeSquared-Agency/Cobalt/internal/store"
)

// MockStore implements store.Store for handler tests.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateDesign(ctx context.Context, d *store.Design) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockStore) GetDesign(ctx context.Context, id uuid.UUID) (*store.Design, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Design), args.Error(1)
}

func (m *MockStore) ListDesigns(ctx context.Context, filter store.DesignFilter) ([]*store.DesignSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.DesignSummary), args.Error(1)
}

func (m *MockStore) UpdateDesign(ctx context.Context, d *store.Design) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockStore) DeleteDesign(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) Close() error { return nil }

// MockHermes implements hermes.Client.
type MockHermes struct {
	mock.Mock
}

func (m *MockHermes) Publish(_ context.Context, subject string, data interface{}) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func (m *MockHermes) Connected() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockHermes) Close() {}

type testEnv struct {
	router  http.Handler
	store   *MockStore
	hermes  *MockHermes
	metrics *metrics.Metrics
}

const testAdminToken = "test-token"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store:   &MockStore{},
		hermes:  &MockHermes{},
		metrics: metrics.New(),
	}
	logger := discardLogger()
	sc := scoring.NewScorer(logger, env.metrics)
	env.router = NewRouter(env.store, env.hermes, sc, env.metrics, Options{
		AdminToken:         testAdminToken,
		RateLimitPerSecond: 1000,
		RateLimitBurst:     1000,
		DefaultWeights:     scoring.DefaultFactorWeights(),
		TopObjectives:      3,
	}, logger)
	t.Cleanup(func() {
		env.store.AssertExpectations(t)
		env.hermes.AssertExpectations(t)
	})
	return env
}
