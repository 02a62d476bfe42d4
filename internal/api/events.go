package api

import (
	"context"
	"log/slog"

	"github.com/MikeSquared-Agency/Cobalt/internal/hermes"
	"github.com/MikeSquared-Agency/Cobalt/internal/metrics"
)

type eventPublisher struct {
	client  hermes.Client
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func (p eventPublisher) publish(ctx context.Context, subject string, data interface{}) {
	if !hermes.PublishBestEffort(ctx, p.client, p.logger, subject, data) && p.metrics != nil {
		p.metrics.EventPublishFailed()
	}
}
