package usecase

import (
	"context"

	"ppoth/internal/domain/entity"
)

// MetricsUsecase increments per-business telemetry counters. Increments on
// unknown business ids are dropped silently: telemetry is best-effort and
// must never fail a page view.
type MetricsUsecase interface {
	Increment(ctx context.Context, businessID string, kind entity.MetricKind) error
}
