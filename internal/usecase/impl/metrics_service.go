package impl

import (
	"context"
	"log/slog"

	"ppoth/internal/domain/entity"
	domainerrors "ppoth/internal/domain/errors"
	"ppoth/internal/domain/repository"
	"ppoth/internal/domain/service"
	"ppoth/internal/usecase"

	"github.com/pkg/errors"
)

// metricsService implements the MetricsUsecase interface.
type metricsService struct {
	lock     *DirectoryLock
	repo     repository.DirectoryRepository
	notifier service.ChangeNotifier
	logger   *slog.Logger
}

// NewMetricsService is the constructor for metricsService.
func NewMetricsService(
	lock *DirectoryLock,
	repo repository.DirectoryRepository,
	notifier service.ChangeNotifier,
	logger *slog.Logger,
) usecase.MetricsUsecase {
	return &metricsService{
		lock:     lock,
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Increment bumps one counter on one listing. Unknown business ids are a
// silent no-op: telemetry must never break the page that reported it.
func (srv *metricsService) Increment(ctx context.Context, businessID string, kind entity.MetricKind) error {
	if !kind.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown metric kind: "+kind.String())
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	categories, err := srv.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			// Nothing to count against yet.
			return nil
		}

		return errors.Wrap(err, "failed to load directory")
	}

	found := false

	for ci := range categories {
		for si := range categories[ci].SubCategories {
			businesses := categories[ci].SubCategories[si].Businesses
			for bi := range businesses {
				if businesses[bi].ID != businessID {
					continue
				}

				metrics := businesses[bi].EnsureMetrics()
				switch kind {
				case entity.MetricView:
					metrics.Views++
				case entity.MetricContact:
					metrics.ContactClicks++
				case entity.MetricImpression:
					metrics.Impressions++
				}
				found = true
			}
		}
	}

	if !found {
		srv.logger.Debug("Dropped metric for unknown business", "businessID", businessID, "kind", kind.String())

		return nil
	}

	if err := srv.repo.Save(ctx, categories); err != nil {
		return errors.Wrap(err, "failed to save directory")
	}

	srv.notifier.Publish(service.TopicDirectoryChanged)

	return nil
}
