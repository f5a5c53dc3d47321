package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"ppoth/internal/domain/entity"
	domainerrors "ppoth/internal/domain/errors"
	"ppoth/internal/domain/repository"
	"ppoth/internal/domain/service"
	"ppoth/internal/seed"
	"ppoth/internal/usecase"

	"github.com/pkg/errors"
)

// contentService implements the ContentUsecase interface. Settings and
// pages live in separate snapshot records, each guarded by its own lock.
type contentService struct {
	settingsMu   sync.Mutex
	pagesMu      sync.Mutex
	settingsRepo repository.SettingsRepository
	pageRepo     repository.PageRepository
	notifier     service.ChangeNotifier
	logger       *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(
	settingsRepo repository.SettingsRepository,
	pageRepo repository.PageRepository,
	notifier service.ChangeNotifier,
	logger *slog.Logger,
) usecase.ContentUsecase {
	return &contentService{
		settingsRepo: settingsRepo,
		pageRepo:     pageRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// Settings returns the homepage settings, seeding defaults on first
// access. Records written before the footer logo existed get it
// back-filled from the main logo; the migration is applied on read and
// only persisted by the next save.
func (srv *contentService) Settings(ctx context.Context) (*entity.HomepageSettings, error) {
	srv.settingsMu.Lock()
	defer srv.settingsMu.Unlock()

	settings, err := srv.settingsRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			return nil, errors.Wrap(err, "failed to load homepage settings")
		}

		settings = seed.HomepageSettings()
		if err := srv.settingsRepo.Save(ctx, settings); err != nil {
			return nil, errors.Wrap(err, "failed to persist seed homepage settings")
		}

		srv.logger.Info("Seeded homepage settings")
	}

	out := settings.Clone()
	if out.LogoURL == "" {
		out.LogoURL = seed.HomepageSettings().LogoURL
	}
	if out.FooterLogoURL == "" {
		out.FooterLogoURL = out.LogoURL
	}

	return &out, nil
}

// SaveSettings replaces the settings record.
func (srv *contentService) SaveSettings(ctx context.Context, settings *entity.HomepageSettings) error {
	if settings == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "settings payload is required")
	}

	srv.settingsMu.Lock()
	defer srv.settingsMu.Unlock()

	stored := settings.Clone()
	if err := srv.settingsRepo.Save(ctx, &stored); err != nil {
		return errors.Wrap(err, "failed to save homepage settings")
	}

	srv.notifier.Publish(service.TopicSettingsChanged)

	return nil
}

// Page returns the CMS record for slug. Lookup order: the stored record,
// then the built-in default for known slugs, then a minimal empty record.
// Unknown slugs never fail.
func (srv *contentService) Page(ctx context.Context, slug string) (*entity.PageContent, error) {
	srv.pagesMu.Lock()
	defer srv.pagesMu.Unlock()

	pages, err := srv.loadOrSeedPages(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range pages {
		if p.Slug == slug {
			page := p

			return &page, nil
		}
	}

	for _, p := range seed.Pages() {
		if p.Slug == slug {
			page := p

			return &page, nil
		}
	}

	return &entity.PageContent{Slug: slug, Title: "Untitled"}, nil
}

// SavePage upserts a CMS record by slug.
func (srv *contentService) SavePage(ctx context.Context, content *entity.PageContent) error {
	if content == nil || strings.TrimSpace(content.Slug) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "page slug is required")
	}

	srv.pagesMu.Lock()
	defer srv.pagesMu.Unlock()

	pages, err := srv.loadOrSeedPages(ctx)
	if err != nil {
		return err
	}

	replaced := false

	for i := range pages {
		if pages[i].Slug == content.Slug {
			pages[i] = *content
			replaced = true

			break
		}
	}
	if !replaced {
		pages = append(pages, *content)
	}

	if err := srv.pageRepo.Save(ctx, pages); err != nil {
		return errors.Wrap(err, "failed to save pages")
	}

	srv.notifier.Publish(service.PageChangedTopic(content.Slug))

	return nil
}

func (srv *contentService) loadOrSeedPages(ctx context.Context) ([]entity.PageContent, error) {
	pages, err := srv.pageRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			return nil, errors.Wrap(err, "failed to load pages")
		}

		pages = seed.Pages()
		if err := srv.pageRepo.Save(ctx, pages); err != nil {
			return nil, errors.Wrap(err, "failed to persist seed pages")
		}

		srv.logger.Info("Seeded page content", "pages", len(pages))
	}

	return pages, nil
}
