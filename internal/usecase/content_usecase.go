package usecase

import (
	"context"

	"ppoth/internal/domain/entity"
)

// ContentUsecase owns the homepage settings singleton and the CMS page
// records.
type ContentUsecase interface {
	// Settings returns the homepage settings, seeding defaults on first
	// access and back-filling the footer logo from the main logo.
	Settings(ctx context.Context) (*entity.HomepageSettings, error)

	// SaveSettings replaces the settings record.
	SaveSettings(ctx context.Context, settings *entity.HomepageSettings) error

	// Page returns the CMS record for slug, falling back to the built-in
	// default for known slugs and a minimal empty record otherwise. It
	// never fails on an unknown slug.
	Page(ctx context.Context, slug string) (*entity.PageContent, error)

	// SavePage upserts a CMS record by slug.
	SavePage(ctx context.Context, content *entity.PageContent) error
}
