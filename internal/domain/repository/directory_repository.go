package repository

import (
	"context"

	"ppoth/internal/domain/entity"
)

// DirectoryRepository persists the full category hierarchy as one snapshot.
// The application layer depends on this interface, not the concrete
// implementation.
type DirectoryRepository interface {
	// Load retrieves the whole hierarchy. Returns ErrSnapshotNotFound when
	// the directory has never been seeded.
	Load(ctx context.Context) ([]entity.Category, error)

	// Save replaces the whole hierarchy.
	Save(ctx context.Context, categories []entity.Category) error
}

// SettingsRepository persists the homepage settings singleton.
type SettingsRepository interface {
	Load(ctx context.Context) (*entity.HomepageSettings, error)
	Save(ctx context.Context, settings *entity.HomepageSettings) error
}

// PageRepository persists the list of CMS page records.
type PageRepository interface {
	Load(ctx context.Context) ([]entity.PageContent, error)
	Save(ctx context.Context, pages []entity.PageContent) error
}

// UserRepository persists the account list.
type UserRepository interface {
	Load(ctx context.Context) ([]entity.User, error)
	Save(ctx context.Context, users []entity.User) error
}
