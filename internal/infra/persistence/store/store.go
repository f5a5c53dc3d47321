// Package store implements the domain repositories on top of a
// SnapshotStore: each repository serializes its whole record set as one JSON
// snapshot under a fixed key.
package store

import (
	"context"
	"encoding/json"

	"ppoth/internal/domain/entity"
	"ppoth/internal/domain/repository"
	"ppoth/internal/errors"
)

// load reads and decodes the snapshot under key into out.
// repository.ErrSnapshotNotFound passes through untouched so callers can
// seed defaults.
func load(ctx context.Context, s repository.SnapshotStore, key string, out any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return err
		}

		return errors.Wrapf(err, "failed to load snapshot %s", key)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode snapshot %s", key)
	}

	return nil
}

// save encodes in and replaces the snapshot under key.
func save(ctx context.Context, s repository.SnapshotStore, key string, in any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "failed to encode snapshot %s", key)
	}

	if err := s.Put(ctx, key, raw); err != nil {
		return errors.Wrapf(err, "failed to store snapshot %s", key)
	}

	return nil
}

type directoryRepository struct {
	store repository.SnapshotStore
}

// NewDirectoryRepository creates the snapshot-backed directory repository.
func NewDirectoryRepository(s repository.SnapshotStore) repository.DirectoryRepository {
	return &directoryRepository{store: s}
}

func (r *directoryRepository) Load(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := load(ctx, r.store, repository.KeyDirectory, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *directoryRepository) Save(ctx context.Context, categories []entity.Category) error {
	return save(ctx, r.store, repository.KeyDirectory, categories)
}

type settingsRepository struct {
	store repository.SnapshotStore
}

// NewSettingsRepository creates the snapshot-backed settings repository.
func NewSettingsRepository(s repository.SnapshotStore) repository.SettingsRepository {
	return &settingsRepository{store: s}
}

func (r *settingsRepository) Load(ctx context.Context) (*entity.HomepageSettings, error) {
	var settings entity.HomepageSettings
	if err := load(ctx, r.store, repository.KeyHomepage, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.HomepageSettings) error {
	return save(ctx, r.store, repository.KeyHomepage, settings)
}

type pageRepository struct {
	store repository.SnapshotStore
}

// NewPageRepository creates the snapshot-backed CMS page repository.
func NewPageRepository(s repository.SnapshotStore) repository.PageRepository {
	return &pageRepository{store: s}
}

func (r *pageRepository) Load(ctx context.Context) ([]entity.PageContent, error) {
	var pages []entity.PageContent
	if err := load(ctx, r.store, repository.KeyPages, &pages); err != nil {
		return nil, err
	}

	return pages, nil
}

func (r *pageRepository) Save(ctx context.Context, pages []entity.PageContent) error {
	return save(ctx, r.store, repository.KeyPages, pages)
}

type userRepository struct {
	store repository.SnapshotStore
}

// NewUserRepository creates the snapshot-backed account repository.
func NewUserRepository(s repository.SnapshotStore) repository.UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) Load(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := load(ctx, r.store, repository.KeyUsers, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Save(ctx context.Context, users []entity.User) error {
	return save(ctx, r.store, repository.KeyUsers, users)
}
