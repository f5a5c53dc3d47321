package store

import (
	"context"
	"testing"

	"ppoth/internal/domain/entity"
	"ppoth/internal/domain/repository"
	"ppoth/internal/infra/persistence/snapshot"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryRepository_RoundTrip(t *testing.T) {
	repo := NewDirectoryRepository(snapshot.NewMemoryStore())
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.True(t, errors.Is(err, repository.ErrSnapshotNotFound))

	categories := []entity.Category{
		{
			ID:   "cat_test",
			Name: "Test",
			SubCategories: []entity.SubCategory{
				{ID: "sub_test", Name: "Sub", Businesses: []entity.Business{
					{ID: "biz_test", Name: "Biz", Rating: 4.5, Services: []string{"one"}},
				}},
			},
		},
	}
	require.NoError(t, repo.Save(ctx, categories))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, loaded)
}

func TestDirectoryRepository_OrderSurvivesPersistence(t *testing.T) {
	repo := NewDirectoryRepository(snapshot.NewMemoryStore())
	ctx := context.Background()

	categories := []entity.Category{
		{ID: "cat_b", Name: "B", SubCategories: []entity.SubCategory{
			{ID: "sub_2", Name: "Two", Businesses: []entity.Business{}},
			{ID: "sub_1", Name: "One", Businesses: []entity.Business{}},
		}},
		{ID: "cat_a", Name: "A", SubCategories: []entity.SubCategory{}},
	}
	require.NoError(t, repo.Save(ctx, categories))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "cat_b", loaded[0].ID)
	assert.Equal(t, "sub_2", loaded[0].SubCategories[0].ID)
}

func TestSettingsRepository_RoundTrip(t *testing.T) {
	repo := NewSettingsRepository(snapshot.NewMemoryStore())
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.True(t, errors.Is(err, repository.ErrSnapshotNotFound))

	settings := &entity.HomepageSettings{
		HeroImages:         []string{"/a.jpg", "/b.jpg"},
		SpotlightPartnerID: "biz_test",
		LogoURL:            "/logo.png",
		FooterLogoURL:      "/footer.png",
	}
	require.NoError(t, repo.Save(ctx, settings))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestUserRepository_RoundTrip(t *testing.T) {
	repo := NewUserRepository(snapshot.NewMemoryStore())
	ctx := context.Background()

	users := []entity.User{
		{ID: "u_1", Email: "a@example.com", Role: entity.RoleAdmin},
		{ID: "u_2", Email: "b@example.com", Role: entity.RolePartner, BusinessID: "biz_test", PasswordHash: "$2a$..."},
	}
	require.NoError(t, repo.Save(ctx, users))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, loaded)
}

func TestPageRepository_RoundTrip(t *testing.T) {
	repo := NewPageRepository(snapshot.NewMemoryStore())
	ctx := context.Background()

	pages := []entity.PageContent{
		{Slug: "home", Title: "Home", Body: "Welcome"},
		{Slug: "about", Title: "About", Subtitle: "Who we are"},
	}
	require.NoError(t, repo.Save(ctx, pages))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, pages, loaded)
}
