package impl

import (
	"context"
	"testing"

	"ppoth/internal/domain/entity"
	"ppoth/internal/domain/service"
	"ppoth/internal/infra/persistence/store"
	"ppoth/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contentFixtures struct {
	service  usecase.ContentUsecase
	notifier *recordingNotifier
}

func createTestContentService() contentFixtures {
	snapshots := newTestStore()
	notifier := &recordingNotifier{}
	svc := NewContentService(
		store.NewSettingsRepository(snapshots),
		store.NewPageRepository(snapshots),
		notifier,
		newTestLogger(),
	)

	return contentFixtures{service: svc, notifier: notifier}
}

func TestContentService_Settings_SeedsDefaults(t *testing.T) {
	fx := createTestContentService()
	ctx := context.Background()

	settings, err := fx.service.Settings(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, settings.HeroImages)
	assert.NotEmpty(t, settings.SpotlightPartnerID)
	assert.NotEmpty(t, settings.LogoURL)
	assert.NotEmpty(t, settings.FooterLogoURL)
}

func TestContentService_Settings_RoundTrip(t *testing.T) {
	fx := createTestContentService()
	ctx := context.Background()

	saved := &entity.HomepageSettings{
		HeroImages:         []string{"https://example.com/hero.jpg"},
		HeroVideoURL:       "https://example.com/hero.mp4",
		SpotlightPartnerID: "biz_pool_1",
		LogoURL:            "/assets/new-logo.png",
		FooterLogoURL:      "/assets/new-footer.png",
	}
	require.NoError(t, fx.service.SaveSettings(ctx, saved))
	assert.Contains(t, fx.notifier.published(), service.TopicSettingsChanged)

	loaded, err := fx.service.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestContentService_Settings_FooterLogoBackfill(t *testing.T) {
	fx := createTestContentService()
	ctx := context.Background()

	// A record written before the footer logo existed.
	require.NoError(t, fx.service.SaveSettings(ctx, &entity.HomepageSettings{
		HeroImages: []string{"https://example.com/hero.jpg"},
		LogoURL:    "/assets/main-logo.png",
	}))

	loaded, err := fx.service.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/assets/main-logo.png", loaded.FooterLogoURL)
}

func TestContentService_Page_FallbackChain(t *testing.T) {
	fx := createTestContentService()
	ctx := context.Background()

	// Known slug resolves from the seeded store.
	about, err := fx.service.Page(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, "about", about.Slug)
	assert.NotEmpty(t, about.Title)

	// Unknown slug yields a minimal record, never an error.
	unknown, err := fx.service.Page(ctx, "press")
	require.NoError(t, err)
	assert.Equal(t, "press", unknown.Slug)
	assert.Equal(t, "Untitled", unknown.Title)
}

func TestContentService_SavePage_Upserts(t *testing.T) {
	fx := createTestContentService()
	ctx := context.Background()

	require.NoError(t, fx.service.SavePage(ctx, &entity.PageContent{
		Slug:  "about",
		Title: "Our Story",
		Body:  "Updated copy.",
	}))
	assert.Contains(t, fx.notifier.published(), service.PageChangedTopic("about"))

	page, err := fx.service.Page(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, "Our Story", page.Title)

	// New slugs append rather than replace.
	require.NoError(t, fx.service.SavePage(ctx, &entity.PageContent{Slug: "faq", Title: "FAQ"}))

	faq, err := fx.service.Page(ctx, "faq")
	require.NoError(t, err)
	assert.Equal(t, "FAQ", faq.Title)
}

func TestContentService_SavePage_RequiresSlug(t *testing.T) {
	fx := createTestContentService()
	ctx := context.Background()

	err := fx.service.SavePage(ctx, &entity.PageContent{Title: "No slug"})
	require.Error(t, err)
}
