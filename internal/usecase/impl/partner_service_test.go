package impl

import (
	"context"
	"testing"

	domainerrors "ppoth/internal/domain/errors"
	"ppoth/internal/infra/qrcode"
	"ppoth/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type partnerFixtures struct {
	service   usecase.PartnerUsecase
	directory usecase.DirectoryUsecase
}

func createTestPartnerService(t *testing.T) partnerFixtures {
	authFx := createTestAuthService(t)
	dirFx := createTestDirectoryService()

	svc := NewPartnerService(
		authFx.service,
		dirFx.service,
		qrcode.NewQRCodeService(256, "M", "https://ppoth.example"),
		newTestLogger(),
	)

	return partnerFixtures{service: svc, directory: dirFx.service}
}

func TestPartnerService_Dashboard(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	dashboard, err := fx.service.Dashboard(ctx, "u_partner")
	require.NoError(t, err)
	assert.Equal(t, "biz_land_1", dashboard.Business.ID)
	assert.Equal(t, "cat_outdoor", dashboard.CategoryID)
	assert.Equal(t, "sub_landscaper", dashboard.SubCategoryID)
	assert.NotNil(t, dashboard.Business.Metrics)
}

func TestPartnerService_Dashboard_RequiresPartnerRole(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	_, err := fx.service.Dashboard(ctx, "u_admin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = fx.service.Dashboard(ctx, "u_user")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPartnerService_Dashboard_UnboundListing(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	// The bound listing disappears underneath the partner account.
	require.NoError(t, fx.directory.DeleteBusiness(ctx, "biz_land_1"))

	_, err := fx.service.Dashboard(ctx, "u_partner")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPartnerUnbound))
}

func TestPartnerService_UpdateListing(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	phone := "631-555-0000"
	bio := "Three generations of estate gardening."
	services := []string{"Hedges", "Lawns"}

	updated, err := fx.service.UpdateListing(ctx, "u_partner", usecase.UpdateListingInput{
		Phone:    &phone,
		BioText:  &bio,
		Services: &services,
	})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, bio, updated.BioText)
	assert.Equal(t, services, updated.Services)

	// The edit persists and the listing stays where it was.
	location, err := fx.directory.Locate(ctx, "biz_land_1")
	require.NoError(t, err)
	assert.Equal(t, phone, location.Business.Phone)
	assert.Equal(t, "sub_landscaper", location.SubCategoryID)
}

func TestPartnerService_ShareQR(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	png, err := fx.service.ShareQR(ctx, "u_partner")
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic number.
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}
