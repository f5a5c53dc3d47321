package impl

import (
	"context"
	"log/slog"

	"ppoth/internal/domain/entity"
	domainerrors "ppoth/internal/domain/errors"
	"ppoth/internal/domain/service"
	"ppoth/internal/usecase"

	"github.com/pkg/errors"
)

// partnerService implements the PartnerUsecase interface. It composes the
// auth and directory usecases rather than touching the snapshots itself,
// so every mutation goes through the same serialized path as admin edits.
type partnerService struct {
	auth      usecase.AuthUsecase
	directory usecase.DirectoryUsecase
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(
	auth usecase.AuthUsecase,
	directory usecase.DirectoryUsecase,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.PartnerUsecase {
	return &partnerService{
		auth:      auth,
		directory: directory,
		qrService: qrService,
		logger:    logger,
	}
}

// resolve looks up the caller and verifies they are a partner bound to an
// existing listing.
func (srv *partnerService) resolve(ctx context.Context, userID string) (*usecase.BusinessLocation, error) {
	user, err := srv.auth.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != entity.RolePartner {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "partner role required")
	}

	if user.BusinessID == "" {
		return nil, errors.Wrap(domainerrors.ErrPartnerUnbound, "account has no listing")
	}

	location, err := srv.directory.Locate(ctx, user.BusinessID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPartnerUnbound, "listing no longer exists: "+user.BusinessID)
		}

		return nil, err
	}

	return location, nil
}

// Dashboard returns the caller's listing with live metrics and its
// position in the directory.
func (srv *partnerService) Dashboard(ctx context.Context, userID string) (*usecase.PartnerDashboard, error) {
	location, err := srv.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	business := location.Business
	business.EnsureMetrics()

	return &usecase.PartnerDashboard{
		Business:      &business,
		CategoryID:    location.CategoryID,
		SubCategoryID: location.SubCategoryID,
	}, nil
}

// UpdateListing applies the partner-editable fields to the caller's own
// listing. The listing stays in its current category.
func (srv *partnerService) UpdateListing(ctx context.Context, userID string, input usecase.UpdateListingInput) (*entity.Business, error) {
	location, err := srv.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	business := location.Business

	if input.Phone != nil {
		business.Phone = *input.Phone
	}
	if input.Email != nil {
		business.Email = *input.Email
	}
	if input.Website != nil {
		business.Website = *input.Website
	}
	if input.BioText != nil {
		business.BioText = *input.BioText
	}
	if input.Services != nil {
		business.Services = append([]string(nil), (*input.Services)...)
	}
	if input.ImageURL != nil {
		business.ImageURL = *input.ImageURL
	}

	updated, err := srv.directory.UpsertBusiness(ctx, &usecase.UpsertBusinessInput{
		Business:      business,
		CategoryID:    location.CategoryID,
		SubCategoryID: location.SubCategoryID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}

	srv.logger.Info("Partner updated listing", "userID", userID, "businessID", updated.ID)

	return updated, nil
}

// ShareQR renders a QR code pointing at the caller's public listing page.
func (srv *partnerService) ShareQR(ctx context.Context, userID string) ([]byte, error) {
	location, err := srv.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateShareQR(location.Business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}
