package usecase

import (
	"context"

	"ppoth/internal/domain/entity"
)

// PartnerDashboard is everything the partner console needs to render:
// the partner's own listing plus where it sits in the directory.
type PartnerDashboard struct {
	Business      *entity.Business `json:"business"`
	CategoryID    string           `json:"categoryId"`
	SubCategoryID string           `json:"subCategoryId"`
}

// UpdateListingInput is the subset of a listing a partner may edit
// themselves. Nil fields are left untouched.
type UpdateListingInput struct {
	Phone    *string   `json:"phone"`
	Email    *string   `json:"email"`
	Website  *string   `json:"website"`
	BioText  *string   `json:"bioText"`
	Services *[]string `json:"services"`
	ImageURL *string   `json:"imageUrl"`
}

// PartnerUsecase serves the partner self-service console.
type PartnerUsecase interface {
	// Dashboard returns the caller's listing with live metrics. Callers
	// without the partner role are rejected, and partners whose account
	// is not bound to a listing get a dedicated error.
	Dashboard(ctx context.Context, userID string) (*PartnerDashboard, error)

	// UpdateListing applies the partner-editable fields to the caller's
	// own listing.
	UpdateListing(ctx context.Context, userID string, input UpdateListingInput) (*entity.Business, error)

	// ShareQR renders a QR code pointing at the caller's public listing.
	ShareQR(ctx context.Context, userID string) ([]byte, error)
}
