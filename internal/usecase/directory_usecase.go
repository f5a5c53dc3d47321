// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ppoth/internal/domain/entity"
)

// DirectoryUsecase owns the category/subcategory/business hierarchy: reads
// return snapshots, mutations persist the full snapshot and emit a change
// notification.
type DirectoryUsecase interface {
	// GetAll returns a deep-copied snapshot of the hierarchy, seeding the
	// default dataset on first read.
	GetAll(ctx context.Context) ([]entity.Category, error)

	// Hierarchy returns the id/name skeleton used by the admin editors.
	Hierarchy(ctx context.Context) ([]entity.CategoryNode, error)

	// GetBusiness finds a business anywhere in the hierarchy.
	GetBusiness(ctx context.Context, id string) (*entity.Business, error)

	// Locate finds a business together with its current position.
	Locate(ctx context.Context, id string) (*BusinessLocation, error)

	// UpsertBusiness removes the business from any existing location and
	// inserts it under (categoryID, subCategoryID).
	UpsertBusiness(ctx context.Context, input *UpsertBusinessInput) (*entity.Business, error)

	// DeleteBusiness removes the business wherever found.
	DeleteBusiness(ctx context.Context, id string) error

	AddCategory(ctx context.Context, input *AddCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, input *UpdateCategoryInput) error
	DeleteCategory(ctx context.Context, id string) error

	AddSubCategory(ctx context.Context, categoryID string, input *AddSubCategoryInput) (*entity.SubCategory, error)
	UpdateSubCategory(ctx context.Context, categoryID, subCategoryID string, input *UpdateSubCategoryInput) error
	DeleteSubCategory(ctx context.Context, categoryID, subCategoryID string) error
}

// --- Input/output DTOs ---

// BusinessLocation pairs a business with its current hierarchy position.
type BusinessLocation struct {
	Business      entity.Business `json:"business"`
	CategoryID    string          `json:"categoryId"`
	SubCategoryID string          `json:"subCategoryId"`
}

// UpsertBusinessInput defines the data required to create or move a
// business listing.
type UpsertBusinessInput struct {
	Business      entity.Business `json:"business"`
	CategoryID    string          `json:"categoryId"`
	SubCategoryID string          `json:"subCategoryId"`
}

// AddCategoryInput defines the data required to create a category.
type AddCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Icon        string `json:"icon"`
}

// UpdateCategoryInput defines a partial category update.
type UpdateCategoryInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// AddSubCategoryInput defines the data required to create a subcategory.
type AddSubCategoryInput struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon"`
}

// UpdateSubCategoryInput defines a partial subcategory update.
type UpdateSubCategoryInput struct {
	Name *string `json:"name,omitempty"`
	Icon *string `json:"icon,omitempty"`
}
