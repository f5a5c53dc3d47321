// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"ppoth/internal/domain/entity"
	domainerrors "ppoth/internal/domain/errors"
	"ppoth/internal/domain/repository"
	"ppoth/internal/domain/service"
	"ppoth/internal/seed"
	"ppoth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// directoryService implements the DirectoryUsecase interface. The shared
// lock serializes every read-modify-write cycle against the snapshot
// store so concurrent admin edits never clobber each other.
type directoryService struct {
	lock     *DirectoryLock
	repo     repository.DirectoryRepository
	notifier service.ChangeNotifier
	logger   *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(
	lock *DirectoryLock,
	repo repository.DirectoryRepository,
	notifier service.ChangeNotifier,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		lock:     lock,
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// loadOrSeed returns the stored directory, writing the built-in seed
// dataset on first access so later reads see a stable state.
func (srv *directoryService) loadOrSeed(ctx context.Context) ([]entity.Category, error) {
	categories, err := srv.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			return nil, errors.Wrap(err, "failed to load directory")
		}

		categories = seed.Directory()
		if err := srv.repo.Save(ctx, categories); err != nil {
			return nil, errors.Wrap(err, "failed to persist seed directory")
		}

		srv.logger.Info("Seeded directory dataset", "categories", len(categories))
	}

	return categories, nil
}

// save persists the tree and broadcasts the change.
func (srv *directoryService) save(ctx context.Context, categories []entity.Category) error {
	if err := srv.repo.Save(ctx, categories); err != nil {
		return errors.Wrap(err, "failed to save directory")
	}

	srv.notifier.Publish(service.TopicDirectoryChanged)

	return nil
}

// locate finds a business by ID and reports which category and
// subcategory hold it.
func locate(categories []entity.Category, businessID string) (*usecase.BusinessLocation, bool) {
	for ci := range categories {
		for si := range categories[ci].SubCategories {
			for _, b := range categories[ci].SubCategories[si].Businesses {
				if b.ID == businessID {
					return &usecase.BusinessLocation{
						Business:      b.Clone(),
						CategoryID:    categories[ci].ID,
						SubCategoryID: categories[ci].SubCategories[si].ID,
					}, true
				}
			}
		}
	}

	return nil, false
}

// removeBusiness deletes every occurrence of businessID from the tree
// and reports whether anything was removed.
func removeBusiness(categories []entity.Category, businessID string) bool {
	removed := false

	for ci := range categories {
		for si := range categories[ci].SubCategories {
			businesses := categories[ci].SubCategories[si].Businesses
			kept := businesses[:0]

			for _, b := range businesses {
				if b.ID == businessID {
					removed = true

					continue
				}
				kept = append(kept, b)
			}
			categories[ci].SubCategories[si].Businesses = kept
		}
	}

	return removed
}

func findCategory(categories []entity.Category, categoryID string) (*entity.Category, bool) {
	for i := range categories {
		if categories[i].ID == categoryID {
			return &categories[i], true
		}
	}

	return nil, false
}

func findSubCategory(category *entity.Category, subCategoryID string) (*entity.SubCategory, bool) {
	for i := range category.SubCategories {
		if category.SubCategories[i].ID == subCategoryID {
			return &category.SubCategories[i], true
		}
	}

	return nil, false
}

// GetAll returns a deep-copied snapshot of the full hierarchy.
func (srv *directoryService) GetAll(ctx context.Context) ([]entity.Category, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	categories, err := srv.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	return entity.CloneDirectory(categories), nil
}

// Hierarchy returns the directory stripped down to navigation nodes.
func (srv *directoryService) Hierarchy(ctx context.Context) ([]entity.CategoryNode, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	categories, err := srv.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make([]entity.CategoryNode, 0, len(categories))
	for _, c := range categories {
		node := entity.CategoryNode{ID: c.ID, Name: c.Name}
		for _, s := range c.SubCategories {
			node.SubCategories = append(node.SubCategories, entity.SubCategoryNode{
				ID:   s.ID,
				Name: s.Name,
			})
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

// GetBusiness returns a single listing by ID.
func (srv *directoryService) GetBusiness(ctx context.Context, id string) (*entity.Business, error) {
	location, err := srv.Locate(ctx, id)
	if err != nil {
		return nil, err
	}

	return &location.Business, nil
}

// Locate returns a listing together with its position in the tree.
func (srv *directoryService) Locate(ctx context.Context, id string) (*usecase.BusinessLocation, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	categories, err := srv.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	location, ok := locate(categories, id)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found: "+id)
	}

	return location, nil
}

// UpsertBusiness inserts or moves a listing under the given
// subcategory. An existing ID is removed from everywhere before the
// insert, so moves never leave duplicates behind.
func (srv *directoryService) UpsertBusiness(ctx context.Context, input *usecase.UpsertBusinessInput) (*entity.Business, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	// 1. Validate the listing payload
	if strings.TrimSpace(input.Business.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "business name is required")
	}

	categories, err := srv.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Resolve the target subcategory
	category, ok := findCategory(categories, input.CategoryID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found: "+input.CategoryID)
	}

	subCategory, ok := findSubCategory(category, input.SubCategoryID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrSubCategoryNotFound, "subcategory not found: "+input.SubCategoryID)
	}

	business := input.Business.Clone()

	// 3. Assign an ID for new listings, detach existing ones first
	if business.ID == "" {
		business.ID = "biz_" + uuid.NewString()
	} else {
		removeBusiness(categories, business.ID)
	}
	business.EnsureMetrics()

	// 4. Insert and persist
	subCategory.Businesses = append(subCategory.Businesses, business)

	if err := srv.save(ctx, categories); err != nil {
		return nil, err
	}

	srv.logger.Info("Upserted business", "businessID", business.ID, "subCategoryID", subCategory.ID)

	result := business.Clone()

	return &result, nil
}

// DeleteBusiness removes a listing from the directory.
func (srv *directoryService) DeleteBusiness(ctx context.Context, id string) error {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	categories, err := srv.loadOrSeed(ctx)
	if err != nil {
		return err
	}

	if !removeBusiness(categories, id) {
		return errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found: "+id)
	}

	return srv.save(ctx, categories)
}

// AddCategory appends a new top-level category.
func (srv *directoryService) AddCategory(ctx context.Context, input *usecase.AddCategoryInput) (*entity.Category, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "category name is required")
	}

	categories, err := srv.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	category := entity.Category{
		ID:            "cat_" + uuid.NewString(),
		Name:          input.Name,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		Icon:          input.Icon,
		SubCategories: []entity.SubCategory{},
	}
	categories = append(categories, category)

	if err := srv.save(ctx, categories); err != nil {
		return nil, err
	}

	result := category.Clone()

	return &result, nil
}

// UpdateCategory patches category fields in place.
func (srv *directoryService) UpdateCategory(ctx context.Context, id string, input *usecase.UpdateCategoryInput) error {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	categories, err := srv.loadOrSeed(ctx)
	if err != nil {
		return err
	}

	category, ok := findCategory(categories, id)
	if !ok {
		return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found: "+id)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "category name is required")
		}
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.ImageURL != nil {
		category.ImageURL = *input.ImageURL
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}

	return srv.save(ctx, categories)
}

// DeleteCategory removes a category and everything under it.
func (srv *directoryService) DeleteCategory(ctx context.Context, id string) error {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	categories, err := srv.loadOrSeed(ctx)
	if err != nil {
		return err
	}

	kept := categories[:0]
	found := false

	for _, c := range categories {
		if c.ID == id {
			found = true

			continue
		}
		kept = append(kept, c)
	}

	if !found {
		return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found: "+id)
	}

	return srv.save(ctx, kept)
}

// AddSubCategory appends a subcategory under an existing category.
func (srv *directoryService) AddSubCategory(ctx context.Context, categoryID string, input *usecase.AddSubCategoryInput) (*entity.SubCategory, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "subcategory name is required")
	}

	categories, err := srv.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	category, ok := findCategory(categories, categoryID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found: "+categoryID)
	}

	subCategory := entity.SubCategory{
		ID:         "sub_" + uuid.NewString(),
		Name:       input.Name,
		Icon:       input.Icon,
		Businesses: []entity.Business{},
	}
	category.SubCategories = append(category.SubCategories, subCategory)

	if err := srv.save(ctx, categories); err != nil {
		return nil, err
	}

	result := subCategory.Clone()

	return &result, nil
}

// UpdateSubCategory patches subcategory fields in place.
func (srv *directoryService) UpdateSubCategory(ctx context.Context, categoryID, subCategoryID string, input *usecase.UpdateSubCategoryInput) error {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	categories, err := srv.loadOrSeed(ctx)
	if err != nil {
		return err
	}

	category, ok := findCategory(categories, categoryID)
	if !ok {
		return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found: "+categoryID)
	}

	subCategory, ok := findSubCategory(category, subCategoryID)
	if !ok {
		return errors.Wrap(domainerrors.ErrSubCategoryNotFound, "subcategory not found: "+subCategoryID)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "subcategory name is required")
		}
		subCategory.Name = *input.Name
	}
	if input.Icon != nil {
		subCategory.Icon = *input.Icon
	}

	return srv.save(ctx, categories)
}

// DeleteSubCategory removes a subcategory and its listings.
func (srv *directoryService) DeleteSubCategory(ctx context.Context, categoryID, subCategoryID string) error {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	categories, err := srv.loadOrSeed(ctx)
	if err != nil {
		return err
	}

	category, ok := findCategory(categories, categoryID)
	if !ok {
		return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found: "+categoryID)
	}

	subs := category.SubCategories
	kept := subs[:0]
	found := false

	for _, s := range subs {
		if s.ID == subCategoryID {
			found = true

			continue
		}
		kept = append(kept, s)
	}

	if !found {
		return errors.Wrap(domainerrors.ErrSubCategoryNotFound, "subcategory not found: "+subCategoryID)
	}
	category.SubCategories = kept

	return srv.save(ctx, categories)
}
