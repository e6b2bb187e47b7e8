package services

import (
	"errors"
	"fmt"

	"blogyetu/app/models"
	"blogyetu/app/repositories"
)

// ErrCategoryNotFound is returned when a post references at least one
// category id that does not exist.
var ErrCategoryNotFound = errors.New("one or more categories not found")

// CategoryService handles business logic for categories
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// dedupe collapses duplicate ids so they count as one logical reference,
// preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// ValidateCategories confirms every referenced category exists. The ids
// are de-duplicated before the count comparison, so repeating an id
// cannot mask a missing one.
func (s *CategoryService) ValidateCategories(ids []string) error {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return nil
	}

	found, err := s.categoryRepo.FindByIDs(unique)
	if err != nil {
		return fmt.Errorf("failed to look up categories: %v", err)
	}
	if len(found) < len(unique) {
		return ErrCategoryNotFound
	}
	return nil
}

// CreateCategory creates a new category with a slug derived from its name.
func (s *CategoryService) CreateCategory(input CreateCategoryInput) (*models.Category, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	category := &models.Category{Name: input.Name}
	category.BeforeCreate()
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all categories.
func (s *CategoryService) ListCategories() ([]*models.Category, error) {
	return s.categoryRepo.List()
}

// Refs resolves category ids to display projections. Ids that no longer
// resolve are dropped rather than failing the read.
func (s *CategoryService) Refs(ids []string) ([]models.CategoryRef, error) {
	refs := []models.CategoryRef{}
	if len(ids) == 0 {
		return refs, nil
	}

	found, err := s.categoryRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, category := range found {
		refs = append(refs, category.Ref())
	}
	return refs, nil
}
