package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// NewCategoryInput contains the parameters for creating a task category.
type NewCategoryInput struct {
	Name string
}

// NewCategoryOutput contains the created category.
type NewCategoryOutput struct {
	Category *domain.Category
}

// NewCategory is the use case for creating a task category.
type NewCategory struct {
	categories domain.CategoryRepository
}

// NewNewCategory creates a new NewCategory use case.
func NewNewCategory(categories domain.CategoryRepository) *NewCategory {
	return &NewCategory{categories: categories}
}

// Execute creates the category. A name already in use yields
// domain.ErrDuplicateCategory.
func (uc *NewCategory) Execute(_ context.Context, in NewCategoryInput) (*NewCategoryOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyText
	}

	id, err := uc.categories.CreateCategory(name)
	if err != nil {
		return nil, err
	}
	return &NewCategoryOutput{Category: &domain.Category{ID: id, Name: name}}, nil
}

// ListCategoriesOutput contains the task categories in alphabetical order.
type ListCategoriesOutput struct {
	Categories []*domain.Category
}

// ListCategories is the use case for listing task categories.
type ListCategories struct {
	categories domain.CategoryRepository
}

// NewListCategories creates a new ListCategories use case.
func NewListCategories(categories domain.CategoryRepository) *ListCategories {
	return &ListCategories{categories: categories}
}

// Execute returns all task categories sorted by name.
func (uc *ListCategories) Execute(_ context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categories.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return &ListCategoriesOutput{Categories: categories}, nil
}
