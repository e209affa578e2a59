package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// NewChangelogCategoryInput contains the parameters for creating a
// changelog category.
type NewChangelogCategoryInput struct {
	Name string
}

// NewChangelogCategory is the use case for creating a changelog category.
type NewChangelogCategory struct {
	changelogs domain.ChangelogRepository
}

// NewNewChangelogCategory creates a new NewChangelogCategory use case.
func NewNewChangelogCategory(changelogs domain.ChangelogRepository) *NewChangelogCategory {
	return &NewChangelogCategory{changelogs: changelogs}
}

// Execute creates the category. A name already in use yields
// domain.ErrDuplicateCategory.
func (uc *NewChangelogCategory) Execute(_ context.Context, in NewChangelogCategoryInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ErrEmptyText
	}
	return uc.changelogs.CreateChangelogCategory(name)
}

// ListChangelogCategoriesOutput contains the category names in
// alphabetical order.
type ListChangelogCategoriesOutput struct {
	Names []string
}

// ListChangelogCategories is the use case for listing changelog categories.
type ListChangelogCategories struct {
	changelogs domain.ChangelogRepository
}

// NewListChangelogCategories creates a new ListChangelogCategories use case.
func NewListChangelogCategories(changelogs domain.ChangelogRepository) *ListChangelogCategories {
	return &ListChangelogCategories{changelogs: changelogs}
}

// Execute returns all changelog category names sorted by name.
func (uc *ListChangelogCategories) Execute(_ context.Context) (*ListChangelogCategoriesOutput, error) {
	names, err := uc.changelogs.ListChangelogCategories()
	if err != nil {
		return nil, fmt.Errorf("list changelog categories: %w", err)
	}
	return &ListChangelogCategoriesOutput{Names: names}, nil
}
