package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// EditChangelogInput contains the parameters for editing an entry. Nil
// fields are left untouched; a non-nil empty description is stored as is.
type EditChangelogInput struct {
	Description *string
	Category    *string
	ID          int64
}

// EditChangelogOutput contains the entry after the edit.
type EditChangelogOutput struct {
	Entry *domain.ChangelogEntry
}

// EditChangelog is the use case for editing a changelog entry.
type EditChangelog struct {
	changelogs domain.ChangelogRepository
}

// NewEditChangelog creates a new EditChangelog use case.
func NewEditChangelog(changelogs domain.ChangelogRepository) *EditChangelog {
	return &EditChangelog{changelogs: changelogs}
}

// Execute applies the supplied fields and returns the updated entry.
func (uc *EditChangelog) Execute(_ context.Context, in EditChangelogInput) (*EditChangelogOutput, error) {
	update := domain.ChangelogUpdate{
		Description: in.Description,
		Category:    in.Category,
	}
	if update.IsZero() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	found, err := uc.changelogs.UpdateChangelog(in.ID, update)
	if err != nil {
		return nil, fmt.Errorf("update changelog: %w", err)
	}
	if !found {
		return nil, domain.ErrChangelogNotFound
	}

	entry, err := uc.changelogs.GetChangelog(in.ID)
	if err != nil {
		return nil, fmt.Errorf("reload changelog: %w", err)
	}
	return &EditChangelogOutput{Entry: entry}, nil
}
