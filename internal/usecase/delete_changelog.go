package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// DeleteChangelogInput contains the parameters for deleting an entry.
type DeleteChangelogInput struct {
	ID int64
}

// DeleteChangelog is the use case for deleting a changelog entry.
type DeleteChangelog struct {
	changelogs domain.ChangelogRepository
}

// NewDeleteChangelog creates a new DeleteChangelog use case.
func NewDeleteChangelog(changelogs domain.ChangelogRepository) *DeleteChangelog {
	return &DeleteChangelog{changelogs: changelogs}
}

// Execute removes the entry, or returns domain.ErrChangelogNotFound.
func (uc *DeleteChangelog) Execute(_ context.Context, in DeleteChangelogInput) error {
	found, err := uc.changelogs.DeleteChangelog(in.ID)
	if err != nil {
		return fmt.Errorf("delete changelog: %w", err)
	}
	if !found {
		return domain.ErrChangelogNotFound
	}
	return nil
}
