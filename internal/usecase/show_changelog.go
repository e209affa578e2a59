package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// ShowChangelogInput contains the parameters for fetching one entry.
type ShowChangelogInput struct {
	ID int64
}

// ShowChangelogOutput contains the requested entry.
type ShowChangelogOutput struct {
	Entry *domain.ChangelogEntry
}

// ShowChangelog is the use case for fetching a single changelog entry.
type ShowChangelog struct {
	changelogs domain.ChangelogRepository
}

// NewShowChangelog creates a new ShowChangelog use case.
func NewShowChangelog(changelogs domain.ChangelogRepository) *ShowChangelog {
	return &ShowChangelog{changelogs: changelogs}
}

// Execute returns the entry, or domain.ErrChangelogNotFound.
func (uc *ShowChangelog) Execute(_ context.Context, in ShowChangelogInput) (*ShowChangelogOutput, error) {
	entry, err := uc.changelogs.GetChangelog(in.ID)
	if err != nil {
		return nil, fmt.Errorf("get changelog: %w", err)
	}
	if entry == nil {
		return nil, domain.ErrChangelogNotFound
	}
	return &ShowChangelogOutput{Entry: entry}, nil
}
