package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// NewChangelogInput contains the parameters for publishing a changelog entry.
type NewChangelogInput struct {
	Category    string
	Description string // Entry body (required)
	AuthorName  string
	AuthorID    int64
}

// NewChangelogOutput contains the created entry.
type NewChangelogOutput struct {
	Entry *domain.ChangelogEntry
}

// NewChangelog is the use case for publishing a changelog entry.
type NewChangelog struct {
	changelogs domain.ChangelogRepository
	clock      domain.Clock
}

// NewNewChangelog creates a new NewChangelog use case.
func NewNewChangelog(changelogs domain.ChangelogRepository, clock domain.Clock) *NewChangelog {
	return &NewChangelog{changelogs: changelogs, clock: clock}
}

// Execute creates the entry. New entries are never pinned.
func (uc *NewChangelog) Execute(_ context.Context, in NewChangelogInput) (*NewChangelogOutput, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.ErrEmptyText
	}

	entry := &domain.ChangelogEntry{
		Category:    in.Category,
		Description: description,
		AuthorID:    in.AuthorID,
		AuthorName:  in.AuthorName,
		Created:     uc.clock.Now(),
	}
	id, err := uc.changelogs.CreateChangelog(entry)
	if err != nil {
		return nil, fmt.Errorf("create changelog: %w", err)
	}

	created, err := uc.changelogs.GetChangelog(id)
	if err != nil {
		return nil, fmt.Errorf("reload changelog: %w", err)
	}
	return &NewChangelogOutput{Entry: created}, nil
}
