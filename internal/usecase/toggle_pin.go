package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// TogglePinInput contains the parameters for flipping an entry's pin flag.
type TogglePinInput struct {
	ID int64
}

// TogglePinOutput contains the entry after the flip.
type TogglePinOutput struct {
	Entry *domain.ChangelogEntry
}

// TogglePin is the use case for pinning or unpinning a changelog entry.
type TogglePin struct {
	changelogs domain.ChangelogRepository
}

// NewTogglePin creates a new TogglePin use case.
func NewTogglePin(changelogs domain.ChangelogRepository) *TogglePin {
	return &TogglePin{changelogs: changelogs}
}

// Execute inverts the pin flag and returns the updated entry.
func (uc *TogglePin) Execute(_ context.Context, in TogglePinInput) (*TogglePinOutput, error) {
	found, err := uc.changelogs.TogglePin(in.ID)
	if err != nil {
		return nil, fmt.Errorf("toggle pin: %w", err)
	}
	if !found {
		return nil, domain.ErrChangelogNotFound
	}

	entry, err := uc.changelogs.GetChangelog(in.ID)
	if err != nil {
		return nil, fmt.Errorf("reload changelog: %w", err)
	}
	return &TogglePinOutput{Entry: entry}, nil
}
