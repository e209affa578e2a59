package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigcommunity/taskbot/internal/domain"
	"github.com/bigcommunity/taskbot/internal/testutil"
)

func TestNewChangelog_Execute(t *testing.T) {
	// Setup
	repo := testutil.NewMockChangelogRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)}
	uc := NewNewChangelog(repo, clock)

	// Execute
	out, err := uc.Execute(context.Background(), NewChangelogInput{
		Category:    "GNOME",
		Description: "Updated to 46.1",
		AuthorID:    42,
		AuthorName:  "alice",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Updated to 46.1", out.Entry.Description)
	assert.False(t, out.Entry.Pinned)
	assert.Equal(t, clock.NowTime, out.Entry.Created)
}

func TestNewChangelog_Execute_EmptyDescription(t *testing.T) {
	// Setup
	uc := NewNewChangelog(testutil.NewMockChangelogRepository(), &testutil.MockClock{})

	// Execute
	_, err := uc.Execute(context.Background(), NewChangelogInput{Category: "GNOME", Description: " "})

	// Assert
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestTogglePin_Execute(t *testing.T) {
	// Setup
	repo := testutil.NewMockChangelogRepository()
	id, err := repo.CreateChangelog(&domain.ChangelogEntry{Category: "XFCE", Description: "New theme"})
	require.NoError(t, err)
	uc := NewTogglePin(repo)
	ctx := context.Background()

	// Execute
	pinned, err := uc.Execute(ctx, TogglePinInput{ID: id})
	require.NoError(t, err)
	unpinned, err := uc.Execute(ctx, TogglePinInput{ID: id})

	// Assert
	require.NoError(t, err)
	assert.True(t, pinned.Entry.Pinned)
	assert.False(t, unpinned.Entry.Pinned)
}

func TestTogglePin_Execute_NotFound(t *testing.T) {
	// Setup
	uc := NewTogglePin(testutil.NewMockChangelogRepository())

	// Execute
	_, err := uc.Execute(context.Background(), TogglePinInput{ID: 99})

	// Assert
	assert.ErrorIs(t, err, domain.ErrChangelogNotFound)
}

func TestEditChangelog_Execute_EmptyDescriptionAllowed(t *testing.T) {
	// Setup
	repo := testutil.NewMockChangelogRepository()
	id, err := repo.CreateChangelog(&domain.ChangelogEntry{Category: "XFCE", Description: "Old body"})
	require.NoError(t, err)
	uc := NewEditChangelog(repo)
	empty := ""

	// Execute
	out, err := uc.Execute(context.Background(), EditChangelogInput{ID: id, Description: &empty})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "", out.Entry.Description)
	assert.Equal(t, "XFCE", out.Entry.Category)
}

func TestEditChangelog_Execute_NoFields(t *testing.T) {
	// Setup
	uc := NewEditChangelog(testutil.NewMockChangelogRepository())

	// Execute
	_, err := uc.Execute(context.Background(), EditChangelogInput{ID: 1})

	// Assert
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestEditChangelog_Execute_NotFound(t *testing.T) {
	// Setup
	uc := NewEditChangelog(testutil.NewMockChangelogRepository())
	category := "GNOME"

	// Execute
	_, err := uc.Execute(context.Background(), EditChangelogInput{ID: 99, Category: &category})

	// Assert
	assert.ErrorIs(t, err, domain.ErrChangelogNotFound)
}

func TestDeleteChangelog_Execute(t *testing.T) {
	// Setup
	repo := testutil.NewMockChangelogRepository()
	id, err := repo.CreateChangelog(&domain.ChangelogEntry{Category: "XFCE", Description: "Old body"})
	require.NoError(t, err)
	uc := NewDeleteChangelog(repo)

	// Execute
	err = uc.Execute(context.Background(), DeleteChangelogInput{ID: id})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, repo.Entries)
}

func TestDeleteChangelog_Execute_NotFound(t *testing.T) {
	// Setup
	uc := NewDeleteChangelog(testutil.NewMockChangelogRepository())

	// Execute
	err := uc.Execute(context.Background(), DeleteChangelogInput{ID: 99})

	// Assert
	assert.ErrorIs(t, err, domain.ErrChangelogNotFound)
}

func TestChangelogStats_Execute(t *testing.T) {
	// Setup
	repo := testutil.NewMockChangelogRepository()
	id, err := repo.CreateChangelog(&domain.ChangelogEntry{Category: "GNOME", Description: "a", AuthorName: "alice"})
	require.NoError(t, err)
	_, err = repo.CreateChangelog(&domain.ChangelogEntry{Category: "GNOME", Description: "b", AuthorName: "bob"})
	require.NoError(t, err)
	_, err = repo.TogglePin(id)
	require.NoError(t, err)
	uc := NewChangelogStats(repo)

	// Execute
	out, err := uc.Execute(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Stats.Total)
	assert.Equal(t, int64(1), out.Stats.Pinned)
	assert.Equal(t, int64(2), out.Stats.ByCategory["GNOME"])
	assert.Equal(t, int64(1), out.Stats.ByAuthor["alice"])
}

func TestNewChangelogCategory_Execute_Duplicate(t *testing.T) {
	// Setup
	repo := testutil.NewMockChangelogRepository()
	uc := NewNewChangelogCategory(repo)
	ctx := context.Background()
	require.NoError(t, uc.Execute(ctx, NewChangelogCategoryInput{Name: "Ashy Terminal"}))

	// Execute
	err := uc.Execute(ctx, NewChangelogCategoryInput{Name: "Ashy Terminal"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
}
