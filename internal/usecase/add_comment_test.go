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

func TestAddComment_Execute(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)}
	uc := NewAddComment(repo, clock)

	// Execute
	out, err := uc.Execute(context.Background(), AddCommentInput{
		TaskID:     7,
		AuthorID:   42,
		AuthorName: "alice",
		Text:       "  ship it  ",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ship it", out.Comment.Text)
	assert.Equal(t, clock.NowTime, out.Comment.Created)
	comments, err := repo.ListComments(7)
	require.NoError(t, err)
	require.Len(t, comments, 1)
}

func TestAddComment_Execute_EmptyText(t *testing.T) {
	// Setup
	uc := NewAddComment(testutil.NewMockTaskRepository(), &testutil.MockClock{})

	// Execute
	_, err := uc.Execute(context.Background(), AddCommentInput{TaskID: 7, Text: "   "})

	// Assert
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestAddComment_Execute_NoTaskCheck(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	uc := NewAddComment(repo, &testutil.MockClock{NowTime: time.Now()})

	// Execute
	out, err := uc.Execute(context.Background(), AddCommentInput{TaskID: 999, Text: "orphan note"})

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, out.Comment.ID)
}
