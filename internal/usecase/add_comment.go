package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// AddCommentInput contains the parameters for adding a comment.
type AddCommentInput struct {
	Text       string // Comment body (required)
	AuthorName string
	TaskID     int64
	AuthorID   int64
}

// AddCommentOutput contains the created comment.
type AddCommentOutput struct {
	Comment *domain.Comment
}

// AddComment is the use case for attaching a comment to a task.
type AddComment struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewAddComment creates a new AddComment use case.
func NewAddComment(tasks domain.TaskRepository, clock domain.Clock) *AddComment {
	return &AddComment{tasks: tasks, clock: clock}
}

// Execute stores the comment. The task id is not verified; a comment on a
// vanished task is harmless and never surfaces.
func (uc *AddComment) Execute(_ context.Context, in AddCommentInput) (*AddCommentOutput, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	comment := &domain.Comment{
		TaskID:     in.TaskID,
		AuthorID:   in.AuthorID,
		AuthorName: in.AuthorName,
		Text:       text,
		Created:    uc.clock.Now(),
	}
	id, err := uc.tasks.AddComment(comment)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	comment.ID = id
	return &AddCommentOutput{Comment: comment}, nil
}
