package usecase

import (
	"context"
	"fmt"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// ListCommentsInput contains the parameters for listing comments.
type ListCommentsInput struct {
	TaskID int64
}

// ListCommentsOutput contains the comments in chronological order.
type ListCommentsOutput struct {
	Comments []*domain.Comment
}

// ListComments is the use case for reading the comment thread of a task.
type ListComments struct {
	tasks domain.TaskRepository
}

// NewListComments creates a new ListComments use case.
func NewListComments(tasks domain.TaskRepository) *ListComments {
	return &ListComments{tasks: tasks}
}

// Execute returns the comments for the task, oldest first.
func (uc *ListComments) Execute(_ context.Context, in ListCommentsInput) (*ListCommentsOutput, error) {
	comments, err := uc.tasks.ListComments(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return &ListCommentsOutput{Comments: comments}, nil
}
