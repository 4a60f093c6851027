package repository

import (
	"context"

	"github.com/fastygo/lys/domain"
)

// TaskRepository persists the whole task list between sessions.
type TaskRepository interface {
	// Load returns the stored tasks in order. A missing store yields an empty slice.
	Load(ctx context.Context) ([]domain.Task, error)
	// Save replaces the stored tasks with the provided sequence.
	Save(ctx context.Context, tasks []domain.Task) error
}
