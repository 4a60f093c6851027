package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/lys/domain"
	"github.com/fastygo/lys/pkg/logger"
	"github.com/fastygo/lys/repository"
)

// UseCase owns the in-memory task list and rewrites the repository after every mutation.
// The list stays the source of truth when a save fails.
type UseCase struct {
	tasks  repository.TaskRepository
	list   *domain.TaskList
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		list:   domain.NewTaskList(),
		logger: logger,
	}
}

// Load replaces the list with the stored tasks. A failed load starts from an empty list.
func (uc *UseCase) Load(ctx context.Context) {
	stored, err := uc.tasks.Load(ctx)
	if err != nil {
		logger.WithSessionID(ctx, uc.logger).Warn("starting with an empty task list", zap.Error(err))
		uc.list = domain.NewTaskList()
		return
	}
	uc.list = domain.NewTaskList(stored...)
}

// AddTask appends task and returns the new list size. A non-nil error is a
// save failure; the task has been added regardless.
func (uc *UseCase) AddTask(ctx context.Context, task domain.Task) (int, error) {
	uc.list.Add(task)
	return uc.list.Size(), uc.persist(ctx, "add")
}

// MarkTask sets the done flag of the task at the 0-based index.
func (uc *UseCase) MarkTask(ctx context.Context, index int, done bool) (domain.Task, error) {
	task, err := uc.list.MarkAt(index, done)
	if err != nil {
		return nil, err
	}
	operation := "mark"
	if !done {
		operation = "unmark"
	}
	return task, uc.persist(ctx, operation)
}

// DeleteTask removes the task at the 0-based index and returns it with the new list size.
func (uc *UseCase) DeleteTask(ctx context.Context, index int) (domain.Task, int, error) {
	removed, err := uc.list.DeleteAt(index)
	if err != nil {
		return nil, uc.list.Size(), err
	}
	return removed, uc.list.Size(), uc.persist(ctx, "delete")
}

func (uc *UseCase) ListTasks() []domain.Task {
	return uc.list.All()
}

func (uc *UseCase) FindTasks(keyword string) []domain.Task {
	return uc.list.Find(keyword)
}

func (uc *UseCase) persist(ctx context.Context, operation string) error {
	if err := uc.tasks.Save(ctx, uc.list.All()); err != nil {
		logger.WithSessionID(ctx, uc.logger).Error("failed to save task list",
			zap.String("operation", operation),
			zap.Int("tasks", uc.list.Size()),
			zap.Error(err),
		)
		if domain.IsDomainError(err, domain.ErrCodeIOFailure) {
			return err
		}
		return domain.WrapError(domain.ErrCodeIOFailure, "could not save tasks", err)
	}
	return nil
}
