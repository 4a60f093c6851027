package handler

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fastygo/lys/api/transport"
	"github.com/fastygo/lys/domain"
	"github.com/fastygo/lys/usecase"
	taskUC "github.com/fastygo/lys/usecase/task"
)

const (
	bySeparator   = " /by "
	fromSeparator = " /from "
	toSeparator   = " /to "
)

var (
	errEmptyTodo      = domain.NewError(domain.ErrCodeInvalidArgument, "The description of a todo cannot be empty.")
	errDeadlineFormat = domain.NewError(domain.ErrCodeInvalidArgument, "Deadline format should be: deadline [task] /by [date]")
	errEventFormat    = domain.NewError(domain.ErrCodeInvalidArgument, "Event format should be: event [task] /from [start] /to [end]")
	errMissingKeyword = domain.NewError(domain.ErrCodeInvalidArgument, "Please provide a keyword to search.")
	errMissingNumber  = domain.NewError(domain.ErrCodeInvalidNumber, "Please provide a task number.")
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(logger),
		uc:          uc,
	}
}

// Todo handles "todo <desc>".
func (h *TaskHandler) Todo(ctx context.Context, args string) (usecase.Result, error) {
	description := strings.TrimSpace(args)
	if description == "" {
		return usecase.Result{}, errEmptyTodo
	}
	return h.add(ctx, domain.NewTodo(description))
}

// Deadline handles "deadline <desc> /by <when>".
func (h *TaskHandler) Deadline(ctx context.Context, args string) (usecase.Result, error) {
	description, by, found := strings.Cut(args, bySeparator)
	description = strings.TrimSpace(description)
	if !found || description == "" {
		return usecase.Result{}, errDeadlineFormat
	}
	return h.add(ctx, domain.NewDeadline(description, strings.TrimSpace(by)))
}

// Event handles "event <desc> /from <start> /to <end>".
func (h *TaskHandler) Event(ctx context.Context, args string) (usecase.Result, error) {
	if !strings.Contains(args, fromSeparator) || !strings.Contains(args, toSeparator) {
		return usecase.Result{}, errEventFormat
	}
	description, span, _ := strings.Cut(args, fromSeparator)
	from, to, found := strings.Cut(span, toSeparator)
	description = strings.TrimSpace(description)
	if !found || description == "" {
		return usecase.Result{}, errEventFormat
	}
	return h.add(ctx, domain.NewEvent(description, strings.TrimSpace(from), strings.TrimSpace(to)))
}

func (h *TaskHandler) Mark(ctx context.Context, args string) (usecase.Result, error) {
	return h.mark(ctx, args, true)
}

func (h *TaskHandler) Unmark(ctx context.Context, args string) (usecase.Result, error) {
	return h.mark(ctx, args, false)
}

// Delete handles "delete <n>".
func (h *TaskHandler) Delete(ctx context.Context, args string) (usecase.Result, error) {
	index, err := parseIndex(args)
	if err != nil {
		return usecase.Result{}, err
	}

	removed, count, err := h.uc.DeleteTask(ctx, index)
	if removed == nil {
		return usecase.Result{}, err
	}
	h.log(ctx).Debug("task removed", zap.String("kind", string(removed.Kind())), zap.Int("tasks", count))
	return h.respond(transport.Removed(removed, count), err)
}

// List handles "list".
func (h *TaskHandler) List(ctx context.Context, _ string) (usecase.Result, error) {
	return usecase.Reply(transport.TaskList(h.uc.ListTasks())), nil
}

// Find handles "find <keyword>".
func (h *TaskHandler) Find(ctx context.Context, args string) (usecase.Result, error) {
	if args == "" {
		return usecase.Result{}, errMissingKeyword
	}
	return usecase.Reply(transport.Matches(h.uc.FindTasks(args))), nil
}

func (h *TaskHandler) add(ctx context.Context, task domain.Task) (usecase.Result, error) {
	count, err := h.uc.AddTask(ctx, task)
	h.log(ctx).Debug("task added", zap.String("kind", string(task.Kind())), zap.Int("tasks", count))
	return h.respond(transport.Added(task, count), err)
}

func (h *TaskHandler) mark(ctx context.Context, args string, done bool) (usecase.Result, error) {
	index, err := parseIndex(args)
	if err != nil {
		return usecase.Result{}, err
	}

	task, err := h.uc.MarkTask(ctx, index, done)
	if task == nil {
		return usecase.Result{}, err
	}
	if done {
		return h.respond(transport.Marked(task), err)
	}
	return h.respond(transport.Unmarked(task), err)
}

// parseIndex converts a 1-based task number into a 0-based index.
func parseIndex(args string) (int, error) {
	value := strings.TrimSpace(args)
	if value == "" {
		return 0, errMissingNumber
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.NewError(domain.ErrCodeInvalidNumber, "Invalid task number: "+value)
	}
	return n - 1, nil
}
