package flatfile

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fastygo/lys/domain"
	"github.com/fastygo/lys/repository"
)

type taskRepository struct {
	path string
}

// NewTaskRepository returns a TaskRepository backed by a pipe-delimited text file.
func NewTaskRepository(path string) repository.TaskRepository {
	return &taskRepository{path: path}
}

func (r *taskRepository) Load(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Task{}, nil
		}
		return nil, domain.WrapError(domain.ErrCodeIOFailure, "could not load tasks", err)
	}
	defer f.Close()

	tasks := []domain.Task{}
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if task, ok := decodeRecord(strings.TrimRight(line, "\r\n")); ok {
				tasks = append(tasks, task)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.WrapError(domain.ErrCodeIOFailure, "could not load tasks", err)
		}
	}
	return tasks, nil
}

func (r *taskRepository) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.writeAll(tasks); err != nil {
		return domain.WrapError(domain.ErrCodeIOFailure, "could not save tasks", err)
	}
	return nil
}

// writeAll replaces the file through a sibling temp file and a rename,
// so readers never observe a half-written list.
func (r *taskRepository) writeAll(tasks []domain.Task) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}

	w := bufio.NewWriter(tmp)
	for _, task := range tasks {
		if _, err := w.WriteString(encodeRecord(task) + "\n"); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}
