package flatfile

import (
	"strings"

	"github.com/fastygo/lys/domain"
)

// fieldSeparator delimits record fields. Values are not escaped, so a description
// containing the separator does not survive a reload.
const fieldSeparator = " | "

func encodeRecord(task domain.Task) string {
	done := "0"
	if task.IsDone() {
		done = "1"
	}
	fields := []string{string(task.Kind()), done, task.Description()}

	switch t := task.(type) {
	case *domain.Deadline:
		fields = append(fields, t.By)
	case *domain.Event:
		fields = append(fields, t.From, t.To)
	}
	return strings.Join(fields, fieldSeparator)
}

// decodeRecord parses one stored line. ok is false for lines that cannot be turned into a task.
func decodeRecord(line string) (domain.Task, bool) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) < 3 || parts[2] == "" {
		return nil, false
	}
	description := parts[2]

	var task domain.Task
	switch domain.Kind(parts[0]) {
	case domain.KindTodo:
		task = domain.NewTodo(description)
	case domain.KindDeadline:
		if len(parts) < 4 {
			return nil, false
		}
		task = domain.NewDeadline(description, parts[3])
	case domain.KindEvent:
		if len(parts) < 5 {
			return nil, false
		}
		task = domain.NewEvent(description, parts[3], parts[4])
	default:
		return nil, false
	}

	if parts[1] == "1" {
		task.MarkDone()
	}
	return task, true
}
