package transport

import (
	"fmt"
	"strings"

	"github.com/fastygo/lys/domain"
)

// Separator frames every reply block written to the user.
var Separator = strings.Repeat("_", 60)

func Greeting(name string) string {
	return fmt.Sprintf("Hello! I'm %s.\nWhat can I do for you?", name)
}

func Farewell() string {
	return "Bye. Hope to see you again soon!"
}

// Added confirms a new task; count is the list size after the add.
func Added(task domain.Task, count int) string {
	return fmt.Sprintf("Got it. I've added this task:\n  %s\nNow you have %d tasks in the list.", task.Render(), count)
}

func Marked(task domain.Task) string {
	return "Nice! I've marked this task as done:\n  " + task.Render()
}

func Unmarked(task domain.Task) string {
	return "OK, I've marked this task as not done yet:\n  " + task.Render()
}

// Removed confirms a deletion; count is the list size after the removal.
func Removed(task domain.Task, count int) string {
	return fmt.Sprintf("Noted. I've removed this task:\n  %s\nNow you have %d tasks in the list.", task.Render(), count)
}

func TaskList(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return "Your task list is empty."
	}
	return numbered("Here are the tasks in your list:", tasks)
}

func Matches(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return "No matching tasks found."
	}
	return numbered("Here are the matching tasks in your list:", tasks)
}

// FormatError renders any error with the "Error: <message>" template.
func FormatError(err error) string {
	return "Error: " + err.Error()
}

func numbered(header string, tasks []domain.Task) string {
	var b strings.Builder
	b.WriteString(header)
	for i, task := range tasks {
		fmt.Fprintf(&b, "\n%d.%s", i+1, task.Render())
	}
	return b.String()
}
