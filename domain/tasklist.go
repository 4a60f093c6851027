package domain

import "strings"

// TaskList is the ordered in-memory collection of tasks. Positions are 0-based;
// callers translate from the 1-based numbers shown to the user.
type TaskList struct {
	tasks []Task
}

// NewTaskList builds a list holding the provided tasks in order.
func NewTaskList(tasks ...Task) *TaskList {
	l := &TaskList{}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Add appends a task. Duplicates are allowed.
func (l *TaskList) Add(task Task) {
	l.tasks = append(l.tasks, task)
}

// MarkAt sets the done flag of the task at index and returns it.
func (l *TaskList) MarkAt(index int, done bool) (Task, error) {
	if !l.inRange(index) {
		return nil, ErrInvalidIndex
	}
	task := l.tasks[index]
	if done {
		task.MarkDone()
	} else {
		task.MarkUndone()
	}
	return task, nil
}

// DeleteAt removes the task at index and returns it.
func (l *TaskList) DeleteAt(index int) (Task, error) {
	if !l.inRange(index) {
		return nil, ErrInvalidIndex
	}
	removed := l.tasks[index]
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return removed, nil
}

// All returns a copy of the ordered sequence. An empty result means the list is empty.
func (l *TaskList) All() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Find returns, in list order, the tasks whose description contains keyword.
// Matching is case-sensitive.
func (l *TaskList) Find(keyword string) []Task {
	var matches []Task
	for _, task := range l.tasks {
		if strings.Contains(task.Description(), keyword) {
			matches = append(matches, task)
		}
	}
	return matches
}

// Size reports the current number of tasks.
func (l *TaskList) Size() int {
	return len(l.tasks)
}

func (l *TaskList) inRange(index int) bool {
	return index >= 0 && index < len(l.tasks)
}
