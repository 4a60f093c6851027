package domain

import (
	"fmt"
	"strings"
)

// Kind is the one-letter type tag of a task, shared by the rendering and the stored record.
type Kind string

const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// Task is a unit of work with a description and completion state.
// The set of implementations is closed: *Todo, *Deadline and *Event.
type Task interface {
	Kind() Kind
	Description() string
	IsDone() bool
	MarkDone()
	MarkUndone()
	Render() string

	suffix() string
}

type base struct {
	description string
	done        bool
}

func (b *base) Description() string { return b.description }

func (b *base) IsDone() bool { return b.done }

func (b *base) MarkDone() { b.done = true }

func (b *base) MarkUndone() { b.done = false }

func (b *base) suffix() string { return "" }

// Todo is a plain task without dates.
type Todo struct {
	base
}

func NewTodo(description string) *Todo {
	return &Todo{base: base{description: description}}
}

func (t *Todo) Kind() Kind { return KindTodo }

func (t *Todo) Render() string { return render(t) }

func (t *Todo) String() string { return t.Render() }

// Deadline is a task that must be done by a free-text date.
type Deadline struct {
	base
	By string
}

func NewDeadline(description, by string) *Deadline {
	return &Deadline{base: base{description: description}, By: by}
}

func (d *Deadline) Kind() Kind { return KindDeadline }

func (d *Deadline) Render() string { return render(d) }

func (d *Deadline) String() string { return d.Render() }

func (d *Deadline) suffix() string {
	return fmt.Sprintf(" (by: %s)", d.By)
}

// Event is a task spanning a free-text time range.
type Event struct {
	base
	From string
	To   string
}

func NewEvent(description, from, to string) *Event {
	return &Event{base: base{description: description}, From: from, To: to}
}

func (e *Event) Kind() Kind { return KindEvent }

func (e *Event) Render() string { return render(e) }

func (e *Event) String() string { return e.Render() }

func (e *Event) suffix() string {
	return fmt.Sprintf(" (from: %s to: %s)", e.From, e.To)
}

// render produces "[<tag>][<X or space>] <description><suffix>".
func render(t Task) string {
	status := " "
	if t.IsDone() {
		status = "X"
	}
	return fmt.Sprintf("[%s][%s] %s%s", t.Kind(), status, strings.TrimSpace(t.Description()), t.suffix())
}
