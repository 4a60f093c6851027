package router

import (
	apiHandler "github.com/fastygo/lys/api/handler"
	"github.com/fastygo/lys/usecase"
)

type Handlers struct {
	Task    *apiHandler.TaskHandler
	Session *apiHandler.SessionHandler
}

// New binds every command keyword to its handler. Keywords that only read
// state are registered as queries.
func New(handlers Handlers) *usecase.Dispatcher {
	d := usecase.NewDispatcher()

	d.RegisterCommand("bye", handlers.Session.Bye)

	d.RegisterQuery("list", handlers.Task.List)
	d.RegisterQuery("find", handlers.Task.Find)

	d.RegisterCommand("todo", handlers.Task.Todo)
	d.RegisterCommand("deadline", handlers.Task.Deadline)
	d.RegisterCommand("event", handlers.Task.Event)
	d.RegisterCommand("mark", handlers.Task.Mark)
	d.RegisterCommand("unmark", handlers.Task.Unmark)
	d.RegisterCommand("delete", handlers.Task.Delete)

	return d
}
