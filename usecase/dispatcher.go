package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/fastygo/lys/domain"
)

// Result is what a handler hands back to the session loop.
type Result struct {
	// Messages are written as separate framed blocks, in order.
	Messages []string

	// Terminate ends the session after the messages are written.
	Terminate bool
}

// Reply builds a Result carrying the given messages.
func Reply(messages ...string) Result {
	return Result{Messages: messages}
}

// CommandHandler serves a keyword that may change state.
type CommandHandler func(ctx context.Context, args string) (Result, error)

// QueryHandler serves a keyword that only reads state.
type QueryHandler func(ctx context.Context, args string) (Result, error)

type Dispatcher struct {
	cmdHandlers map[string]CommandHandler
	qryHandlers map[string]QueryHandler
	mu          sync.RWMutex
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		cmdHandlers: make(map[string]CommandHandler),
		qryHandlers: make(map[string]QueryHandler),
	}
}

func (d *Dispatcher) RegisterCommand(keyword string, handler CommandHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cmdHandlers[strings.ToLower(keyword)] = handler
}

func (d *Dispatcher) RegisterQuery(keyword string, handler QueryHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.qryHandlers[strings.ToLower(keyword)] = handler
}

// Execute routes keyword to its command or query handler.
// Unregistered keywords yield domain.ErrUnknownCommand.
func (d *Dispatcher) Execute(ctx context.Context, keyword string, args string) (Result, error) {
	keyword = strings.ToLower(keyword)

	d.mu.RLock()
	cmd, isCmd := d.cmdHandlers[keyword]
	qry, isQry := d.qryHandlers[keyword]
	d.mu.RUnlock()

	switch {
	case isCmd:
		return cmd(ctx, args)
	case isQry:
		return qry(ctx, args)
	default:
		return Result{}, domain.ErrUnknownCommand
	}
}

// IsQuery reports whether keyword is registered as a read-only query.
func (d *Dispatcher) IsQuery(keyword string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.qryHandlers[strings.ToLower(keyword)]
	return ok
}
