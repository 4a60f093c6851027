package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/lys/api/transport"
	"github.com/fastygo/lys/usecase"
)

type SessionHandler struct {
	baseHandler
}

func NewSessionHandler(logger *zap.Logger) *SessionHandler {
	return &SessionHandler{baseHandler: newBaseHandler(logger)}
}

// Bye says goodbye and ends the session.
func (h *SessionHandler) Bye(ctx context.Context, _ string) (usecase.Result, error) {
	h.log(ctx).Debug("session termination requested")
	return usecase.Result{
		Messages:  []string{transport.Farewell()},
		Terminate: true,
	}, nil
}
