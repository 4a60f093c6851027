package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/lys/api/transport"
	"github.com/fastygo/lys/domain"
	"github.com/fastygo/lys/pkg/logger"
	"github.com/fastygo/lys/usecase"
)

type baseHandler struct {
	logger *zap.Logger
}

func newBaseHandler(logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{logger: logger}
}

func (h baseHandler) log(ctx context.Context) *zap.Logger {
	return logger.WithSessionID(ctx, h.logger)
}

// respond turns the outcome of a mutation into a reply. A save failure does not undo
// the mutation, so the confirmation is still shown, followed by the error.
func (h baseHandler) respond(confirmation string, err error) (usecase.Result, error) {
	if err == nil {
		return usecase.Reply(confirmation), nil
	}
	if domain.IsDomainError(err, domain.ErrCodeIOFailure) {
		return usecase.Reply(confirmation, transport.FormatError(err)), nil
	}
	return usecase.Result{}, err
}
