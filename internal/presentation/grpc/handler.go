package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmjfallon/cascade-beta/internal/application/usecase"
	"github.com/dmjfallon/cascade-beta/internal/domain/port"
	"github.com/dmjfallon/cascade-beta/internal/domain/service"
	"github.com/dmjfallon/cascade-beta/internal/domain/valueobject"
)

// CascadeHandler exposes comparison operations over gRPC.
type CascadeHandler struct {
	UnimplementedCascadeServiceServer

	compare           *usecase.RunComparisonUseCase
	compareStrategies *usecase.CompareStrategiesUseCase
	saveScenario      *usecase.SaveScenarioUseCase
	getScenario       *usecase.GetScenarioUseCase
	logger            *slog.Logger
}

// NewCascadeHandler creates a new handler with all use-case dependencies.
func NewCascadeHandler(
	compare *usecase.RunComparisonUseCase,
	compareStrategies *usecase.CompareStrategiesUseCase,
	saveScenario *usecase.SaveScenarioUseCase,
	getScenario *usecase.GetScenarioUseCase,
	logger *slog.Logger,
) *CascadeHandler {
	return &CascadeHandler{
		compare:           compare,
		compareStrategies: compareStrategies,
		saveScenario:      saveScenario,
		getScenario:       getScenario,
		logger:            logger,
	}
}

// Compare runs a baseline-versus-cascade comparison for one pair of loans.
func (h *CascadeHandler) Compare(ctx context.Context, req *CompareRequest) (*CompareResponse, error) {
	resp, err := h.compare.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "Compare", err)
	}
	return &resp, nil
}

// CompareStrategies runs the comparison under both payoff strategies.
func (h *CascadeHandler) CompareStrategies(ctx context.Context, req *CompareStrategiesRequest) (*CompareStrategiesResponse, error) {
	resp, err := h.compareStrategies.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "CompareStrategies", err)
	}
	return &resp, nil
}

// SaveScenario stores a named set of comparison inputs for later replay.
func (h *CascadeHandler) SaveScenario(ctx context.Context, req *SaveScenarioRequest) (*SaveScenarioResponse, error) {
	resp, err := h.saveScenario.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "SaveScenario", err)
	}
	return &resp, nil
}

// GetScenario loads a saved scenario and replays its comparison.
func (h *CascadeHandler) GetScenario(ctx context.Context, req *GetScenarioRequest) (*GetScenarioResponse, error) {
	resp, err := h.getScenario.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "GetScenario", err)
	}
	return &resp, nil
}

// toStatus maps domain errors to gRPC status codes.
func (h *CascadeHandler) toStatus(ctx context.Context, method string, err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, port.ErrScenarioNotFound):
		code = codes.NotFound
	case errors.Is(err, valueobject.ErrUnknownStrategy), errors.Is(err, usecase.ErrEmptyScenarioName):
		code = codes.InvalidArgument
	case errors.Is(err, service.ErrInvariantViolation):
		code = codes.Internal
	default:
		code = codes.Internal
	}

	if code == codes.Internal {
		h.logger.ErrorContext(ctx, "request failed", "method", method, "error", err)
	}
	return status.Error(code, err.Error())
}
