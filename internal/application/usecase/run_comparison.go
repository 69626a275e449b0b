package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmjfallon/cascade-beta/internal/application/dto"
	"github.com/dmjfallon/cascade-beta/internal/domain/event"
	"github.com/dmjfallon/cascade-beta/internal/domain/port"
	"github.com/dmjfallon/cascade-beta/internal/domain/service"
	"github.com/dmjfallon/cascade-beta/internal/domain/valueobject"
)

const resultCacheTTL = 1 * time.Hour

// RunComparisonUseCase executes one baseline-vs-cascade comparison, with a
// read-through result cache and a completion event. Cache and publisher
// failures are best-effort: the computed result is returned regardless.
type RunComparisonUseCase struct {
	engine    *service.ComparisonEngine
	cache     port.ResultCache
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewRunComparisonUseCase wires dependencies.
func NewRunComparisonUseCase(
	engine *service.ComparisonEngine,
	cache port.ResultCache,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *RunComparisonUseCase {
	return &RunComparisonUseCase{
		engine:    engine,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute runs a comparison for the given raw inputs.
func (uc *RunComparisonUseCase) Execute(
	ctx context.Context,
	req dto.CompareRequest,
) (dto.CompareResponse, error) {
	strategy, err := valueobject.NewStrategy(req.Strategy)
	if err != nil {
		return dto.CompareResponse{}, fmt.Errorf("parse strategy: %w", err)
	}
	redirectScheduled, redirectExtra := req.Redirects()

	// 1. Cache lookup keyed by the full request.
	key := cacheKey(req, strategy, redirectScheduled, redirectExtra)
	if cached, ok := uc.cache.Get(ctx, key); ok {
		var resp dto.CompareResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			uc.logger.DebugContext(ctx, "comparison served from cache", "key", key)
			return resp, nil
		}
		uc.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key)
	}

	// 2. Run the engine.
	result, err := uc.engine.Compare(service.CompareRequest{
		LoanA:             req.LoanA,
		LoanB:             req.LoanB,
		ExtraA:            req.ExtraA,
		ExtraB:            req.ExtraB,
		RedirectScheduled: redirectScheduled,
		RedirectExtra:     redirectExtra,
		Strategy:          strategy,
	})
	if err != nil {
		return dto.CompareResponse{}, fmt.Errorf("run comparison: %w", err)
	}

	resp := dto.CompareResponse{
		Strategy:          strategy.String(),
		RedirectScheduled: redirectScheduled,
		RedirectExtra:     redirectExtra,
		ScheduledPaymentA: result.ScheduledPaymentA,
		ScheduledPaymentB: result.ScheduledPaymentB,
		MonthsSaved:       result.MonthsSaved,
		InterestSaved:     result.InterestSaved,
		Baseline:          result.Baseline,
		Cascade:           result.Cascade,
	}

	// 3. Cache the encoded result, best effort.
	if encoded, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, key, string(encoded), resultCacheTTL); err != nil {
			uc.logger.WarnContext(ctx, "failed to cache comparison result", "error", err)
		}
	}

	// 4. Publish the completion event, best effort.
	evt := event.NewComparisonCompleted(
		"", strategy.String(), result.MonthsSaved, result.InterestSaved, result.Cascade.MonthsToPayoff,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish comparison event", "error", err)
	}

	return resp, nil
}

// cacheKey hashes every input that influences the result.
func cacheKey(req dto.CompareRequest, strategy valueobject.Strategy, redirectScheduled, redirectExtra bool) string {
	h := sha256.New()
	fmt.Fprintf(h, "%v|%v|%v|%v|%v|%v|%v|%v|%t|%t|%s",
		req.LoanA.Balance, req.LoanA.Rate, req.LoanA.Months,
		req.LoanB.Balance, req.LoanB.Rate, req.LoanB.Months,
		req.ExtraA, req.ExtraB,
		redirectScheduled, redirectExtra, strategy,
	)
	return "cascade:compare:" + hex.EncodeToString(h.Sum(nil))
}
