package usecase

import (
	"context"
	"log/slog"
	"sync"

	"carRentalFe/internal/modules/rental/application/port"
	"carRentalFe/internal/modules/rental/domain"
)

// FetchOrchestrator executes the backend calls a page needs. A failing call is
// converted into a failed outcome for that call only; the orchestrator itself
// never returns an error, so a page whose every call fails still receives a
// full outcome set and can render a degraded state.
type FetchOrchestrator struct {
	fetcher port.BackendFetcher
}

func NewFetchOrchestrator(fetcher port.BackendFetcher) *FetchOrchestrator {
	return &FetchOrchestrator{fetcher: fetcher}
}

// Dispatch runs independent calls concurrently. Outcomes are positioned by call
// index, so assembly order is deterministic regardless of arrival order.
func (o *FetchOrchestrator) Dispatch(ctx context.Context, calls []domain.BackendCall) []domain.CallOutcome {
	outcomes := make([]domain.CallOutcome, len(calls))
	var wg sync.WaitGroup
	for i, call := range calls {
		i, call := i, call
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = o.execute(ctx, call)
		}()
	}
	wg.Wait()
	return outcomes
}

// DispatchSequential runs calls in order, for pages where one call's input will
// depend on an earlier outcome. No current page needs it.
func (o *FetchOrchestrator) DispatchSequential(ctx context.Context, calls []domain.BackendCall) []domain.CallOutcome {
	outcomes := make([]domain.CallOutcome, len(calls))
	for i, call := range calls {
		outcomes[i] = o.execute(ctx, call)
	}
	return outcomes
}

func (o *FetchOrchestrator) execute(ctx context.Context, call domain.BackendCall) domain.CallOutcome {
	slog.Debug("backend call start", slog.String("key", call.Key), slog.String("path", call.Path))
	body, err := o.fetcher.Get(ctx, call.Path, call.Query)
	if err != nil {
		slog.Warn("backend call failed", slog.String("key", call.Key), slog.String("path", call.Path), slog.Any("error", err))
		return domain.CallOutcome{Call: call, Err: err}
	}
	slog.Info("backend call ok", slog.String("key", call.Key), slog.String("path", call.Path))
	return domain.CallOutcome{Call: call, Body: body}
}
