package usecase

import (
	"context"

	"carRentalFe/internal/modules/rental/domain"
)

// PageDataUseCase assembles the view data each page hands to the renderer.
// Every method substitutes documented defaults for failed or unrecognizable
// inputs, so the renderer always receives a complete structure.
type PageDataUseCase struct {
	orchestrator *FetchOrchestrator
}

func NewPageDataUseCase(orchestrator *FetchOrchestrator) *PageDataUseCase {
	return &PageDataUseCase{orchestrator: orchestrator}
}

// CarStatusAvailable filters the booking form's car list.
const CarStatusAvailable = "AVAILABLE"

// HomeStats counts the four entity collections for the home page. Each failed
// call contributes zero without disturbing the others.
func (uc *PageDataUseCase) HomeStats(ctx context.Context) map[string]any {
	outcomes := uc.orchestrator.Dispatch(ctx, []domain.BackendCall{
		{Key: "cars", Path: "/cars"},
		{Key: "bookings", Path: "/bookings"},
		{Key: "contracts", Path: "/contracts"},
		{Key: "users", Path: "/users"},
	})
	return map[string]any{
		"totalCars":      countOrZero(outcomes[0], "cars"),
		"totalBookings":  countOrZero(outcomes[1], "bookings"),
		"totalContracts": countOrZero(outcomes[2], "contracts"),
		"totalUsers":     countOrZero(outcomes[3], "users"),
	}
}

// EntityList fetches one collection endpoint and normalizes it to a sequence.
// A failed call degrades to an empty list.
func (uc *PageDataUseCase) EntityList(ctx context.Context, path, domainKey string) []any {
	outcomes := uc.orchestrator.Dispatch(ctx, []domain.BackendCall{{Key: domainKey, Path: path}})
	return listOrEmpty(outcomes[0], domainKey)
}

// EntityDetail fetches one entity endpoint. It returns an error when the call
// failed or the body held no usable entity; the handler renders the error view.
func (uc *PageDataUseCase) EntityDetail(ctx context.Context, key, path string) (map[string]any, error) {
	outcomes := uc.orchestrator.Dispatch(ctx, []domain.BackendCall{{Key: key, Path: path}})
	return singleOrError(outcomes[0])
}

// BookingCreateForm loads the users and cars the booking form needs, keeping
// only cars whose status is AVAILABLE. Either list degrades to empty on failure.
func (uc *PageDataUseCase) BookingCreateForm(ctx context.Context) (users, cars []any) {
	outcomes := uc.orchestrator.Dispatch(ctx, []domain.BackendCall{
		{Key: "users", Path: "/users"},
		{Key: "cars", Path: "/cars"},
	})
	users = listOrEmpty(outcomes[0], "users")
	cars = domain.FilterByField(listOrEmpty(outcomes[1], "cars"), "status", CarStatusAvailable)
	return users, cars
}

// CarCreateForm loads the owner candidates for the new-car form.
func (uc *PageDataUseCase) CarCreateForm(ctx context.Context) []any {
	return uc.EntityList(ctx, "/users", "users")
}

// CarEditForm loads a car and the owner candidates together. A missing car is
// an error; the user list degrades to empty.
func (uc *PageDataUseCase) CarEditForm(ctx context.Context, path string) (car map[string]any, users []any, err error) {
	outcomes := uc.orchestrator.Dispatch(ctx, []domain.BackendCall{
		{Key: "car", Path: path},
		{Key: "users", Path: "/users"},
	})
	car, err = singleOrError(outcomes[0])
	if err != nil {
		return nil, nil, err
	}
	return car, listOrEmpty(outcomes[1], "users"), nil
}

// AdminDashboard combines the overview metrics object with the statistics
// series. Any failure falls back to the zeroed overview and an empty series.
func (uc *PageDataUseCase) AdminDashboard(ctx context.Context) (overview map[string]any, stats []any) {
	outcomes := uc.orchestrator.Dispatch(ctx, []domain.BackendCall{
		{Key: "overview", Path: "/admin/bookings/overview"},
		{Key: "stats", Path: "/admin/bookings/stats"},
	})
	overview = domain.ZeroOverview()
	if !outcomes[0].Failed() {
		if extracted, ok := domain.ExtractSingle(outcomes[0].Body); ok {
			overview = extracted
		}
	}
	return overview, listOrEmpty(outcomes[1], "stats")
}

func countOrZero(outcome domain.CallOutcome, domainKey string) int {
	if outcome.Failed() {
		return 0
	}
	return domain.ExtractCount(outcome.Body, domainKey)
}

func listOrEmpty(outcome domain.CallOutcome, domainKey string) []any {
	if outcome.Failed() {
		return []any{}
	}
	return domain.ExtractList(outcome.Body, domainKey)
}

func singleOrError(outcome domain.CallOutcome) (map[string]any, error) {
	if outcome.Failed() {
		return nil, outcome.Err
	}
	entity, ok := domain.ExtractSingle(outcome.Body)
	if !ok {
		return nil, errEmptyDetail(outcome.Call.Key)
	}
	return entity, nil
}
