package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"carRentalFe/internal/modules/rental/application/port"
	"carRentalFe/internal/modules/rental/domain"
)

func newPages(fetcher fetcherFunc) *PageDataUseCase {
	return NewPageDataUseCase(NewFetchOrchestrator(fetcher))
}

func TestHomeStats_MixedEnvelopesAndPartialFailure(t *testing.T) {
	t.Parallel()

	fetcher := fetcherFunc(func(_ context.Context, path string, _ map[string]string) (any, error) {
		switch path {
		case "/cars":
			return []any{1, 2, 3}, nil
		case "/bookings":
			return map[string]any{"data": []any{1, 2}}, nil
		case "/contracts":
			return nil, errors.New("connection refused")
		case "/users":
			return map[string]any{"total": float64(5)}, nil
		}
		t.Fatalf("unexpected path %s", path)
		return nil, nil
	})

	stats := newPages(fetcher).HomeStats(context.Background())

	want := map[string]any{
		"totalCars":      3,
		"totalBookings":  2,
		"totalContracts": 0,
		"totalUsers":     5,
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestHomeStats_TotalFailureYieldsZeros(t *testing.T) {
	t.Parallel()

	fetcher := fetcherFunc(func(_ context.Context, _ string, _ map[string]string) (any, error) {
		return nil, errors.New("backend down")
	})

	stats := newPages(fetcher).HomeStats(context.Background())

	want := map[string]any{
		"totalCars":      0,
		"totalBookings":  0,
		"totalContracts": 0,
		"totalUsers":     0,
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestEntityList_FailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	fetcher := fetcherFunc(func(_ context.Context, _ string, _ map[string]string) (any, error) {
		return nil, errors.New("timeout")
	})

	cars := newPages(fetcher).EntityList(context.Background(), "/cars", "cars")
	if len(cars) != 0 {
		t.Fatalf("expected empty list, got %#v", cars)
	}
}

func TestEntityDetail(t *testing.T) {
	t.Parallel()

	entity := map[string]any{"_id": "42", "brand": "Toyota"}

	t.Run("unwraps data envelope", func(t *testing.T) {
		fetcher := fetcherFunc(func(_ context.Context, path string, _ map[string]string) (any, error) {
			if path != "/cars/42" {
				t.Fatalf("unexpected path %s", path)
			}
			return map[string]any{"success": true, "data": entity}, nil
		})

		car, err := newPages(fetcher).EntityDetail(context.Background(), "car", "/cars/42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(entity, car); diff != "" {
			t.Fatalf("entity mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("propagates call failure", func(t *testing.T) {
		fetcher := fetcherFunc(func(_ context.Context, _ string, _ map[string]string) (any, error) {
			return nil, port.ErrNotFound
		})

		if _, err := newPages(fetcher).EntityDetail(context.Background(), "car", "/cars/42"); !errors.Is(err, port.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("body without entity is a miss", func(t *testing.T) {
		fetcher := fetcherFunc(func(_ context.Context, _ string, _ map[string]string) (any, error) {
			return []any{}, nil
		})

		if _, err := newPages(fetcher).EntityDetail(context.Background(), "car", "/cars/42"); !errors.Is(err, port.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestBookingCreateForm_FiltersAvailableCarsInOrder(t *testing.T) {
	t.Parallel()

	fetcher := fetcherFunc(func(_ context.Context, path string, _ map[string]string) (any, error) {
		switch path {
		case "/users":
			return map[string]any{"users": []any{map[string]any{"_id": "u1"}}}, nil
		case "/cars":
			return []any{
				map[string]any{"_id": "c1", "status": "AVAILABLE"},
				map[string]any{"_id": "c2", "status": "RENTED"},
				map[string]any{"_id": "c3", "status": "MAINTENANCE"},
				map[string]any{"_id": "c4", "status": "AVAILABLE"},
				map[string]any{"_id": "c5", "status": "UNAVAILABLE"},
			}, nil
		}
		t.Fatalf("unexpected path %s", path)
		return nil, nil
	})

	users, cars := newPages(fetcher).BookingCreateForm(context.Background())

	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	wantCars := []any{
		map[string]any{"_id": "c1", "status": "AVAILABLE"},
		map[string]any{"_id": "c4", "status": "AVAILABLE"},
	}
	if diff := cmp.Diff(wantCars, cars); diff != "" {
		t.Fatalf("available cars mismatch (-want +got):\n%s", diff)
	}
}

func TestBookingCreateForm_FailuresDegradeToEmptyLists(t *testing.T) {
	t.Parallel()

	fetcher := fetcherFunc(func(_ context.Context, _ string, _ map[string]string) (any, error) {
		return nil, errors.New("backend down")
	})

	users, cars := newPages(fetcher).BookingCreateForm(context.Background())
	if len(users) != 0 || len(cars) != 0 {
		t.Fatalf("expected empty lists, got users=%#v cars=%#v", users, cars)
	}
}

func TestCarEditForm(t *testing.T) {
	t.Parallel()

	entity := map[string]any{"_id": "7", "brand": "Kia"}

	t.Run("users degrade while car loads", func(t *testing.T) {
		fetcher := fetcherFunc(func(_ context.Context, path string, _ map[string]string) (any, error) {
			if path == "/cars/7" {
				return map[string]any{"data": entity}, nil
			}
			return nil, errors.New("users unavailable")
		})

		car, users, err := newPages(fetcher).CarEditForm(context.Background(), "/cars/7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(entity, car); diff != "" {
			t.Fatalf("car mismatch (-want +got):\n%s", diff)
		}
		if len(users) != 0 {
			t.Fatalf("expected empty users, got %#v", users)
		}
	})

	t.Run("missing car is an error", func(t *testing.T) {
		fetcher := fetcherFunc(func(_ context.Context, path string, _ map[string]string) (any, error) {
			if path == "/cars/7" {
				return nil, port.ErrNotFound
			}
			return []any{}, nil
		})

		if _, _, err := newPages(fetcher).CarEditForm(context.Background(), "/cars/7"); !errors.Is(err, port.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAdminDashboard(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		overviewBody := map[string]any{
			"totalBookings":     float64(12),
			"confirmedBookings": float64(5),
			"pendingBookings":   float64(3),
			"completedBookings": float64(2),
			"cancelledBookings": float64(2),
			"totalRevenue":      float64(9000000),
		}
		series := []any{map[string]any{"_id": "2026-07", "count": float64(4)}}

		fetcher := fetcherFunc(func(_ context.Context, path string, _ map[string]string) (any, error) {
			switch path {
			case "/admin/bookings/overview":
				return map[string]any{"success": true, "data": overviewBody}, nil
			case "/admin/bookings/stats":
				return map[string]any{"data": series}, nil
			}
			t.Fatalf("unexpected path %s", path)
			return nil, nil
		})

		overview, stats := newPages(fetcher).AdminDashboard(context.Background())
		if diff := cmp.Diff(overviewBody, overview); diff != "" {
			t.Fatalf("overview mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(series, stats); diff != "" {
			t.Fatalf("stats mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("failure falls back to zeroed overview", func(t *testing.T) {
		fetcher := fetcherFunc(func(_ context.Context, _ string, _ map[string]string) (any, error) {
			return nil, errors.New("backend down")
		})

		overview, stats := newPages(fetcher).AdminDashboard(context.Background())
		if diff := cmp.Diff(domain.ZeroOverview(), overview); diff != "" {
			t.Fatalf("overview mismatch (-want +got):\n%s", diff)
		}
		if len(stats) != 0 {
			t.Fatalf("expected empty series, got %#v", stats)
		}
	})
}
