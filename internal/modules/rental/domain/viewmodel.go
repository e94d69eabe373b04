package domain

// ErrorView is the uniform shape rendered whenever a page cannot assemble its
// normal view data: a title, a user-facing message, and a diagnostic detail.
type ErrorView struct {
	Title   string
	Message string
	Detail  string
}

// ViewData converts the error view into the generic map handed to the renderer.
func (e ErrorView) ViewData() map[string]any {
	return map[string]any{
		"title":   e.Title,
		"page":    "",
		"message": e.Message,
		"error":   e.Detail,
	}
}

// ZeroOverview is the canonical fallback for the admin dashboard overview when
// the backend cannot be reached. The renderer always receives every counter.
func ZeroOverview() map[string]any {
	return map[string]any{
		"totalBookings":     0,
		"confirmedBookings": 0,
		"pendingBookings":   0,
		"completedBookings": 0,
		"cancelledBookings": 0,
		"totalRevenue":      0,
	}
}
