package ports

import "context"

// RouteEstimator supplies an estimated delivery time for a free-text
// location. The estimate is informational only: it never influences
// pricing or status logic, and callers must treat estimator failures as
// non-fatal warnings.
type RouteEstimator interface {
	// Estimate returns the estimated driving time from the shop to the
	// location, in minutes.
	Estimate(ctx context.Context, location string) (int, error)
}
