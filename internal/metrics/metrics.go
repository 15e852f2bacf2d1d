// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// IncProviderCall counts one identity-provider round-trip.
	// status is "success" or "error".
	IncProviderCall(operation, status string)

	// ObserveProviderCallDuration records how long a provider round-trip took.
	ObserveProviderCallDuration(operation string, duration time.Duration)

	// IncTokenVerification counts one access-token verification.
	// status is "success", "expired" or "invalid".
	IncTokenVerification(status string)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
