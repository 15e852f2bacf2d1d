package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncProviderCall is a no-op.
func (n *NoopRecorder) IncProviderCall(operation, status string) {}

// ObserveProviderCallDuration is a no-op.
func (n *NoopRecorder) ObserveProviderCallDuration(operation string, duration time.Duration) {}

// IncTokenVerification is a no-op.
func (n *NoopRecorder) IncTokenVerification(status string) {}
