package metrics

import (
	"sync"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ProviderCalls           map[string]uint64 // "operation/status" -> count
	ProviderCallDurationNs  map[string]int64  // operation -> total duration
	ProviderCallObservation map[string]uint64 // operation -> observation count
	TokenVerifications      map[string]uint64 // status -> count
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	mu                sync.Mutex
	providerCalls     map[string]uint64
	providerDuration  map[string]int64
	providerObserved  map[string]uint64
	tokenVerification map[string]uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		providerCalls:     make(map[string]uint64),
		providerDuration:  make(map[string]int64),
		providerObserved:  make(map[string]uint64),
		tokenVerification: make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		ProviderCalls:           make(map[string]uint64, len(m.providerCalls)),
		ProviderCallDurationNs:  make(map[string]int64, len(m.providerDuration)),
		ProviderCallObservation: make(map[string]uint64, len(m.providerObserved)),
		TokenVerifications:      make(map[string]uint64, len(m.tokenVerification)),
	}
	for k, v := range m.providerCalls {
		snap.ProviderCalls[k] = v
	}
	for k, v := range m.providerDuration {
		snap.ProviderCallDurationNs[k] = v
	}
	for k, v := range m.providerObserved {
		snap.ProviderCallObservation[k] = v
	}
	for k, v := range m.tokenVerification {
		snap.TokenVerifications[k] = v
	}
	return snap
}

// IncProviderCall increments the counter for one provider round-trip.
func (m *InMemoryRecorder) IncProviderCall(operation, status string) {
	m.mu.Lock()
	m.providerCalls[operation+"/"+status]++
	m.mu.Unlock()
}

// ObserveProviderCallDuration records a provider round-trip duration.
func (m *InMemoryRecorder) ObserveProviderCallDuration(operation string, duration time.Duration) {
	m.mu.Lock()
	m.providerDuration[operation] += duration.Nanoseconds()
	m.providerObserved[operation]++
	m.mu.Unlock()
}

// IncTokenVerification increments the counter for one token verification.
func (m *InMemoryRecorder) IncTokenVerification(status string) {
	m.mu.Lock()
	m.tokenVerification[status]++
	m.mu.Unlock()
}
