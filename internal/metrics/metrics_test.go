package metrics

import (
	"testing"
	"time"
)

func TestInMemoryRecorder(t *testing.T) {
	m := NewInMemory()

	m.IncProviderCall("Login", "success")
	m.IncProviderCall("Login", "success")
	m.IncProviderCall("Login", "error")
	m.ObserveProviderCallDuration("Login", 10*time.Millisecond)
	m.IncTokenVerification("expired")

	snap := m.Snapshot()

	if got := snap.ProviderCalls["Login/success"]; got != 2 {
		t.Errorf("Login/success = %d, want 2", got)
	}
	if got := snap.ProviderCalls["Login/error"]; got != 1 {
		t.Errorf("Login/error = %d, want 1", got)
	}
	if got := snap.ProviderCallObservation["Login"]; got != 1 {
		t.Errorf("Login observations = %d, want 1", got)
	}
	if snap.ProviderCallDurationNs["Login"] != (10 * time.Millisecond).Nanoseconds() {
		t.Errorf("Login duration = %d, want 10ms", snap.ProviderCallDurationNs["Login"])
	}
	if got := snap.TokenVerifications["expired"]; got != 1 {
		t.Errorf("expired verifications = %d, want 1", got)
	}

	// Snapshot is a copy, not a view.
	snap.ProviderCalls["Login/success"] = 99
	if got := m.Snapshot().ProviderCalls["Login/success"]; got != 2 {
		t.Errorf("recorder mutated through snapshot: %d", got)
	}
}

func TestNoopRecorder(t *testing.T) {
	m := NewNoop()
	m.IncProviderCall("Login", "success")
	m.ObserveProviderCallDuration("Login", time.Millisecond)
	m.IncTokenVerification("success")
}
