package mongodb

import (
	"errors"
	"testing"
)

func TestManager_InitialState(t *testing.T) {
	m := NewManager("mongodb://localhost:27017", "ishahbak")

	if got := m.State(); got != StateDisconnected {
		t.Errorf("State() = %v, want StateDisconnected", got)
	}
	if _, err := m.Database(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Database() error = %v, want ErrNotConnected", err)
	}
}

func TestManager_StopIsIdempotent(t *testing.T) {
	m := NewManager("mongodb://localhost:27017", "ishahbak")
	m.Stop()
	m.Stop()

	if got := m.State(); got != StateDisconnected {
		t.Errorf("State() after Stop = %v, want StateDisconnected", got)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{state: StateDisconnected, want: "disconnected"},
		{state: StateConnecting, want: "connecting"},
		{state: StateConnected, want: "connected"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
