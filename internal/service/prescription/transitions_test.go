package prescription

import (
	"testing"

	entrx "github.com/vaenkat/health-ecosystem-hub/internal/repo/prescription"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entrx.Status
		to   entrx.Status
		want bool
	}{
		{"active to completed", entrx.StatusActive, entrx.StatusCompleted, true},
		{"active to discontinued", entrx.StatusActive, entrx.StatusDiscontinued, true},
		{"completed is terminal", entrx.StatusCompleted, entrx.StatusActive, false},
		{"completed to discontinued", entrx.StatusCompleted, entrx.StatusDiscontinued, false},
		{"discontinued is terminal", entrx.StatusDiscontinued, entrx.StatusActive, false},
		{"no self transition", entrx.StatusActive, entrx.StatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
