package labreport

import (
	"testing"

	entlab "github.com/vaenkat/health-ecosystem-hub/internal/repo/labreport"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entlab.Status
		to   entlab.Status
		want bool
	}{
		{"pending to completed", entlab.StatusPending, entlab.StatusCompleted, true},
		{"completed to reviewed", entlab.StatusCompleted, entlab.StatusReviewed, true},
		{"no skip from pending to reviewed", entlab.StatusPending, entlab.StatusReviewed, false},
		{"reviewed is terminal", entlab.StatusReviewed, entlab.StatusPending, false},
		{"no way back to pending", entlab.StatusCompleted, entlab.StatusPending, false},
		{"no self transition", entlab.StatusPending, entlab.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
