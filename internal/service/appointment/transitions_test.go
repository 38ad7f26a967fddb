package appointment

import (
	"testing"

	entappt "github.com/vaenkat/health-ecosystem-hub/internal/repo/appointment"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entappt.Status
		to   entappt.Status
		want bool
	}{
		{"scheduled to completed", entappt.StatusScheduled, entappt.StatusCompleted, true},
		{"scheduled to cancelled", entappt.StatusScheduled, entappt.StatusCancelled, true},
		{"scheduled to no_show", entappt.StatusScheduled, entappt.StatusNoShow, true},
		{"completed is terminal", entappt.StatusCompleted, entappt.StatusScheduled, false},
		{"cancelled is terminal", entappt.StatusCancelled, entappt.StatusScheduled, false},
		{"no_show is terminal", entappt.StatusNoShow, entappt.StatusCompleted, false},
		{"no self transition", entappt.StatusScheduled, entappt.StatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
