package order

import (
	"testing"

	entorder "github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entorder.Status
		to   entorder.Status
		want bool
	}{
		{"pending to approved", entorder.StatusPending, entorder.StatusApproved, true},
		{"pending to cancelled", entorder.StatusPending, entorder.StatusCancelled, true},
		{"approved to fulfilled", entorder.StatusApproved, entorder.StatusFulfilled, true},
		{"no fulfillment without approval", entorder.StatusPending, entorder.StatusFulfilled, false},
		{"approved cannot be cancelled", entorder.StatusApproved, entorder.StatusCancelled, false},
		{"fulfilled is terminal", entorder.StatusFulfilled, entorder.StatusPending, false},
		{"cancelled is terminal", entorder.StatusCancelled, entorder.StatusApproved, false},
		{"no self transition", entorder.StatusPending, entorder.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
