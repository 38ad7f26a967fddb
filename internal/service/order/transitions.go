package order

import (
	entorder "github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
)

// transitions is the full status machine. Approval gates fulfillment:
// a pending order can be approved or cancelled, only an approved order
// can be fulfilled, and fulfilled/cancelled are terminal.
var transitions = map[entorder.Status][]entorder.Status{
	entorder.StatusPending:   {entorder.StatusApproved, entorder.StatusCancelled},
	entorder.StatusApproved:  {entorder.StatusFulfilled},
	entorder.StatusFulfilled: {},
	entorder.StatusCancelled: {},
}

// CanTransition reports whether from → to is a legal status change.
func CanTransition(from, to entorder.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
