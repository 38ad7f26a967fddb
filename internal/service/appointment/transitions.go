package appointment

import (
	entappt "github.com/vaenkat/health-ecosystem-hub/internal/repo/appointment"
)

// transitions is the full status machine: scheduled fans out to the
// three terminal outcomes, nothing leaves a terminal state.
var transitions = map[entappt.Status][]entappt.Status{
	entappt.StatusScheduled: {entappt.StatusCompleted, entappt.StatusCancelled, entappt.StatusNoShow},
	entappt.StatusCompleted: {},
	entappt.StatusCancelled: {},
	entappt.StatusNoShow:    {},
}

// CanTransition reports whether from → to is a legal status change.
func CanTransition(from, to entappt.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
