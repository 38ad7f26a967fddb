package labreport

import (
	entlab "github.com/vaenkat/health-ecosystem-hub/internal/repo/labreport"
)

// transitions is the monotonic pipeline pending → completed → reviewed.
// There is no way back: reviewed results are the record of care.
var transitions = map[entlab.Status][]entlab.Status{
	entlab.StatusPending:   {entlab.StatusCompleted},
	entlab.StatusCompleted: {entlab.StatusReviewed},
	entlab.StatusReviewed:  {},
}

// CanTransition reports whether from → to is a legal status change.
func CanTransition(from, to entlab.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
