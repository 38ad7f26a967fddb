package prescription

import (
	entrx "github.com/vaenkat/health-ecosystem-hub/internal/repo/prescription"
)

// transitions is the full status machine: active is the only state
// with outgoing edges; completed and discontinued are terminal.
var transitions = map[entrx.Status][]entrx.Status{
	entrx.StatusActive:       {entrx.StatusCompleted, entrx.StatusDiscontinued},
	entrx.StatusCompleted:    {},
	entrx.StatusDiscontinued: {},
}

// CanTransition reports whether from → to is a legal status change.
func CanTransition(from, to entrx.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
