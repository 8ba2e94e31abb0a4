package calc

import "github.com/nirbeaver/construction-management/internal/model"

// TransitionPolicy validates status transitions for callers that opt into
// enforcement. Nothing in the service applies a policy implicitly: any
// status may still be written over any other unless the caller checks
// Allowed first.
type TransitionPolicy struct {
	transitions map[string][]string
}

// Allowed reports whether moving from one status to another is permitted.
// A no-op transition (from == to) is always allowed.
func (p TransitionPolicy) Allowed(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range p.transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ProjectStatusPolicy is a forward-only project lifecycle: planning work
// starts, may pause, and ends completed or cancelled. Cancelled and
// completed are terminal.
func ProjectStatusPolicy() TransitionPolicy {
	return TransitionPolicy{transitions: map[string][]string{
		string(model.ProjectStatusPlanning): {
			string(model.ProjectStatusInProgress),
			string(model.ProjectStatusCancelled),
		},
		string(model.ProjectStatusInProgress): {
			string(model.ProjectStatusOnHold),
			string(model.ProjectStatusCompleted),
			string(model.ProjectStatusCancelled),
		},
		string(model.ProjectStatusOnHold): {
			string(model.ProjectStatusInProgress),
			string(model.ProjectStatusCancelled),
		},
	}}
}

// SubcontractorStatusPolicy: pending work becomes active, active work
// completes.
func SubcontractorStatusPolicy() TransitionPolicy {
	return TransitionPolicy{transitions: map[string][]string{
		string(model.SubcontractorStatusPending): {
			string(model.SubcontractorStatusActive),
		},
		string(model.SubcontractorStatusActive): {
			string(model.SubcontractorStatusCompleted),
		},
	}}
}
