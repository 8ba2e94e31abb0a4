package calc

import (
	"testing"

	"github.com/nirbeaver/construction-management/internal/model"
)

func TestProjectStatusPolicy(t *testing.T) {
	policy := ProjectStatusPolicy()
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{string(model.ProjectStatusPlanning), string(model.ProjectStatusInProgress), true},
		{string(model.ProjectStatusInProgress), string(model.ProjectStatusOnHold), true},
		{string(model.ProjectStatusOnHold), string(model.ProjectStatusInProgress), true},
		{string(model.ProjectStatusInProgress), string(model.ProjectStatusCompleted), true},
		{string(model.ProjectStatusCompleted), string(model.ProjectStatusInProgress), false},
		{string(model.ProjectStatusCancelled), string(model.ProjectStatusPlanning), false},
		{string(model.ProjectStatusPlanning), string(model.ProjectStatusCompleted), false},
		{string(model.ProjectStatusOnHold), string(model.ProjectStatusOnHold), true},
	}
	for _, tc := range cases {
		if got := policy.Allowed(tc.from, tc.to); got != tc.want {
			t.Errorf("Allowed(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestSubcontractorStatusPolicy(t *testing.T) {
	policy := SubcontractorStatusPolicy()
	if !policy.Allowed(string(model.SubcontractorStatusPending), string(model.SubcontractorStatusActive)) {
		t.Error("pending -> active should be allowed")
	}
	if policy.Allowed(string(model.SubcontractorStatusCompleted), string(model.SubcontractorStatusActive)) {
		t.Error("completed -> active should be rejected")
	}
}
