package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(s string) *string { return &s }

func TestReconcileAssignments_OrphanReference(t *testing.T) {
	tasks := []Task{{ID: "t1", AssignedStaffID: ref("s-missing"), Status: TaskPending}}
	staff := []Staff{{ID: "s1", Name: "Ramesh", DutyStatus: OnDuty}}

	var out []AssignedItem[Task]
	assert.NotPanics(t, func() {
		out = ReconcileAssignments(tasks, staff)
	})
	require.Len(t, out, 1)
	assert.Equal(t, Unassigned, out[0].StaffName)
	assert.False(t, out[0].Assigned)
	assert.True(t, out[0].Orphaned)
}

func TestReconcileAssignments_Resolution(t *testing.T) {
	staff := []Staff{
		{ID: "s1", Name: "Ramesh"},
		{ID: "s2", Name: "Shankar"},
		{ID: "s3"},
		{ID: "s1", Name: "Duplicate"},
	}

	tests := []struct {
		name     string
		assignee *string
		want     string
		assigned bool
		orphaned bool
	}{
		{"Resolved", ref("s2"), "Shankar", true, false},
		{"NilReference", nil, Unassigned, false, false},
		{"EmptyReference", ref(""), Unassigned, false, false},
		{"Dangling", ref("s9"), Unassigned, false, true},
		{"NamelessStaff", ref("s3"), UnknownStaff, true, false},
		{"DuplicateIDFirstWins", ref("s1"), "Ramesh", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ReconcileAssignments([]Complaint{{ID: "c1", AssignedStaffID: tt.assignee}}, staff)
			require.Len(t, out, 1)
			assert.Equal(t, tt.want, out[0].StaffName)
			assert.Equal(t, tt.assigned, out[0].Assigned)
			assert.Equal(t, tt.orphaned, out[0].Orphaned)
		})
	}
}

func TestReconcileAssignments_StatusPassThroughAndOrder(t *testing.T) {
	tasks := []Task{
		{ID: "T103", AssignedStaffID: ref("s3"), Status: TaskCompleted},
		{ID: "T101", AssignedStaffID: ref("s1"), Status: TaskInProgress},
		{ID: "T102", Status: TaskPending},
	}
	staff := []Staff{{ID: "s1", Name: "Ramesh"}, {ID: "s3", Name: "Ravi"}}

	out := ReconcileAssignments(tasks, staff)
	require.Len(t, out, 3)
	assert.Equal(t, "T103", out[0].Item.ID)
	assert.Equal(t, TaskCompleted, out[0].Item.Status)
	assert.Equal(t, "Ravi", out[0].StaffName)
	assert.Equal(t, TaskInProgress, out[1].Item.Status)
	assert.Equal(t, Unassigned, out[2].StaffName)
}

func TestReconcileAssignments_Idempotent(t *testing.T) {
	complaints := []Complaint{
		{ID: "C001", Category: CategoryLeakage, AssignedStaffID: ref("s1"), Status: ComplaintInProgress},
		{ID: "C002", Category: CategoryHousehold, AssignedStaffID: ref("gone"), Status: ComplaintResolved},
	}
	staff := []Staff{{ID: "s1", Name: "Ramesh"}}

	first := ReconcileAssignments(complaints, staff)
	second := ReconcileAssignments(complaints, staff)
	assert.Equal(t, first, second)
}

func TestReconcileAssignments_Empty(t *testing.T) {
	out := ReconcileAssignments[Task](nil, nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
