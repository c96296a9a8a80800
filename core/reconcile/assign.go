package reconcile

// Unassigned is the display name for items with no resolvable staff member.
const Unassigned = "Unassigned"

// UnknownStaff is the display name for a matched staff record without a name.
const UnknownStaff = "Unknown"

// Assignable is a record that may reference the staff member handling it.
// Task and Complaint implement it.
type Assignable interface {
	// RecordID returns the record's own identifier.
	RecordID() string

	// AssigneeID returns the referenced staff id, nil when none was set.
	AssigneeID() *string
}

func (t Task) RecordID() string { return t.ID }
func (t Task) AssigneeID() *string { return t.AssignedStaffID }
func (c Complaint) RecordID() string { return c.ID }
func (c Complaint) AssigneeID() *string { return c.AssignedStaffID }

// AssignedItem is a task or complaint with its assignee resolved.
type AssignedItem[T Assignable] struct {
	// Item is a copy of the source record; its status passes through untouched.
	Item T `json:"item"`

	// StaffName is the assignee's name or the Unassigned sentinel.
	StaffName string `json:"staff_name"`

	// Assigned reports whether the reference resolved to a staff record.
	Assigned bool `json:"assigned"`

	// Orphaned reports a non-empty reference that matched no staff record.
	Orphaned bool `json:"orphaned,omitempty"`
}

// ReconcileAssignments resolves the staff member referenced by each item.
// Missing or dangling references resolve to Unassigned; the call never fails
// and returns the same output for the same input.
func ReconcileAssignments[T Assignable](items []T, staff []Staff) []AssignedItem[T] {
	names := indexStaffNames(staff)

	out := make([]AssignedItem[T], 0, len(items))
	for _, item := range items {
		out = append(out, resolveAssignee(item, names))
	}
	return out
}

func indexStaffNames(staff []Staff) map[string]string {
	names := make(map[string]string, len(staff))
	for _, s := range staff {
		if s.ID == "" {
			continue
		}
		// First record wins on duplicate ids.
		if _, exists := names[s.ID]; exists {
			continue
		}
		if s.Name == "" {
			names[s.ID] = UnknownStaff
		} else {
			names[s.ID] = s.Name
		}
	}
	return names
}

func resolveAssignee[T Assignable](item T, names map[string]string) AssignedItem[T] {
	result := AssignedItem[T]{Item: item, StaffName: Unassigned}

	ref := item.AssigneeID()
	if ref == nil || *ref == "" {
		return result
	}

	name, ok := names[*ref]
	if !ok {
		result.Orphaned = true
		return result
	}

	result.StaffName = name
	result.Assigned = true
	return result
}

// AssignedTaskStatus extracts the status of an assigned task, for StatusBreakdown.
func AssignedTaskStatus(a AssignedItem[Task]) TaskStatus { return a.Item.Status }

// AssignedComplaintStatus extracts the status of an assigned complaint, for StatusBreakdown.
func AssignedComplaintStatus(a AssignedItem[Complaint]) ComplaintStatus { return a.Item.Status }
