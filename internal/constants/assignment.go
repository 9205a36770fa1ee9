package constants

// AssignmentStatus tracks an individual assignee's progress, independent of
// the parent task's own status.
type AssignmentStatus string

const (
	AssignmentPending  AssignmentStatus = "pending"
	AssignmentAccepted AssignmentStatus = "accepted"
	AssignmentDone     AssignmentStatus = "done"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentAccepted, AssignmentDone:
		return true
	}
	return false
}
