package constants

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// TimeType determines the unit of a task's TimeValue: minutes for misc,
// hours for daily, days for long.
type TimeType string

const (
	TimeMisc  TimeType = "misc"
	TimeDaily TimeType = "daily"
	TimeLong  TimeType = "long"
)

func (t TimeType) Valid() bool {
	switch t {
	case TimeMisc, TimeDaily, TimeLong:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
