package constants

type Impact string

const (
	ImpactCritical Impact = "critical"
	ImpactModerate Impact = "moderate"
	ImpactMinor    Impact = "minor"
)

func (i Impact) Valid() bool {
	switch i {
	case ImpactCritical, ImpactModerate, ImpactMinor:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestResolved   RequestStatus = "resolved"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestInProgress, RequestResolved:
		return true
	}
	return false
}
