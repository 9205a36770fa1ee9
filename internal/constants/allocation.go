package constants

type AllocationStatus string

const (
	AllocationPlanned AllocationStatus = "planned"
	AllocationActual  AllocationStatus = "actual"
)

func (s AllocationStatus) Valid() bool {
	return s == AllocationPlanned || s == AllocationActual
}
