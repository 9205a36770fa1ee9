package constants

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// CanReview reports whether the role may create announcements and advance
// feature-request reviews.
func (r Role) CanReview() bool {
	return r == RoleAdmin || r == RoleManager
}

const DefaultDailyHours = 8.0
