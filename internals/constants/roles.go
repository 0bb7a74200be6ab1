package constants

// User roles. A "club" is an organization account; it owns exactly one club
// profile row and (once approved) can create events and issue QR tokens.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleClub    = "club"
	RoleAdmin   = "admin"
)

// Club account approval states (users.status, club role only).
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var AllRoles = []string{
	RoleStudent,
	RoleTeacher,
	RoleClub,
	RoleAdmin,
}

// Role guard messages
const (
	ErrOnlyStudentsCanAccess = "Only students can access this feature."
	ErrOnlyClubsCanAccess    = "Only clubs can access this feature."
	ErrOnlyAdminsCanAccess   = "Only admins can access this feature."
)
