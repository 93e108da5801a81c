package roster

import "time"

// Role determines which platform operations a user may invoke. Roles
// carry capabilities directly; there is no inheritance between them.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// AllRoles returns the defined roles.
func AllRoles() []Role {
	return []Role{RoleStudent, RoleTeacher, RoleAdmin}
}

// ParseRole converts a wire string into a Role.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "student":
		return RoleStudent, true
	case "teacher":
		return RoleTeacher, true
	case "admin":
		return RoleAdmin, true
	default:
		return "", false
	}
}

// DisplayName returns a human-readable name for a role.
func (r Role) DisplayName() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleTeacher:
		return "Teacher"
	case RoleAdmin:
		return "Admin"
	default:
		return string(r)
	}
}

// CanViewRollup reports whether the role may read class-wide progress.
func (r Role) CanViewRollup() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// CanResetProgress reports whether the role may clear progress records.
func (r Role) CanResetProgress() bool {
	return r == RoleAdmin
}

// User is a platform identity. Id, username, and role are fixed at
// creation and never change.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
