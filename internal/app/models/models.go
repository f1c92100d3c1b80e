package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent     RoleType = "student"
	RoleCoordinator RoleType = "coordinator"
	RoleAdmin       RoleType = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleCoordinator, RoleAdmin:
		return true
	}
	return false
}
