package entity

// Role is the flat role string carried by a user record.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleContributor indicates a user allowed to contribute reference images.
	RoleContributor Role = "contributor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleContributor:
		return true
	default:
		return false
	}
}

// RoleOrDefault returns r when valid and RoleUser otherwise.
func RoleOrDefault(r string) Role {
	role := Role(r)
	if role.IsValid() {
		return role
	}

	return RoleUser
}
