package usercenter

// UserRole is the account role. It is a closed set: authorization
// matches on the variant, unknown values grant nothing.
type UserRole string

const (
	// RoleOrdinary is the default role assigned at registration.
	RoleOrdinary UserRole = "ordinary"
	// RoleAdmin may search and delete accounts.
	RoleAdmin UserRole = "admin"
)

// IsValid checks if the role is one of the predefined valid roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleOrdinary, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether this role grants administrative access.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// GetAllRoles returns all predefined roles
func GetAllRoles() []UserRole {
	return []UserRole{
		RoleOrdinary,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a UserRole type
func ParseRole(roleStr string) (UserRole, bool) {
	role := UserRole(roleStr)
	return role, role.IsValid()
}
