package session

// Role is the closed set of account roles the client understands.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleUser   Role = "USER"
)

// ParseRole validates a raw role string from the service. Unrecognized
// values coerce to RoleUser so an unknown role can never grant privileges;
// the second return reports whether the input was a known role.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleEditor:
		return RoleEditor, true
	case RoleUser:
		return RoleUser, true
	default:
		return RoleUser, false
	}
}
