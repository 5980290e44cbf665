package constants

// Platform roles as carried in the JWT "role" claim.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleUser       = "user"
)

var AllowedRoles = []string{RoleAdmin, RoleInstructor, RoleUser}

func ValidRole(r string) bool {
	for _, a := range AllowedRoles {
		if r == a {
			return true
		}
	}
	return false
}
