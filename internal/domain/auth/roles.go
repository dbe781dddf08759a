package auth

const (
	RoleSuperAdmin = "super-admin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleSupervisor = "supervisor"
	RoleEmployee   = "employee"
)

var AllRoles = []string{
	RoleSuperAdmin,
	RoleAdmin,
	RoleManager,
	RoleSupervisor,
	RoleEmployee,
}

func ValidRole(role string) bool {
	for _, candidate := range AllRoles {
		if role == candidate {
			return true
		}
	}
	return false
}
