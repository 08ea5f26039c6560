package domain

// Role is a closed set of operator roles. Roles are opaque tags compared by
// exact match; no hierarchy exists between them.
type Role string

const (
	RoleSuperAdmin     Role = "super_admin"
	RoleAdmin          Role = "admin"
	RoleSupportTech    Role = "support_tech"
	RoleSalesMarketing Role = "sales_marketing"
	RoleLegal          Role = "legal"
	RoleLogistics      Role = "logistics"
	RoleAccounting     Role = "accounting"
	RoleVendor         Role = "vendor"
	RoleSociety        Role = "society"
	RoleExhibitor      Role = "exhibitor"
)

// AllRoles lists every valid role, in display order.
var AllRoles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleSupportTech,
	RoleSalesMarketing,
	RoleLegal,
	RoleLogistics,
	RoleAccounting,
	RoleVendor,
	RoleSociety,
	RoleExhibitor,
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole converts a raw string into a Role, rejecting anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}
