package user

type Role string

const (
	RoleViewer Role = "viewer"
	RoleOwner  Role = "owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleOwner:
		return true
	default:
		return false
	}
}

// CanManageOrders reports whether the role may create, change or delete orders.
func (r Role) CanManageOrders() bool {
	return r == RoleOwner
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
