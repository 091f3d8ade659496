package user

// Identity is an authenticated principal. The bakery has a single owner today,
// but identities come from a CredentialVerifier so another provider can issue them.
type Identity struct {
	username Username
	role     Role
}

func NewIdentity(username Username, role Role) (*Identity, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Identity{username: username, role: role}, nil
}

func (i *Identity) Username() Username { return i.username }
func (i *Identity) Role() Role         { return i.role }
