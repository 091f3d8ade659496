//go:build unit || e2e

package builder

import (
	"bakery-orders/internal/domain/user"
	reqdto "bakery-orders/internal/handler/dto/request"
	"bakery-orders/internal/pkg/config"
)

type UserBuilder struct {
	Username string
	Password string
	Role     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username: "owner",
		Password: config.TestOwnerPassword,
		Role:     "owner",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.Identity, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewIdentity(username, role)
}

func (u *UserBuilder) BuildCredentials() (user.Credentials, error) {
	return user.NewCredentials(u.Username, u.Password)
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: u.Username,
		Password: u.Password,
	}
}
