package usecase

import (
	"context"
	"crypto/subtle"

	"bakery-orders/internal/domain/user"
	"bakery-orders/internal/pkg/errs"
	"bakery-orders/internal/pkg/password"
)

//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/auth.go -package=usecasemock

var (
	ErrInvalidCredentials = errs.New("invalid username or password")
	ErrUnknownIdentity    = errs.New("unknown identity")
)

// CredentialVerifier authenticates credentials and resolves identities.
// Implementations can be swapped for a real identity provider.
type CredentialVerifier interface {
	Verify(ctx context.Context, credentials user.Credentials) (*user.Identity, error)
	Lookup(ctx context.Context, username string) (*user.Identity, error)
}

// fixedCredentialVerifier accepts exactly one configured owner account.
type fixedCredentialVerifier struct {
	username     string
	passwordHash string
}

func NewFixedCredentialVerifier(username, passwordHash string) (CredentialVerifier, error) {
	if _, err := user.NewUsername(username); err != nil {
		return nil, errs.Wrap(err, "configured owner username")
	}
	if err := password.ValidateHash(passwordHash); err != nil {
		return nil, errs.Wrap(err, "configured owner password hash")
	}
	return &fixedCredentialVerifier{
		username:     username,
		passwordHash: passwordHash,
	}, nil
}

func (v *fixedCredentialVerifier) Verify(ctx context.Context, credentials user.Credentials) (*user.Identity, error) {
	// bcrypt runs even for a wrong username so both failures take similar time
	pwErr := password.ComparePassword(v.passwordHash, credentials.Password().Value())
	if !v.matches(credentials.Username().Value()) || pwErr != nil {
		return nil, ErrInvalidCredentials
	}
	return user.NewIdentity(credentials.Username(), user.RoleOwner)
}

func (v *fixedCredentialVerifier) Lookup(ctx context.Context, username string) (*user.Identity, error) {
	if !v.matches(username) {
		return nil, ErrUnknownIdentity
	}
	name, err := user.NewUsername(username)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownIdentity)
	}
	return user.NewIdentity(name, user.RoleOwner)
}

func (v *fixedCredentialVerifier) matches(username string) bool {
	return subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
}
