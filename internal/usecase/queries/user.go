package queries

import (
	"context"

	"bakery-orders/internal/pkg/errs"
	"bakery-orders/internal/usecase"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

var ErrUserNotFound = errs.New("user not found")

// AuthorizedUserView is the persisted login record exposed to the client.
type AuthorizedUserView struct {
	Username        string `json:"username"`
	Role            string `json:"role"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, username string) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	verifier usecase.CredentialVerifier
}

func NewUserQueries(verifier usecase.CredentialVerifier) UserQueries {
	return &userQueriesImpl{
		verifier: verifier,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, username string) (*AuthorizedUserView, error) {
	identity, err := q.verifier.Lookup(ctx, username)
	if err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}

	return &AuthorizedUserView{
		Username:        identity.Username().Value(),
		Role:            identity.Role().String(),
		IsAuthenticated: true,
	}, nil
}
