package commands

import (
	"context"
	"time"

	reqdto "bakery-orders/internal/handler/dto/request"
	"bakery-orders/internal/pkg/errs"
	"bakery-orders/internal/pkg/jwt"
	"bakery-orders/internal/usecase"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	Username    string
	Role        string
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	verifier   usecase.CredentialVerifier
	jwtService *jwt.Service
}

func NewAuthCommands(verifier usecase.CredentialVerifier, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		verifier:   verifier,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	identity, err := a.verifier.Verify(ctx, credentials)
	if err != nil {
		return nil, errs.Mark(err, usecase.ErrInvalidCredentials)
	}

	accessToken, err := a.jwtService.GenerateToken(identity.Username().Value(), identity.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Username:    identity.Username().Value(),
		Role:        identity.Role().String(),
		AccessToken: accessToken,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
