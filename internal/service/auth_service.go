package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/repository"
	"github.com/prajwalnawale3040/trio-developers/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialVerifier checks a username/password pair and returns the caller's
// identity. The static implementation is the stand-in until real account
// management lands; handlers never see which one is behind the interface.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (*model.Principal, error)
}

// StaticVerifier accepts exactly one configured credential pair.
type StaticVerifier struct {
	Username string
	Password string
}

func (v *StaticVerifier) Verify(_ context.Context, username, password string) (*model.Principal, error) {
	if username != v.Username || password != v.Password {
		return nil, ErrInvalidCredentials
	}
	return &model.Principal{Username: username, Role: model.RoleAdmin}, nil
}

// AccountVerifier checks credentials against the accounts table.
type AccountVerifier struct {
	accounts repository.AccountRepository
}

func NewAccountVerifier(accounts repository.AccountRepository) *AccountVerifier {
	return &AccountVerifier{accounts: accounts}
}

func (v *AccountVerifier) Verify(ctx context.Context, username, password string) (*model.Principal, error) {
	account, err := v.accounts.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding account by username: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, account.Password) {
		return nil, ErrInvalidCredentials
	}
	return &model.Principal{Username: account.Username, Role: account.Role}, nil
}

// AuthService provides authentication related services
type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.Principal, string, error)
}

type authService struct {
	verifier CredentialVerifier
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(verifier CredentialVerifier, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{verifier: verifier, jwtUtil: jwtUtil}
}

// Login verifies credentials and returns the principal with a signed token
func (s *authService) Login(ctx context.Context, username, password string) (*model.Principal, string, error) {
	principal, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to verify credentials: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(principal.Username, principal.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return principal, token, nil
}
