package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/utils"
)

type fakeAccountRepo struct {
	accounts map[string]*model.Account
}

func (f *fakeAccountRepo) Create(_ context.Context, _ *model.Account) error { return nil }

func (f *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*model.Account, error) {
	return f.accounts[username], nil
}

func TestStaticVerifier(t *testing.T) {
	v := &StaticVerifier{Username: "admin", Password: "admin"}

	principal, err := v.Verify(context.Background(), "admin", "admin")
	assert.NoError(t, err)
	assert.Equal(t, "admin", principal.Username)
	assert.Equal(t, model.RoleAdmin, principal.Role)

	_, err = v.Verify(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = v.Verify(context.Background(), "nobody", "admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountVerifier(t *testing.T) {
	hashed, err := utils.HashPassword("s3cret")
	assert.NoError(t, err)

	repo := &fakeAccountRepo{accounts: map[string]*model.Account{
		"operator": {Username: "operator", Password: hashed, Role: model.RoleUser},
	}}
	v := NewAccountVerifier(repo)

	principal, err := v.Verify(context.Background(), "operator", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, "operator", principal.Username)
	assert.Equal(t, model.RoleUser, principal.Role)

	_, err = v.Verify(context.Background(), "operator", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = v.Verify(context.Background(), "ghost", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	svc := NewAuthService(&StaticVerifier{Username: "admin", Password: "admin"}, jwtUtil)

	principal, token, err := svc.Login(context.Background(), "admin", "admin")
	assert.NoError(t, err)
	assert.Equal(t, "admin", principal.Username)
	assert.NotEmpty(t, token)

	claims, err := jwtUtil.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	svc := NewAuthService(&StaticVerifier{Username: "admin", Password: "admin"}, jwtUtil)

	_, _, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
