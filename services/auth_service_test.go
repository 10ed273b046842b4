package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dugun.link/models"
	"dugun.link/repositories"
)

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

var _ repositories.IUserRepository = (*fakeUserRepo)(nil)

const testJWTSecret = "test-secret"

func newAuthFixture(t *testing.T) IAuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("dogru-sifre"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &models.User{
		Name:         "Yönetici",
		Email:        "admin@dugun.link",
		PasswordHash: string(hash),
		IsSystem:     true,
		IsActive:     true,
	}
	admin.ID = 1

	disabled := &models.User{
		Email:        "pasif@dugun.link",
		PasswordHash: string(hash),
		IsActive:     false,
	}
	disabled.ID = 2

	repo := &fakeUserRepo{users: []*models.User{admin, disabled}}
	return NewAuthServiceWith(repo, testJWTSecret, 24)
}

func TestLogin_Success(t *testing.T) {
	service := newAuthFixture(t)

	result, err := service.Login(context.Background(), "admin@dugun.link", "dogru-sifre")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "admin@dugun.link", result.User.Email)

	token, err := jwt.Parse(result.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.EqualValues(t, 1, claims["sub"])
	assert.Equal(t, true, claims["isSystem"])
	assert.NotNil(t, claims["exp"])
}

func TestLogin_EmailNormalized(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), "  ADMIN@dugun.link ", "dogru-sifre")
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), "admin@dugun.link", "yanlis-sifre")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), "yok@dugun.link", "dogru-sifre")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials, "hesabın varlığı ele verilmemeli")
}

func TestLogin_DisabledAccount(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), "pasif@dugun.link", "dogru-sifre")
	assert.ErrorIs(t, err, ErrAuthAccountDisabled)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}
