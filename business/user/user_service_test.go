package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"mySkinMatch/domain"
	"mySkinMatch/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byUsername map[string]domain.User
	byEmail    map[string]domain.User
	created    *domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: make(map[string]domain.User),
		byEmail:    make(map[string]domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	u.ID = uint(len(f.byUsername) + 1)
	f.created = u
	f.byUsername[u.Username] = *u
	f.byEmail[u.Email] = *u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, errors.New("user not found")
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return domain.User{}, errors.New("user not found")
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return domain.User{}, errors.New("user not found")
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]domain.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error   { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uint) error          { return nil }

type fakeTokenRepo struct {
	stored  map[string]string
	deleted []string
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{stored: make(map[string]string)}
}

func (f *fakeTokenRepo) StoreToken(ctx context.Context, userID, token string, ttl time.Duration) error {
	f.stored[token] = userID
	return nil
}

func (f *fakeTokenRepo) ValidateToken(ctx context.Context, token string) (string, error) {
	if userID, ok := f.stored[token]; ok {
		return userID, nil
	}
	return "", errors.New("token not found or expired")
}

func (f *fakeTokenRepo) DeleteToken(ctx context.Context, userID, token string) error {
	delete(f.stored, token)
	f.deleted = append(f.deleted, token)
	return nil
}

func validUser() *domain.User {
	return &domain.User{
		Username: "budi_santoso",
		FullName: "Budi Santoso",
		Email:    "budi@example.com",
		Password: "rahasia123",
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, newFakeTokenRepo(), validator.New())

	created, err := svc.Register(context.Background(), validUser())
	require.NoError(t, err)

	assert.Equal(t, RoleCustomer, created.Role)
	assert.Empty(t, created.Password, "password hash must never leave the service")
	require.NotNil(t, repo.created)
	assert.NotEqual(t, "rahasia123", repo.created.Password)
	assert.True(t, utils.CheckPassword("rahasia123", repo.created.Password))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), newFakeTokenRepo(), validator.New())

	cases := []struct {
		name   string
		mutate func(*domain.User)
	}{
		{"short username", func(u *domain.User) { u.Username = "ab" }},
		{"invalid username chars", func(u *domain.User) { u.Username = "budi santoso!" }},
		{"bad email", func(u *domain.User) { u.Email = "not-an-email" }},
		{"short password", func(u *domain.User) { u.Password = "12345" }},
		{"short full name", func(u *domain.User) { u.FullName = "B" }},
		{"under age", func(u *domain.User) { age := 12; u.Age = &age }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := validUser()
			tc.mutate(u)
			_, err := svc.Register(context.Background(), u)
			assert.Error(t, err)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, newFakeTokenRepo(), validator.New())

	_, err := svc.Register(context.Background(), validUser())
	require.NoError(t, err)

	dup := validUser()
	dup.Email = "lain@example.com"
	_, err = svc.Register(context.Background(), dup)
	assert.Error(t, err)
}

func TestLoginAndLogout(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	svc := NewUserService(repo, tokenRepo, validator.New())

	_, err := svc.Register(context.Background(), validUser())
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "budi_santoso", "rahasia123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "budi_santoso", user.Username)
	assert.Empty(t, user.Password)

	got, err := svc.ValidateTokenFromRedis(context.Background(), token)
	require.NoError(t, err)
	assert.NotEmpty(t, got)

	require.NoError(t, svc.Logout(context.Background(), user.ID, token))

	_, err = svc.ValidateTokenFromRedis(context.Background(), token)
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewUserService(newFakeUserRepo(), newFakeTokenRepo(), validator.New())
	_, err := svc.Register(context.Background(), validUser())
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "budi_santoso", "salah")
	assert.Error(t, err)
}
