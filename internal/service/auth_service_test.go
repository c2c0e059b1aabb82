package service

import (
	"context"
	"testing"

	"github.com/cbda-academy/exam-api/internal/dto"
	"github.com/cbda-academy/exam-api/internal/model"
	"github.com/cbda-academy/exam-api/internal/verification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateEmail(id string, newEmail string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Email = newEmail
	return nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

type recordingSender struct {
	lastCode string
}

func (s *recordingSender) SendCode(_ context.Context, _, _, code string) error {
	s.lastCode = code
	return nil
}

func newAuthFixture() (AuthService, *fakeUserRepo, *verification.Service, *recordingSender) {
	repo := newFakeUserRepo()
	sender := &recordingSender{}
	verifier := verification.NewService(verification.NewMemoryStore(), sender)
	return NewAuthService(repo, verifier), repo, verifier, sender
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	created, err := svc.Register(dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, created.Role)
	assert.NotEmpty(t, created.ID)

	user, err := svc.Login("ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "Ada", user.Name)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login("ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(dto.RegisterRequest{Name: "Imposter", Email: "ada@example.com", Password: "other456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterDoesNotStorePlaintextPassword(t *testing.T) {
	svc, repo, _, _ := newAuthFixture()

	created, err := svc.Register(dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	stored := repo.users[created.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestChangeEmail(t *testing.T) {
	ctx := context.Background()
	svc, repo, verifier, sender := newAuthFixture()

	created, err := svc.Register(dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, verifier.RequestCode(ctx, "new@example.com", "Ada"))

	err = svc.ChangeEmail(ctx, dto.ChangeEmailRequest{
		UserID:   created.ID,
		NewEmail: "new@example.com",
		Code:     sender.lastCode,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", repo.users[created.ID].Email)
}

func TestChangeEmailRejectsBadCode(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newAuthFixture()

	created, err := svc.Register(dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	err = svc.ChangeEmail(ctx, dto.ChangeEmailRequest{
		UserID:   created.ID,
		NewEmail: "new@example.com",
		Code:     "000000",
	})
	assert.ErrorIs(t, err, ErrCodeRejected)
}

func TestChangeEmailRejectsTakenAddress(t *testing.T) {
	ctx := context.Background()
	svc, _, verifier, sender := newAuthFixture()

	ada, err := svc.Register(dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	_, err = svc.Register(dto.RegisterRequest{Name: "Grace", Email: "grace@example.com", Password: "secret456"})
	require.NoError(t, err)

	require.NoError(t, verifier.RequestCode(ctx, "grace@example.com", "Ada"))

	err = svc.ChangeEmail(ctx, dto.ChangeEmailRequest{
		UserID:   ada.ID,
		NewEmail: "grace@example.com",
		Code:     sender.lastCode,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestChangeEmailUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _, verifier, sender := newAuthFixture()

	require.NoError(t, verifier.RequestCode(ctx, "new@example.com", "Nobody"))

	err := svc.ChangeEmail(ctx, dto.ChangeEmailRequest{
		UserID:   "missing",
		NewEmail: "new@example.com",
		Code:     sender.lastCode,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSeedDefaults(t *testing.T) {
	svc, repo, _, _ := newAuthFixture()

	require.NoError(t, svc.SeedDefaults())
	assert.Len(t, repo.users, 2)

	admin, err := svc.Login("admin@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	// Seeding is a no-op once any user exists.
	require.NoError(t, svc.SeedDefaults())
	assert.Len(t, repo.users, 2)
}
