package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"driveslot/internal/auth"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name, email, passwordHash, role string) (*User, error) {
	args := m.Called(ctx, name, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

const testSecret = "test-secret"

func TestRegister(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)
	ctx := context.Background()

	repo.On("EmailExists", ctx, "anna@example.com").Return(false, nil)
	repo.On("Create", ctx, "Anna", "anna@example.com", mock.AnythingOfType("string"), "student").
		Return(&User{ID: 1, Name: "Anna", Email: "anna@example.com", Role: "student"}, nil)

	user, access, refresh, err := svc.Register(ctx, RegisterRequest{
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "supersecret",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "student", user.Role)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	repo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)
	ctx := context.Background()

	repo.On("EmailExists", ctx, "anna@example.com").Return(true, nil)

	_, _, _, err := svc.Register(ctx, RegisterRequest{
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrEmailExists)
	repo.AssertNotCalled(t, "Create")
}

func TestLogin(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)
	ctx := context.Background()

	hash, err := auth.HashPassword("supersecret")
	require.NoError(t, err)

	repo.On("FindByEmail", ctx, "anna@example.com").
		Return(&User{ID: 1, Email: "anna@example.com", Role: "student", PasswordHash: hash}, nil)

	user, access, refresh, err := svc.Login(ctx, LoginRequest{
		Email:    "anna@example.com",
		Password: "supersecret",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)
	ctx := context.Background()

	hash, err := auth.HashPassword("supersecret")
	require.NoError(t, err)

	repo.On("FindByEmail", ctx, "anna@example.com").
		Return(&User{ID: 1, Email: "anna@example.com", PasswordHash: hash}, nil)

	_, _, _, err = svc.Login(ctx, LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)
	ctx := context.Background()

	repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, assert.AnError)

	_, _, _, err := svc.Login(ctx, LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)
	ctx := context.Background()

	_, refresh, err := auth.GenerateTokens(1, "anna@example.com", "student", testSecret, testSecret)
	require.NoError(t, err)

	repo.On("FindByID", ctx, 1).
		Return(&User{ID: 1, Email: "anna@example.com", Role: "student"}, nil)

	newAccess, user, err := svc.RefreshToken(ctx, refresh)

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.NotEmpty(t, newAccess)
}

func TestRefreshTokenInvalid(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)

	_, _, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.Error(t, err)
	repo.AssertNotCalled(t, "FindByID")
}
