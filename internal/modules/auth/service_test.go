package auth

import (
	"context"
	"testing"

	"batoo/internal/domain"
	"batoo/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("GetByEmail", mock.Anything, "kai@example.com").Return(nil, repository.ErrNotFound)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockJWT.On("GenerateToken", int64(42), "kai@example.com").Return("tok", nil)

	service := NewService(mockUsers, mockJWT)

	res, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Kai",
		Email:    "Kai@Example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "kai@example.com", res.User.Email)
	assert.Equal(t, int64(42), res.User.ID)
}

func TestService_Register_EmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("GetByEmail", mock.Anything, "kai@example.com").Return(&domain.User{ID: 1, Email: "kai@example.com"}, nil)

	service := NewService(mockUsers, mockJWT)

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Kai",
		Email:    "kai@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	mockUsers.On("GetByEmail", mock.Anything, "kai@example.com").Return(&domain.User{
		ID:           42,
		Email:        "kai@example.com",
		PasswordHash: string(hash),
		Name:         "Kai",
	}, nil)
	mockJWT.On("GenerateToken", int64(42), "kai@example.com").Return("tok", nil)

	service := NewService(mockUsers, mockJWT)

	res, err := service.Login(context.Background(), LoginRequest{Email: "kai@example.com", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	mockUsers.On("GetByEmail", mock.Anything, "kai@example.com").Return(&domain.User{
		ID:           42,
		Email:        "kai@example.com",
		PasswordHash: string(hash),
	}, nil)

	service := NewService(mockUsers, mockJWT)

	_, err := service.Login(context.Background(), LoginRequest{Email: "kai@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)

	service := NewService(mockUsers, mockJWT)

	_, err := service.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
