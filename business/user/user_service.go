package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"mySkinMatch/domain"
	"mySkinMatch/pkg/logger"
	"mySkinMatch/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
}

// TokenRepository stores issued session tokens so logout can revoke them.
type TokenRepository interface {
	StoreToken(ctx context.Context, userID, token string, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"

	sessionTTL = 24 * time.Hour
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

type userService struct {
	userRepo  UserRepository
	tokenRepo TokenRepository
	validate  *validator.Validate
}

func NewUserService(userRepo UserRepository, tokenRepo TokenRepository, validate *validator.Validate) *userService {
	return &userService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		validate:  validate,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if len(user.Username) < 3 || len(user.Username) > 50 {
		return domain.User{}, errors.New("username must be 3-50 characters")
	}
	if !usernamePattern.MatchString(user.Username) {
		return domain.User{}, errors.New("username may only contain letters, numbers and underscore")
	}

	if err := s.validate.Var(user.Email, "required,email,max=100"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6,max=255"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	if len(user.FullName) < 2 || len(user.FullName) > 100 {
		return domain.User{}, errors.New("full name must be 2-100 characters")
	}

	if user.Age != nil && (*user.Age < 13 || *user.Age > 120) {
		return domain.User{}, errors.New("age must be between 13 and 120")
	}

	// Check uniqueness on both identifiers
	if existing, err := s.userRepo.FindByUsername(ctx, user.Username); err == nil && existing.ID > 0 {
		logger.Error("Username already exists")
		return domain.User{}, errors.New("username already exists")
	}
	if existing, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil && existing.ID > 0 {
		logger.Error("Email already exists")
		return domain.User{}, errors.New("email already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
		Password: passwordHash,
		Role:     RoleCustomer,
		Age:      user.Age,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user")
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, errors.New("invalid username or password")
	}

	if ok := utils.CheckPassword(password, user.Password); !ok {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("invalid username or password")
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	if s.tokenRepo != nil {
		if err := s.tokenRepo.StoreToken(ctx, userIDStr, token, sessionTTL); err != nil {
			logger.Error("Failed to store session token", err)
			return "", domain.User{}, fmt.Errorf("failed to store session: %w", err)
		}
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	if s.tokenRepo == nil {
		return nil
	}

	userIDStr := strconv.FormatUint(uint64(userID), 10)
	if err := s.tokenRepo.DeleteToken(ctx, userIDStr, token); err != nil {
		logger.Error("Failed to revoke session token", err)
		return err
	}

	return nil
}

// ValidateTokenFromRedis checks that a token is still an active session.
func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	if s.tokenRepo == nil {
		return "", errors.New("session store not configured")
	}

	return s.tokenRepo.ValidateToken(ctx, token)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by ID", err)
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get all users", err)
		return nil, err
	}

	for i := range users {
		users[i].Password = ""
	}

	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, updateData *domain.User) (domain.User, error) {
	existingUser, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("User not found for update", err)
		return domain.User{}, err
	}

	if updateData.FullName != "" {
		if len(updateData.FullName) < 2 || len(updateData.FullName) > 100 {
			return domain.User{}, errors.New("full name must be 2-100 characters")
		}
		existingUser.FullName = updateData.FullName
	}

	if updateData.Email != "" {
		if err := s.validate.Var(updateData.Email, "required,email,max=100"); err != nil {
			logger.Error("Invalid email format", err)
			return domain.User{}, errors.New("invalid email format")
		}

		userWithEmail, err := s.userRepo.FindByEmail(ctx, updateData.Email)
		if err == nil && userWithEmail.ID != id {
			logger.Error("Email already exists")
			return domain.User{}, errors.New("email already exists")
		}
		existingUser.Email = updateData.Email
	}

	if updateData.Password != "" {
		if err := s.validate.Var(updateData.Password, "required,min=6,max=255"); err != nil {
			logger.Error("Invalid password", err)
			return domain.User{}, errors.New("password must be at least 6 characters")
		}

		passwordHash, err := utils.HashPassword(updateData.Password)
		if err != nil {
			logger.Error("Failed to hash password", err)
			return domain.User{}, errors.New("failed to hash password")
		}
		existingUser.Password = passwordHash
	}

	if updateData.Age != nil {
		if *updateData.Age < 13 || *updateData.Age > 120 {
			return domain.User{}, errors.New("age must be between 13 and 120")
		}
		existingUser.Age = updateData.Age
	}

	if err := s.userRepo.Update(ctx, &existingUser); err != nil {
		logger.Error("Failed to update user", err)
		return domain.User{}, err
	}

	existingUser.Password = ""
	return existingUser, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		logger.Error("User not found for deletion", err)
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete user", err)
		return err
	}

	return nil
}
