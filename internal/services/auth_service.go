package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yukikurage/todo-project-api/internal/apperrors"
	"github.com/yukikurage/todo-project-api/internal/auth"
	"github.com/yukikurage/todo-project-api/internal/dto"
	"github.com/yukikurage/todo-project-api/internal/models"
	"github.com/yukikurage/todo-project-api/internal/repository"
)

// AuthService handles registration, login and token renewal.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Login     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a user and its credential row as one atomic write.
// A taken login fails with apperrors.ErrLoginAlreadyInUse.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	login := strings.TrimSpace(input.Login)

	if _, err := s.userRepo.FindByLogin(login); err == nil {
		return nil, apperrors.ErrLoginAlreadyInUse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check login: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Login:     login,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	userAuth := &models.UserAuth{
		Secret: hash,
	}

	if err := s.userRepo.CreateWithAuth(user, userAuth); err != nil {
		return nil, fmt.Errorf("failed to complete registration: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Login    string
	Password string
}

// Login verifies credentials and issues a session token. Missing user and
// wrong password answer with the same error so neither factor leaks.
func (s *AuthService) Login(input LoginInput) (*dto.LoginResponse, error) {
	userAuth, err := s.userRepo.FindAuthByLogin(input.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidLoginCredentials
		}
		return nil, fmt.Errorf("failed to find credentials: %w", err)
	}

	if !auth.CheckPassword(input.Password, userAuth.Secret) {
		return nil, apperrors.ErrInvalidLoginCredentials
	}

	userDTO := dto.ToUserDTO(userAuth.User)
	token, err := s.tokens.Issue(&auth.Claims{
		UserID: userAuth.UserID,
		Login:  userAuth.User.Login,
		User:   &userDTO,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.LoginResponse{Token: token, User: userDTO}, nil
}

// Reconnect verifies an existing token and issues a fresh one carrying the
// same payload, without touching the database.
func (s *AuthService) Reconnect(tokenString string) (*dto.LoginResponse, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(&auth.Claims{
		UserID: claims.UserID,
		Login:  claims.Login,
		User:   claims.User,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reissue token: %w", err)
	}

	resp := &dto.LoginResponse{Token: token}
	if claims.User != nil {
		resp.User = *claims.User
	}
	return resp, nil
}
