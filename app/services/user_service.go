package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"blogyetu/app/models"
	"blogyetu/app/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when login fails; it does not reveal
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenTTL = 72 * time.Hour

// UserService handles registration, login, and token issuance.
type UserService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, jwtSecret []byte) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Register creates a new user with the author role and returns it with
// a signed access token.
func (s *UserService) Register(input RegisterInput) (*models.User, string, error) {
	if err := validate.Struct(input); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		Avatar:       input.Avatar,
		Role:         models.RoleAuthor,
		PasswordHash: string(hash),
	}
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return nil, "", err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate checks the credentials and returns the user with a
// signed access token.
func (s *UserService) Authenticate(input LoginInput) (*models.User, string, error) {
	if err := validate.Struct(input); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := s.userRepo.GetByEmail(email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return signed, nil
}
