package services

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"shopapi/app/models"
	"shopapi/app/repositories"
	"shopapi/pkg/auth"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ErrInvalidCredentials is returned by Login for a bad email/password pair.
// One error for both cases, so the response never reveals which was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// RegisterInput is the signup request body.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user account and returns a signed token for it.
// Accounts created through the API are never staff; the staff flag is set by
// seeding or by direct database administration.
func (s *AuthService) Register(in RegisterInput) (models.User, string, map[string]string, error) {
	errs := map[string]string{}

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "The name field is required."
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case email == "":
		errs["email"] = "The email field is required."
	case !emailRE.MatchString(email):
		errs["email"] = "The email must be a valid email address."
	default:
		taken, err := s.users.ExistsByEmail(email)
		if err != nil {
			return models.User{}, "", nil, err
		}
		if taken {
			errs["email"] = "The email has already been taken."
		}
	}

	if len(in.Password) < 8 {
		errs["password"] = "The password must be at least 8 characters."
	}

	if len(errs) > 0 {
		return models.User{}, "", errs, nil
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, "", nil, err
	}

	user := models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: hash,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, "", nil, err
	}

	token, err := auth.GenerateToken(user.ID, user.IsStaff)
	if err != nil {
		return models.User{}, "", nil, err
	}
	return user, token, nil, nil
}

// Login verifies the credentials and returns a signed token.
func (s *AuthService) Login(in LoginInput) (models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if !auth.CheckPassword(user.Password, in.Password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.IsStaff)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
