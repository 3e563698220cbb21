package service

import (
	"errors"

	"quizapp_backend/internal/model"
	"quizapp_backend/internal/repository"
	"quizapp_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService verifies credentials. Passwords are stored as bcrypt hashes;
// the salt and cost travel inside the hash string.
type AuthService struct {
	UserRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{UserRepo: userRepo}
}

// Register creates the user and returns its id through user.ID. Role is
// immutable after creation.
func (s *AuthService) Register(user *model.User, password string) error {
	if !user.Role.Valid() {
		return util.ErrInvalidRole
	}

	_, err := s.UserRepo.FindByUsername(user.Username)
	if err == nil {
		return util.ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)
	return s.UserRepo.Create(user)
}

func (s *AuthService) Verify(username, password string) (*model.User, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	} else if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	return user, nil
}
