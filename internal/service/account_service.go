package service

import (
	"errors"
	"strings"

	"github.com/guanzhi08/aces-unit-test/internal/model"
	"github.com/guanzhi08/aces-unit-test/internal/repository"
	"github.com/guanzhi08/aces-unit-test/internal/util"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService struct {
	UserRepo *repository.UserRepository
}

func NewAccountService(userRepo *repository.UserRepository) *AccountService {
	return &AccountService{UserRepo: userRepo}
}

// Create registers a new account. Only the bcrypt digest of the password is
// stored, never the plaintext.
func (s *AccountService) Create(username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, util.ErrCredentialsRequired
	}

	if _, err := s.UserRepo.FindByUsername(username); err == nil {
		return nil, util.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
	}
	if err := s.UserRepo.Create(user); err != nil {
		// Two concurrent signups can pass the existence check; the unique
		// index settles the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the matching account. No session
// token is issued for ordinary users.
func (s *AccountService) Login(username, password string) (*model.User, error) {
	user, err := s.UserRepo.FindByUsername(strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}
