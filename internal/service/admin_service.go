package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/guanzhi08/aces-unit-test/internal/model"
	"github.com/guanzhi08/aces-unit-test/internal/repository"
	"github.com/guanzhi08/aces-unit-test/internal/util"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService struct {
	AdminRepo *repository.AdminRepository
	UserRepo  *repository.UserRepository
}

func NewAdminService(adminRepo *repository.AdminRepository, userRepo *repository.UserRepository) *AdminService {
	return &AdminService{
		AdminRepo: adminRepo,
		UserRepo:  userRepo,
	}
}

// newSessionToken returns a 64-character hex token from 32 CSPRNG bytes.
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Login checks the password against the stored admin digest and, on match,
// persists and returns a fresh session token.
func (s *AdminService) Login(password string) (string, error) {
	setting, err := s.AdminRepo.GetSetting(model.AdminPasswordKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// The seed row is missing only when storage was wiped out-of-band;
		// fail closed.
		return "", util.ErrInvalidCredentials
	} else if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(setting.Value), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return "", err
	}
	if err := s.AdminRepo.CreateSession(&model.AdminSession{Token: token}); err != nil {
		return "", err
	}
	return token, nil
}

// VerifyToken fails closed: absent, empty or unknown tokens are invalid.
// Sessions carry no expiry; a token stays valid until logout deletes it.
func (s *AdminService) VerifyToken(token string) (bool, error) {
	if strings.TrimSpace(token) == "" {
		return false, nil
	}
	if _, err := s.AdminRepo.FindSession(token); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Logout deletes the session if present; logging out an unknown token is
// not an error.
func (s *AdminService) Logout(token string) error {
	return s.AdminRepo.DeleteSession(token)
}

// ChangePassword rotates the admin password after checking the old one.
// Token validity is enforced by the route middleware.
func (s *AdminService) ChangePassword(oldPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return util.ErrPasswordRequired
	}

	setting, err := s.AdminRepo.GetSetting(model.AdminPasswordKey)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(setting.Value), []byte(oldPassword)); err != nil {
		return util.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.AdminRepo.SetSetting(model.AdminPasswordKey, string(hash))
}

func (s *AdminService) ListUsers() ([]model.User, error) {
	return s.UserRepo.List()
}

func (s *AdminService) DeleteUser(username string) error {
	affected, err := s.UserRepo.DeleteByUsername(username)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrUserNotFound
	}
	return nil
}

func (s *AdminService) ResetPassword(username, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return util.ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	affected, err := s.UserRepo.UpdatePassword(username, string(hash))
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrUserNotFound
	}
	return nil
}
