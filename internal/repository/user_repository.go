package repository

import (
	"github.com/guanzhi08/aces-unit-test/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("username ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) DeleteByUsername(username string) (int64, error) {
	res := r.DB.Where("username = ?", username).Delete(&model.User{})
	return res.RowsAffected, res.Error
}

func (r *UserRepository) UpdatePassword(username, passwordHash string) (int64, error) {
	res := r.DB.Model(&model.User{}).
		Where("username = ?", username).
		Update("password", passwordHash)
	return res.RowsAffected, res.Error
}
