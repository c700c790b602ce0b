package repository

import (
	"github.com/guanzhi08/aces-unit-test/internal/model"
	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) GetSetting(key string) (*model.AdminSetting, error) {
	var setting model.AdminSetting
	err := r.DB.Where("key = ?", key).First(&setting).Error
	return &setting, err
}

func (r *AdminRepository) SetSetting(key, value string) error {
	res := r.DB.Model(&model.AdminSetting{}).
		Where("key = ?", key).
		Update("value", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.DB.Create(&model.AdminSetting{Key: key, Value: value}).Error
	}
	return nil
}

func (r *AdminRepository) CreateSession(session *model.AdminSession) error {
	return r.DB.Create(session).Error
}

func (r *AdminRepository) FindSession(token string) (*model.AdminSession, error) {
	var session model.AdminSession
	err := r.DB.Where("token = ?", token).First(&session).Error
	return &session, err
}

// DeleteSession is idempotent: deleting an unknown token is not an error.
func (r *AdminRepository) DeleteSession(token string) error {
	return r.DB.Where("token = ?", token).Delete(&model.AdminSession{}).Error
}
