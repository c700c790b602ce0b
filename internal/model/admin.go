package model

import (
	"time"
)

// AdminPasswordKey is the settings row holding the bcrypt digest of the
// current admin password.
const AdminPasswordKey = "admin_password"

type AdminSetting struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Key   string `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Value string `gorm:"size:255;not null" json:"-"`
}

func (AdminSetting) TableName() string {
	return "admin_settings"
}

// AdminSession is an opaque bearer token for admin requests. There is no
// expiry column: a session stays valid until logout deletes it.
type AdminSession struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}
