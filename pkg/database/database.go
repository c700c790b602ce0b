package database

import (
	"log"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/guanzhi08/aces-unit-test/internal/config"
	"github.com/guanzhi08/aces-unit-test/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSQLitePath is used when no connection string is configured.
const DefaultSQLitePath = "exam_results.db"

// InitDB opens the configured backend, migrates the schema and seeds the
// admin password setting. The DSN alone selects the backend: a postgres://
// URL opens PostgreSQL, anything else is treated as a sqlite file path, and
// an empty DSN falls back to DefaultSQLitePath.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN
	if dsn == "" {
		dsn = DefaultSQLitePath
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Release deployments migrate only when asked to; everywhere else the
	// schema is kept current on startup.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	if err := SeedAdminPassword(db, cfg.Admin.DefaultPassword); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.ExamResult{},
		&model.User{},
		&model.AdminSetting{},
		&model.AdminSession{},
	)
}

// SeedAdminPassword inserts the admin_password setting row if it is absent.
// A rotated password is never overwritten, so the seed is idempotent.
func SeedAdminPassword(db *gorm.DB, plaintext string) error {
	var count int64
	if err := db.Model(&model.AdminSetting{}).
		Where("key = ?", model.AdminPasswordKey).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&model.AdminSetting{
		Key:   model.AdminPasswordKey,
		Value: string(hash),
	}).Error
}
