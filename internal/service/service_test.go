package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/guanzhi08/aces-unit-test/internal/model"
	"github.com/guanzhi08/aces-unit-test/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled :memory: connection would open a second, empty database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.ExamResult{},
		&model.User{},
		&model.AdminSetting{},
		&model.AdminSession{},
	))
	return db
}

func newResultRepo(t *testing.T) *repository.ResultRepository {
	t.Helper()
	return repository.NewResultRepository(newTestDB(t))
}

func insertResult(t *testing.T, repo *repository.ResultRepository, username, unit string, score, accuracy float64, total int, at time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(&model.ExamResult{
		Username:       username,
		UnitNumber:     unit,
		Score:          score,
		TypeAccuracy:   accuracy,
		CorrectCount:   total / 2,
		TotalQuestions: total,
		ExamDate:       at,
	}))
}
