package repository

import (
	"time"

	"github.com/guanzhi08/aces-unit-test/internal/model"
	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Create(result *model.ExamResult) error {
	if result.ExamDate.IsZero() {
		result.ExamDate = time.Now()
	}
	return r.DB.Create(result).Error
}

func (r *ResultRepository) FindByID(id uint) (*model.ExamResult, error) {
	var result model.ExamResult
	err := r.DB.First(&result, id).Error
	return &result, err
}

// ListByUser returns up to limit rows for one user, newest first.
func (r *ResultRepository) ListByUser(username string, limit int) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.DB.Where("username = ?", username).
		Order("exam_date DESC").Order("id DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

// ListAll returns up to limit rows across all users, newest first.
func (r *ResultRepository) ListAll(limit int) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.DB.Order("exam_date DESC").Order("id DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

// RecentByUser returns up to limit rows newest first, optionally filtered to
// one unit. Callers wanting chronological order reverse the slice.
func (r *ResultRepository) RecentByUser(username, unit string, limit int) ([]model.ExamResult, error) {
	q := r.DB.Where("username = ?", username)
	if unit != "" {
		q = q.Where("unit_number = ?", unit)
	}
	var results []model.ExamResult
	err := q.Order("exam_date DESC").Order("id DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

// HistoryByUser returns the full history oldest first, optionally filtered to
// one unit.
func (r *ResultRepository) HistoryByUser(username, unit string) ([]model.ExamResult, error) {
	q := r.DB.Where("username = ?", username)
	if unit != "" {
		q = q.Where("unit_number = ?", unit)
	}
	var results []model.ExamResult
	err := q.Order("exam_date ASC").Order("id ASC").
		Find(&results).Error
	return results, err
}

func (r *ResultRepository) DistinctUnits(username string) ([]string, error) {
	var units []string
	err := r.DB.Model(&model.ExamResult{}).
		Where("username = ?", username).
		Distinct("unit_number").
		Pluck("unit_number", &units).Error
	return units, err
}

// Aggregate holds the SQL-side totals for one user, optionally per unit.
type Aggregate struct {
	TotalExams          int64
	AverageScore        float64
	AverageTypeAccuracy float64
	BestScore           float64
}

func (r *ResultRepository) Aggregate(username, unit string) (*Aggregate, error) {
	q := r.DB.Model(&model.ExamResult{}).Where("username = ?", username)
	if unit != "" {
		q = q.Where("unit_number = ?", unit)
	}
	var agg Aggregate
	err := q.Select(
		"COUNT(*) AS total_exams, " +
			"COALESCE(AVG(score), 0) AS average_score, " +
			"COALESCE(AVG(type_accuracy), 0) AS average_type_accuracy, " +
			"COALESCE(MAX(score), 0) AS best_score").
		Scan(&agg).Error
	return &agg, err
}

// UserCount is one row of the distinct-username listing.
type UserCount struct {
	Username  string `json:"username"`
	ExamCount int64  `json:"exam_count"`
}

func (r *ResultRepository) CountByUsername() ([]UserCount, error) {
	var counts []UserCount
	err := r.DB.Model(&model.ExamResult{}).
		Select("username, COUNT(*) AS exam_count").
		Group("username").
		Order("username ASC").
		Scan(&counts).Error
	return counts, err
}

// UpdateFields applies only the given columns in a single conditional
// UPDATE, returning the number of rows matched. No read precedes the write.
func (r *ResultRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	res := r.DB.Model(&model.ExamResult{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *ResultRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.ExamResult{}, id)
	return res.RowsAffected, res.Error
}
