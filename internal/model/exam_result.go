package model

import (
	"time"
)

// ExamResult is one recorded practice-exam attempt. Username is a free-form
// string, not a relation: results may reference usernames with no account.
type ExamResult struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"size:100;not null;index" json:"username"`
	UnitNumber     string    `gorm:"size:50;not null" json:"unit_number"`
	Score          float64   `gorm:"not null" json:"score"`
	TypeAccuracy   float64   `gorm:"not null" json:"type_accuracy"`
	CorrectCount   int       `gorm:"not null" json:"correct_count"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	ExamDate       time.Time `gorm:"index" json:"exam_date"`
}

func (ExamResult) TableName() string {
	return "exam_results"
}
