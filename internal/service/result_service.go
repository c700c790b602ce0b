package service

import (
	"errors"
	"strings"

	"github.com/guanzhi08/aces-unit-test/internal/model"
	"github.com/guanzhi08/aces-unit-test/internal/repository"
	"github.com/guanzhi08/aces-unit-test/internal/util"
	"gorm.io/gorm"
)

type ResultService struct {
	ResultRepo *repository.ResultRepository
}

func NewResultService(resultRepo *repository.ResultRepository) *ResultService {
	return &ResultService{ResultRepo: resultRepo}
}

// ResultPatch carries a partial update: nil fields are left untouched.
// Identity (id) and the server-assigned timestamp are not patchable.
type ResultPatch struct {
	Username       *string  `json:"username"`
	UnitNumber     *string  `json:"unit_number"`
	Score          *float64 `json:"score"`
	TypeAccuracy   *float64 `json:"type_accuracy"`
	CorrectCount   *int     `json:"correct_count"`
	TotalQuestions *int     `json:"total_questions"`
}

// Submit persists one attempt. The username is trimmed first and must be
// non-empty; the stored row comes back with its generated id and timestamp.
func (s *ResultService) Submit(result *model.ExamResult) (*model.ExamResult, error) {
	result.Username = strings.TrimSpace(result.Username)
	if result.Username == "" {
		return nil, util.ErrUsernameRequired
	}

	if err := s.ResultRepo.Create(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ResultService) ListByUser(username string, limit int) ([]model.ExamResult, error) {
	return s.ResultRepo.ListByUser(username, limit)
}

func (s *ResultService) ListAll(limit int) ([]model.ExamResult, error) {
	return s.ResultRepo.ListAll(limit)
}

// Update applies the non-nil patch fields as a single conditional UPDATE and
// returns the full updated row.
func (s *ResultService) Update(id uint, patch *ResultPatch) (*model.ExamResult, error) {
	fields := map[string]interface{}{}
	if patch.Username != nil {
		trimmed := strings.TrimSpace(*patch.Username)
		if trimmed == "" {
			return nil, util.ErrUsernameRequired
		}
		fields["username"] = trimmed
	}
	if patch.UnitNumber != nil {
		fields["unit_number"] = *patch.UnitNumber
	}
	if patch.Score != nil {
		fields["score"] = *patch.Score
	}
	if patch.TypeAccuracy != nil {
		fields["type_accuracy"] = *patch.TypeAccuracy
	}
	if patch.CorrectCount != nil {
		fields["correct_count"] = *patch.CorrectCount
	}
	if patch.TotalQuestions != nil {
		fields["total_questions"] = *patch.TotalQuestions
	}

	if len(fields) > 0 {
		affected, err := s.ResultRepo.UpdateFields(id, fields)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			// Some engines report zero matched rows for a no-op write, so
			// distinguish absent from unchanged with an existence probe.
			if _, err := s.ResultRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrResultNotFound
			} else if err != nil {
				return nil, err
			}
		}
	}

	result, err := s.ResultRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResultNotFound
	}
	return result, err
}

func (s *ResultService) Delete(id uint) error {
	affected, err := s.ResultRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrResultNotFound
	}
	return nil
}
