package service

import (
	"testing"
	"time"

	"github.com/guanzhi08/aces-unit-test/internal/model"
	"github.com/guanzhi08/aces-unit-test/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSubmitTrimsUsername(t *testing.T) {
	svc := NewResultService(newResultRepo(t))

	result, err := svc.Submit(&model.ExamResult{
		Username:       "  alice  ",
		UnitNumber:     "1",
		Score:          80,
		TotalQuestions: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", result.Username)
	assert.NotZero(t, result.ID)
	assert.False(t, result.ExamDate.IsZero())
}

func TestSubmitRejectsBlankUsername(t *testing.T) {
	svc := NewResultService(newResultRepo(t))

	for _, username := range []string{"", "   ", "\t\n"} {
		_, err := svc.Submit(&model.ExamResult{Username: username, Score: 80})
		assert.ErrorIs(t, err, util.ErrUsernameRequired)
	}
}

func TestUpdateAppliesOnlyGivenFields(t *testing.T) {
	repo := newResultRepo(t)
	svc := NewResultService(repo)

	seeded, err := svc.Submit(&model.ExamResult{
		Username:       "alice",
		UnitNumber:     "3",
		Score:          60,
		TypeAccuracy:   55,
		CorrectCount:   6,
		TotalQuestions: 10,
	})
	require.NoError(t, err)

	updated, err := svc.Update(seeded.ID, &ResultPatch{Score: ptr(75.0)})
	require.NoError(t, err)

	assert.Equal(t, 75.0, updated.Score)
	assert.Equal(t, "3", updated.UnitNumber)
	assert.Equal(t, 55.0, updated.TypeAccuracy)
	assert.Equal(t, 6, updated.CorrectCount)
	assert.Equal(t, 10, updated.TotalQuestions)
}

func TestUpdateEmptyPatchReturnsRow(t *testing.T) {
	svc := NewResultService(newResultRepo(t))

	seeded, err := svc.Submit(&model.ExamResult{Username: "alice", Score: 60})
	require.NoError(t, err)

	got, err := svc.Update(seeded.ID, &ResultPatch{})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
	assert.Equal(t, 60.0, got.Score)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := NewResultService(newResultRepo(t))

	_, err := svc.Update(999, &ResultPatch{Score: ptr(75.0)})
	assert.ErrorIs(t, err, util.ErrResultNotFound)

	_, err = svc.Update(999, &ResultPatch{})
	assert.ErrorIs(t, err, util.ErrResultNotFound)
}

func TestUpdateRejectsBlankUsername(t *testing.T) {
	svc := NewResultService(newResultRepo(t))

	seeded, err := svc.Submit(&model.ExamResult{Username: "alice", Score: 60})
	require.NoError(t, err)

	_, err = svc.Update(seeded.ID, &ResultPatch{Username: ptr("   ")})
	assert.ErrorIs(t, err, util.ErrUsernameRequired)
}

func TestDeleteThenGone(t *testing.T) {
	svc := NewResultService(newResultRepo(t))

	seeded, err := svc.Submit(&model.ExamResult{Username: "alice", Score: 60})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(seeded.ID))
	assert.ErrorIs(t, svc.Delete(seeded.ID), util.ErrResultNotFound)

	_, err = svc.Update(seeded.ID, &ResultPatch{})
	assert.ErrorIs(t, err, util.ErrResultNotFound)
}

func TestListByUserNewestFirst(t *testing.T) {
	repo := newResultRepo(t)
	svc := NewResultService(repo)
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	insertResult(t, repo, "alice", "1", 70, 65, 10, base)
	insertResult(t, repo, "alice", "1", 80, 75, 10, base.Add(time.Hour))

	results, err := svc.ListByUser("alice", 50)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, !results[0].ExamDate.Before(results[1].ExamDate))
}
