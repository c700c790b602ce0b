package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsZeroState(t *testing.T) {
	svc := NewAnalyticsService(newResultRepo(t))

	stats, err := svc.Stats("nobody", "")
	require.NoError(t, err)

	assert.Equal(t, "nobody", stats.Username)
	assert.Zero(t, stats.TotalExams)
	assert.Zero(t, stats.AverageScore)
	assert.Zero(t, stats.AverageTypeAccuracy)
	assert.Zero(t, stats.BestScore)
	assert.Empty(t, stats.RecentScores)
	assert.NotNil(t, stats.RecentScores)
}

func TestStatsAliceScenario(t *testing.T) {
	repo := newResultRepo(t)
	svc := NewAnalyticsService(repo)
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	insertResult(t, repo, "alice", "1", 80, 70, 10, base)
	insertResult(t, repo, "alice", "1", 90, 85, 10, base.Add(time.Hour))

	stats, err := svc.Stats("alice", "")
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalExams)
	assert.Equal(t, 85.0, stats.AverageScore)
	assert.Equal(t, 90.0, stats.BestScore)
	assert.Equal(t, []float64{80, 90}, stats.RecentScores)
}

func TestStatsRoundsAveragesToOneDecimal(t *testing.T) {
	repo := newResultRepo(t)
	svc := NewAnalyticsService(repo)
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	insertResult(t, repo, "alice", "1", 70, 60, 10, base)
	insertResult(t, repo, "alice", "1", 80, 60, 10, base.Add(time.Hour))
	insertResult(t, repo, "alice", "1", 81, 61, 10, base.Add(2*time.Hour))

	stats, err := svc.Stats("alice", "")
	require.NoError(t, err)

	// 231/3 = 77, 181/3 = 60.333...
	assert.Equal(t, 77.0, stats.AverageScore)
	assert.Equal(t, 60.3, stats.AverageTypeAccuracy)
	// best_score stays unrounded
	assert.Equal(t, 81.0, stats.BestScore)
}

func TestStatsUnitFilter(t *testing.T) {
	repo := newResultRepo(t)
	svc := NewAnalyticsService(repo)
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	insertResult(t, repo, "alice", "1", 80, 70, 10, base)
	insertResult(t, repo, "alice", "2", 40, 30, 10, base.Add(time.Hour))

	stats, err := svc.Stats("alice", "1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalExams)
	assert.Equal(t, 80.0, stats.BestScore)
	assert.Equal(t, []float64{80}, stats.RecentScores)
}

func TestCurveRecencyWindowPresentedChronologically(t *testing.T) {
	repo := newResultRepo(t)
	svc := NewAnalyticsService(repo)
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	for i, score := range []float64{50, 60, 70, 80, 90} {
		insertResult(t, repo, "alice", "1", score, score-5, 10, base.Add(time.Duration(i)*time.Hour))
	}

	// The 3 most recent attempts, oldest first.
	curve, err := svc.Curve("alice", "", 3)
	require.NoError(t, err)

	assert.Equal(t, []float64{70, 80, 90}, curve.Scores)
	assert.Equal(t, []float64{65, 75, 85}, curve.TypeAccuracies)
	require.Len(t, curve.Dates, 3)
	assert.Equal(t, "2026-04-01 12:00", curve.Dates[0])
	for i := 1; i < len(curve.Dates); i++ {
		assert.LessOrEqual(t, curve.Dates[i-1], curve.Dates[i])
	}
}

func TestCurveUnitFilter(t *testing.T) {
	repo := newResultRepo(t)
	svc := NewAnalyticsService(repo)
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	insertResult(t, repo, "alice", "1", 80, 70, 10, base)
	insertResult(t, repo, "alice", "2", 40, 30, 10, base.Add(time.Hour))

	curve, err := svc.Curve("alice", "2", 20)
	require.NoError(t, err)
	assert.Equal(t, []float64{40}, curve.Scores)
}

func TestCurveEmptyHistory(t *testing.T) {
	svc := NewAnalyticsService(newResultRepo(t))

	curve, err := svc.Curve("nobody", "", 20)
	require.NoError(t, err)
	assert.NotNil(t, curve.Dates)
	assert.Empty(t, curve.Scores)
}

func TestCurveByUnitNumericOrdering(t *testing.T) {
	repo := newResultRepo(t)
	svc := NewAnalyticsService(repo)
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	insertResult(t, repo, "alice", "10", 80, 70, 10, base)
	insertResult(t, repo, "alice", "2", 60, 50, 10, base.Add(time.Hour))
	insertResult(t, repo, "alice", "1", 50, 40, 10, base.Add(2*time.Hour))
	insertResult(t, repo, "alice", "bonus", 90, 85, 10, base.Add(3*time.Hour))
	insertResult(t, repo, "alice", "2", 70, 60, 10, base.Add(4*time.Hour))

	curves, err := svc.CurveByUnit("alice")
	require.NoError(t, err)

	// Numeric units by value, non-numeric after them.
	assert.Equal(t, []string{"1", "2", "10", "bonus"}, curves.Units)
	require.Contains(t, curves.Data, "2")
	assert.Equal(t, []float64{60, 70}, curves.Data["2"].Scores)
}

func TestCurveByQuestionCountBucketsDisjoint(t *testing.T) {
	repo := newResultRepo(t)
	svc := NewAnalyticsService(repo)
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	insertResult(t, repo, "alice", "1", 50, 40, 5, base)
	insertResult(t, repo, "alice", "1", 60, 50, 10, base.Add(time.Hour))
	insertResult(t, repo, "alice", "1", 70, 60, 11, base.Add(2*time.Hour))
	insertResult(t, repo, "alice", "1", 80, 70, 25, base.Add(3*time.Hour))
	// 7-question attempts land in no bucket
	insertResult(t, repo, "alice", "1", 90, 85, 7, base.Add(4*time.Hour))

	curves, err := svc.CurveByQuestionCount("alice", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"5", "10", "ALL"}, curves.Buckets)
	assert.Equal(t, []float64{50}, curves.Data[BucketFive].Scores)
	assert.Equal(t, []float64{60}, curves.Data[BucketTen].Scores)
	assert.Equal(t, []float64{70, 80}, curves.Data[BucketAll].Scores)
}

func TestListUsers(t *testing.T) {
	repo := newResultRepo(t)
	svc := NewAnalyticsService(repo)
	now := time.Now()

	insertResult(t, repo, "bob", "1", 50, 40, 10, now)
	insertResult(t, repo, "alice", "1", 60, 50, 10, now)
	insertResult(t, repo, "alice", "2", 70, 60, 10, now)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.EqualValues(t, 2, users[0].ExamCount)

	empty := NewAnalyticsService(newResultRepo(t))
	none, err := empty.ListUsers()
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
