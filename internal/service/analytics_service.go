package service

import (
	"math"
	"sort"
	"strconv"

	"github.com/guanzhi08/aces-unit-test/internal/model"
	"github.com/guanzhi08/aces-unit-test/internal/repository"
)

// curveDateLayout is the minute-precision label used on chart axes.
const curveDateLayout = "2006-01-02 15:04"

// Question-count buckets: exams of exactly 5 or 10 questions chart
// separately, anything from 11 up charts as a full-length exam.
const (
	BucketFive = "5"
	BucketTen  = "10"
	BucketAll  = "ALL"
)

type AnalyticsService struct {
	ResultRepo *repository.ResultRepository
}

func NewAnalyticsService(resultRepo *repository.ResultRepository) *AnalyticsService {
	return &AnalyticsService{ResultRepo: resultRepo}
}

// Curve is a time-ordered sequence of score/accuracy samples for charting.
type Curve struct {
	Dates          []string  `json:"dates"`
	Scores         []float64 `json:"scores"`
	TypeAccuracies []float64 `json:"type_accuracies"`
}

type UnitCurves struct {
	Units []string          `json:"units"`
	Data  map[string]*Curve `json:"data"`
}

type BucketCurves struct {
	Buckets []string          `json:"buckets"`
	Data    map[string]*Curve `json:"data"`
}

type UserStats struct {
	Username            string    `json:"username"`
	TotalExams          int64     `json:"total_exams"`
	AverageScore        float64   `json:"average_score"`
	AverageTypeAccuracy float64   `json:"average_type_accuracy"`
	BestScore           float64   `json:"best_score"`
	RecentScores        []float64 `json:"recent_scores"`
}

func newCurve() *Curve {
	return &Curve{
		Dates:          []string{},
		Scores:         []float64{},
		TypeAccuracies: []float64{},
	}
}

func (c *Curve) append(r *model.ExamResult) {
	c.Dates = append(c.Dates, r.ExamDate.Format(curveDateLayout))
	c.Scores = append(c.Scores, r.Score)
	c.TypeAccuracies = append(c.TypeAccuracies, r.TypeAccuracy)
}

func curveFrom(results []model.ExamResult) *Curve {
	c := newCurve()
	for i := range results {
		c.append(&results[i])
	}
	return c
}

// Curve returns the limit most-recent samples presented oldest-first,
// optionally filtered to one unit.
func (s *AnalyticsService) Curve(username, unit string, limit int) (*Curve, error) {
	results, err := s.ResultRepo.RecentByUser(username, unit, limit)
	if err != nil {
		return nil, err
	}

	// The query selects the recency window newest-first; the chart wants it
	// chronological.
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}

	return curveFrom(results), nil
}

// CurveByUnit groups the full history into one chronological curve per
// distinct unit. Units order by numeric value; non-numeric units sort after
// the numeric ones.
func (s *AnalyticsService) CurveByUnit(username string) (*UnitCurves, error) {
	units, err := s.ResultRepo.DistinctUnits(username)
	if err != nil {
		return nil, err
	}
	sortUnits(units)

	out := &UnitCurves{
		Units: units,
		Data:  make(map[string]*Curve, len(units)),
	}
	for _, unit := range units {
		history, err := s.ResultRepo.HistoryByUser(username, unit)
		if err != nil {
			return nil, err
		}
		out.Data[unit] = curveFrom(history)
	}
	return out, nil
}

// CurveByQuestionCount partitions the history into the fixed question-count
// buckets, each with its own chronological curve. Buckets are disjoint: a
// 5-question exam appears only under "5", an 11-question exam only under
// "ALL".
func (s *AnalyticsService) CurveByQuestionCount(username, unit string) (*BucketCurves, error) {
	history, err := s.ResultRepo.HistoryByUser(username, unit)
	if err != nil {
		return nil, err
	}

	out := &BucketCurves{
		Buckets: []string{BucketFive, BucketTen, BucketAll},
		Data: map[string]*Curve{
			BucketFive: newCurve(),
			BucketTen:  newCurve(),
			BucketAll:  newCurve(),
		},
	}
	for i := range history {
		r := &history[i]
		switch {
		case r.TotalQuestions == 5:
			out.Data[BucketFive].append(r)
		case r.TotalQuestions == 10:
			out.Data[BucketTen].append(r)
		case r.TotalQuestions >= 11:
			out.Data[BucketAll].append(r)
		}
	}
	return out, nil
}

// Stats aggregates one user's history, optionally filtered to one unit. With
// no matching rows every numeric field is zero and recent_scores is empty.
func (s *AnalyticsService) Stats(username, unit string) (*UserStats, error) {
	agg, err := s.ResultRepo.Aggregate(username, unit)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		Username:     username,
		RecentScores: []float64{},
	}
	if agg.TotalExams == 0 {
		return stats, nil
	}

	recent, err := s.ResultRepo.RecentByUser(username, unit, 10)
	if err != nil {
		return nil, err
	}
	for i := len(recent) - 1; i >= 0; i-- {
		stats.RecentScores = append(stats.RecentScores, recent[i].Score)
	}

	stats.TotalExams = agg.TotalExams
	stats.AverageScore = round1(agg.AverageScore)
	stats.AverageTypeAccuracy = round1(agg.AverageTypeAccuracy)
	stats.BestScore = agg.BestScore
	return stats, nil
}

func (s *AnalyticsService) ListUsers() ([]repository.UserCount, error) {
	counts, err := s.ResultRepo.CountByUsername()
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []repository.UserCount{}
	}
	return counts, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// sortUnits orders unit identifiers by numeric value. Units that do not
// parse as integers sort after the numeric ones, lexicographically, instead
// of breaking the listing. Ordering cannot be pushed into SQL portably:
// Postgres errors on CAST of non-numeric text.
func sortUnits(units []string) {
	sort.SliceStable(units, func(i, j int) bool {
		a, aerr := strconv.Atoi(units[i])
		b, berr := strconv.Atoi(units[j])
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return units[i] < units[j]
		}
	})
}
