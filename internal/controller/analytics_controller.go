package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/guanzhi08/aces-unit-test/internal/service"
	"github.com/guanzhi08/aces-unit-test/internal/util"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// GetCurve godoc
// @Summary Chronological score curve for one user
// @Description Returns the most recent N samples presented oldest-first.
// @Tags analytics
// @Produce json
// @Param username path string true "username"
// @Param unit query string false "restrict to one unit"
// @Param limit query int false "recency window" default(20)
// @Success 200 {object} util.Response{data=service.Curve}
// @Router /api/curve/{username} [get]
func (c *AnalyticsController) GetCurve(ctx *gin.Context) {
	username := ctx.Param("username")
	unit := ctx.Query("unit")
	limit := util.ParseLimit(ctx.Query("limit"), 20)

	curve, err := c.AnalyticsService.Curve(username, unit, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, curve)
}

// GetCurveByUnit godoc
// @Summary Score curves grouped by unit
// @Tags analytics
// @Produce json
// @Param username path string true "username"
// @Success 200 {object} util.Response{data=service.UnitCurves}
// @Router /api/curve-by-unit/{username} [get]
func (c *AnalyticsController) GetCurveByUnit(ctx *gin.Context) {
	curves, err := c.AnalyticsService.CurveByUnit(ctx.Param("username"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, curves)
}

// GetCurveByCount godoc
// @Summary Score curves bucketed by question count
// @Description Buckets: "5" (exactly 5 questions), "10" (exactly 10), "ALL" (11 or more).
// @Tags analytics
// @Produce json
// @Param username path string true "username"
// @Param unit query string false "restrict to one unit"
// @Success 200 {object} util.Response{data=service.BucketCurves}
// @Router /api/curve-by-count/{username} [get]
func (c *AnalyticsController) GetCurveByCount(ctx *gin.Context) {
	curves, err := c.AnalyticsService.CurveByQuestionCount(ctx.Param("username"), ctx.Query("unit"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, curves)
}

// GetStats godoc
// @Summary Aggregate statistics for one user
// @Tags analytics
// @Produce json
// @Param username path string true "username"
// @Param unit query string false "restrict to one unit"
// @Success 200 {object} util.Response{data=service.UserStats}
// @Router /api/stats/{username} [get]
func (c *AnalyticsController) GetStats(ctx *gin.Context) {
	stats, err := c.AnalyticsService.Stats(ctx.Param("username"), ctx.Query("unit"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GetUsers godoc
// @Summary Distinct usernames with exam counts
// @Tags analytics
// @Produce json
// @Success 200 {object} util.Response{data=[]repository.UserCount}
// @Router /api/users [get]
func (c *AnalyticsController) GetUsers(ctx *gin.Context) {
	users, err := c.AnalyticsService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}
