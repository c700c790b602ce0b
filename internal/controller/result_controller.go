package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/guanzhi08/aces-unit-test/internal/model"
	"github.com/guanzhi08/aces-unit-test/internal/service"
	"github.com/guanzhi08/aces-unit-test/internal/util"
	"github.com/guanzhi08/aces-unit-test/pkg/monitoring"
)

type ResultController struct {
	ResultService *service.ResultService
}

func NewResultController(resultService *service.ResultService) *ResultController {
	return &ResultController{ResultService: resultService}
}

// swagger:model SubmitResultRequest
type SubmitResultRequest struct {
	Username       string  `json:"username" binding:"required"`
	UnitNumber     string  `json:"unit_number"`
	Score          float64 `json:"score"`
	TypeAccuracy   float64 `json:"type_accuracy"`
	CorrectCount   int     `json:"correct_count"`
	TotalQuestions int     `json:"total_questions"`
}

// SubmitResult godoc
// @Summary Record an exam result
// @Tags results
// @Accept json
// @Produce json
// @Param body body SubmitResultRequest true "exam result"
// @Success 200 {object} util.Response{data=model.ExamResult}
// @Failure 400 {object} util.Response
// @Router /api/results [post]
func (c *ResultController) SubmitResult(ctx *gin.Context) {
	var req SubmitResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ResultService.Submit(&model.ExamResult{
		Username:       req.Username,
		UnitNumber:     req.UnitNumber,
		Score:          req.Score,
		TypeAccuracy:   req.TypeAccuracy,
		CorrectCount:   req.CorrectCount,
		TotalQuestions: req.TotalQuestions,
	})
	if err != nil {
		if errors.Is(err, util.ErrUsernameRequired) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.ResultsSubmitted.Inc()
	util.Success(ctx, result)
}

// GetUserResults godoc
// @Summary List one user's results, newest first
// @Tags results
// @Produce json
// @Param username path string true "username"
// @Param limit query int false "max rows" default(50)
// @Success 200 {object} util.Response{data=[]model.ExamResult}
// @Router /api/results/{username} [get]
func (c *ResultController) GetUserResults(ctx *gin.Context) {
	username := ctx.Param("username")
	limit := util.ParseLimit(ctx.Query("limit"), 50)

	results, err := c.ResultService.ListByUser(username, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// GetAllResults godoc
// @Summary List results across all users (admin view)
// @Tags results
// @Produce json
// @Param token query string true "admin session token"
// @Param limit query int false "max rows" default(100)
// @Success 200 {object} util.Response{data=[]model.ExamResult}
// @Failure 401 {object} util.Response
// @Router /api/all-results [get]
func (c *ResultController) GetAllResults(ctx *gin.Context) {
	limit := util.ParseLimit(ctx.Query("limit"), 100)

	results, err := c.ResultService.ListAll(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// UpdateResult godoc
// @Summary Partially update a result
// @Description Applies only the fields present in the payload.
// @Tags results
// @Accept json
// @Produce json
// @Param id path int true "result id"
// @Param body body service.ResultPatch true "fields to change"
// @Success 200 {object} util.Response{data=model.ExamResult}
// @Failure 404 {object} util.Response
// @Router /api/results/{id} [put]
func (c *ResultController) UpdateResult(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var patch service.ResultPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ResultService.Update(id, &patch)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrResultNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrUsernameRequired):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// DeleteResult godoc
// @Summary Delete a result by id
// @Tags results
// @Produce json
// @Param id path int true "result id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/results/{id} [delete]
func (c *ResultController) DeleteResult(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.ResultService.Delete(id); err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"id": id})
}
