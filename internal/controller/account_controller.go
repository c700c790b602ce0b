package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/guanzhi08/aces-unit-test/internal/service"
	"github.com/guanzhi08/aces-unit-test/internal/util"
)

type AccountController struct {
	AccountService *service.AccountService
}

func NewAccountController(accountService *service.AccountService) *AccountController {
	return &AccountController{AccountService: accountService}
}

// swagger:model CredentialsRequest
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateUser godoc
// @Summary Create a user account
// @Tags accounts
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "credentials"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/users/create [post]
func (c *AccountController) CreateUser(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AccountService.Create(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUsernameTaken), errors.Is(err, util.ErrCredentialsRequired):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, user)
}

// LoginUser godoc
// @Summary Verify user credentials
// @Description Returns the matching account; no session token is issued.
// @Tags accounts
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "credentials"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/users/login [post]
func (c *AccountController) LoginUser(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AccountService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}
