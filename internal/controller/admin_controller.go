package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/guanzhi08/aces-unit-test/internal/service"
	"github.com/guanzhi08/aces-unit-test/internal/util"
)

type AdminController struct {
	AdminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type TokenRequest struct {
	Token string `json:"token"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type AdminUserRequest struct {
	Username string `json:"username" binding:"required"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Login godoc
// @Summary Admin login
// @Description Checks the admin password and returns a fresh session token.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body AdminLoginRequest true "admin password"
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Router /api/admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AdminService.Login(req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"token": token})
}

// Verify godoc
// @Summary Check admin token validity
// @Tags admin
// @Accept json
// @Produce json
// @Param body body TokenRequest true "session token"
// @Success 200 {object} util.Response{data=object}
// @Router /api/admin/verify [post]
func (c *AdminController) Verify(ctx *gin.Context) {
	// The token may arrive in the body or as the query parameter; an absent
	// token is simply invalid, not a bad request.
	var req TokenRequest
	_ = ctx.ShouldBindJSON(&req)
	if req.Token == "" {
		req.Token = ctx.Query("token")
	}

	valid, err := c.AdminService.VerifyToken(req.Token)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"valid": valid})
}

// Logout godoc
// @Summary Invalidate an admin session
// @Description Idempotent: logging out an unknown token still succeeds.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body TokenRequest true "session token"
// @Success 200 {object} util.Response
// @Router /api/admin/logout [post]
func (c *AdminController) Logout(ctx *gin.Context) {
	var req TokenRequest
	_ = ctx.ShouldBindJSON(&req)
	if req.Token == "" {
		req.Token = ctx.Query("token")
	}

	if err := c.AdminService.Logout(req.Token); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ChangePassword godoc
// @Summary Rotate the admin password
// @Tags admin
// @Accept json
// @Produce json
// @Param token query string true "admin session token"
// @Param body body ChangePasswordRequest true "old and new password"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/admin/change-password [post]
func (c *AdminController) ChangePassword(ctx *gin.Context) {
	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AdminService.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Error(ctx, 401, err.Error())
		case errors.Is(err, util.ErrPasswordRequired):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// ListUsers godoc
// @Summary List user accounts
// @Tags admin
// @Produce json
// @Param token query string true "admin session token"
// @Success 200 {object} util.Response{data=[]model.User}
// @Failure 401 {object} util.Response
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.AdminService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// DeleteUser godoc
// @Summary Delete a user account
// @Tags admin
// @Accept json
// @Produce json
// @Param token query string true "admin session token"
// @Param body body AdminUserRequest true "username"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/delete [post]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	var req AdminUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AdminService.DeleteUser(req.Username); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"username": req.Username})
}

// ResetPassword godoc
// @Summary Reset a user's password
// @Tags admin
// @Accept json
// @Produce json
// @Param token query string true "admin session token"
// @Param body body ResetPasswordRequest true "username and new password"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/reset-password [post]
func (c *AdminController) ResetPassword(ctx *gin.Context) {
	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AdminService.ResetPassword(req.Username, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrPasswordRequired):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"username": req.Username})
}
