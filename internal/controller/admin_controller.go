package controller

import (
	"errors"

	"learnify_backend/internal/model"
	"learnify_backend/internal/service"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService *service.AdminService
	UserService  *service.UserService
}

func NewAdminController(adminService *service.AdminService, userService *service.UserService) *AdminController {
	return &AdminController{
		AdminService: adminService,
		UserService:  userService,
	}
}

// RoleUpdateRequest defines a role change
// swagger:model RoleUpdateRequest
type RoleUpdateRequest struct {
	Role string `json:"role" binding:"required,oneof=student instructor admin"`
}

// ActiveUpdateRequest toggles an account
// swagger:model ActiveUpdateRequest
type ActiveUpdateRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// Dashboard godoc
// @Summary Moderation dashboard
// @Description All users plus the PDFs currently flagged for review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Failure 403 {object} util.Response "admin only"
// @Router /api/admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.AdminService.GetDashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// ApprovePdf godoc
// @Summary Approve a reported PDF
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "pdf id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "pdf not found"
// @Router /api/admin/pdfs/{id}/approve [post]
func (c *AdminController) ApprovePdf(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid pdf id")
		return
	}

	if err := c.AdminService.ApprovePdf(id); err != nil {
		if errors.Is(err, util.ErrPdfNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// RejectPdf godoc
// @Summary Reject a reported PDF
// @Description Removes both the record and the stored file
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "pdf id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "pdf not found"
// @Router /api/admin/pdfs/{id}/reject [post]
func (c *AdminController) RejectPdf(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid pdf id")
		return
	}

	if err := c.AdminService.RejectPdf(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, util.ErrPdfNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// UpdateUserRole godoc
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param body body RoleUpdateRequest true "new role"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "user not found"
// @Router /api/admin/users/{id}/role [put]
func (c *AdminController) UpdateUserRole(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req RoleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.AdminService.UpdateUserRole(id, model.UserRole(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidRole):
			util.BadRequest(ctx, "invalid role")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// SetUserActive godoc
// @Summary Activate or deactivate a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param body body ActiveUpdateRequest true "active flag"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "user not found"
// @Router /api/admin/users/{id}/active [put]
func (c *AdminController) SetUserActive(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req ActiveUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.SetActive(id, *req.Active); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "user not found"
// @Router /api/admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if err := c.AdminService.DeleteUser(id); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// DeleteCourse godoc
// @Summary Delete a course and all nested content
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "course not found"
// @Router /api/admin/courses/{id} [delete]
func (c *AdminController) DeleteCourse(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.AdminService.DeleteCourse(id); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
