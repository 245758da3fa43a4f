package controller

import (
	"errors"

	"learnify_backend/internal/model"
	"learnify_backend/internal/service"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService   *service.LessonService
	ResourceService *service.ResourceService
}

func NewLessonController(lessonService *service.LessonService, resourceService *service.ResourceService) *LessonController {
	return &LessonController{
		LessonService:   lessonService,
		ResourceService: resourceService,
	}
}

// LessonRequest defines the lesson create/update payload
// swagger:model LessonRequest
type LessonRequest struct {
	Title         string `json:"title" binding:"required,max=100"`
	SequenceOrder int    `json:"sequenceOrder"`
}

// ResourceRequest defines the resource create/update payload
// swagger:model ResourceRequest
type ResourceRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Type string `json:"type" binding:"omitempty,oneof=PDF VIDEO LINK DOCUMENT SLIDES"`
	URL  string `json:"url" binding:"required"`
}

// ListByCourse godoc
// @Summary Lessons of a course, in sequence order
// @Tags lessons
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Router /api/courses/{id}/lessons [get]
func (c *LessonController) ListByCourse(ctx *gin.Context) {
	courseID, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	lessons, err := c.LessonService.GetByCourse(courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// Create godoc
// @Summary Add a lesson to a course
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Param body body LessonRequest true "lesson payload"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response "course not found"
// @Router /api/courses/{id}/lessons [post]
func (c *LessonController) Create(ctx *gin.Context) {
	courseID, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson := &model.Lesson{
		Title:         req.Title,
		SequenceOrder: req.SequenceOrder,
	}
	if err := c.LessonService.Create(courseID, lesson); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, lesson)
}

// Update godoc
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param body body LessonRequest true "lesson payload"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response "lesson not found"
// @Router /api/lessons/{id} [put]
func (c *LessonController) Update(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	existing, err := c.LessonService.Get(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	existing.Title = req.Title
	existing.SequenceOrder = req.SequenceOrder
	if err := c.LessonService.Update(existing); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, existing)
}

// Delete godoc
// @Summary Delete a lesson
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "lesson not found"
// @Router /api/lessons/{id} [delete]
func (c *LessonController) Delete(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	if _, err := c.LessonService.Get(id); err != nil {
		util.NotFound(ctx)
		return
	}
	if err := c.LessonService.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListResources godoc
// @Summary Resources of a lesson
// @Tags lessons
// @Produce json
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response{data=[]model.Resource}
// @Router /api/lessons/{id}/resources [get]
func (c *LessonController) ListResources(ctx *gin.Context) {
	lessonID, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	resources, err := c.ResourceService.GetByLesson(lessonID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resources)
}

// CreateResource godoc
// @Summary Attach a resource to a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param body body ResourceRequest true "resource payload"
// @Success 201 {object} util.Response{data=model.Resource}
// @Failure 404 {object} util.Response "lesson not found"
// @Router /api/lessons/{id}/resources [post]
func (c *LessonController) CreateResource(ctx *gin.Context) {
	lessonID, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var req ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource := &model.Resource{
		Name: req.Name,
		Type: model.ResourceType(req.Type),
		URL:  req.URL,
	}
	if err := c.ResourceService.Create(lessonID, resource); err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, resource)
}

// UpdateResource godoc
// @Summary Update a resource
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "resource id"
// @Param body body ResourceRequest true "resource payload"
// @Success 200 {object} util.Response{data=model.Resource}
// @Failure 404 {object} util.Response "resource not found"
// @Router /api/resources/{id} [put]
func (c *LessonController) UpdateResource(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid resource id")
		return
	}

	var req ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.ResourceService.Update(id, &model.Resource{
		Name: req.Name,
		Type: model.ResourceType(req.Type),
		URL:  req.URL,
	})
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, resource)
}

// DeleteResource godoc
// @Summary Delete a resource
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "resource id"
// @Success 200 {object} util.Response
// @Router /api/resources/{id} [delete]
func (c *LessonController) DeleteResource(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid resource id")
		return
	}

	if err := c.ResourceService.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
