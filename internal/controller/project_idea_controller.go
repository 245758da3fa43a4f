package controller

import (
	"errors"

	"learnify_backend/internal/model"
	"learnify_backend/internal/service"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProjectIdeaController struct {
	IdeaService *service.ProjectIdeaService
}

func NewProjectIdeaController(ideaService *service.ProjectIdeaService) *ProjectIdeaController {
	return &ProjectIdeaController{IdeaService: ideaService}
}

// SuggestRequest lists what the caller already knows
// swagger:model SuggestRequest
type SuggestRequest struct {
	Technologies []string `json:"technologies" binding:"required,min=1"`
}

// ProjectIdeaRequest defines a new idea
// swagger:model ProjectIdeaRequest
type ProjectIdeaRequest struct {
	Title        string   `json:"title" binding:"required,max=255"`
	Summary      string   `json:"summary" binding:"max=1000"`
	Technologies []string `json:"technologies" binding:"required,min=1"`
	Roadmap      []string `json:"roadmap"`
}

// GitHubImportRequest points at a public repository
// swagger:model GitHubImportRequest
type GitHubImportRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// List godoc
// @Summary List project ideas
// @Tags projects
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ProjectIdea}
// @Router /api/projects [get]
func (c *ProjectIdeaController) List(ctx *gin.Context) {
	ideas, err := c.IdeaService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ideas)
}

// Suggest godoc
// @Summary Suggest project ideas
// @Description Returns ideas whose stack is close to the given technologies.
// @Description Each hit lists the technologies still to learn.
// @Tags projects
// @Accept json
// @Produce json
// @Param body body SuggestRequest true "known technologies"
// @Success 200 {object} util.Response{data=[]model.ProjectIdea}
// @Failure 400 {object} util.Response "invalid payload"
// @Router /api/projects/suggest [post]
func (c *ProjectIdeaController) Suggest(ctx *gin.Context) {
	var req SuggestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ideas, err := c.IdeaService.Suggest(req.Technologies)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ideas)
}

// Get godoc
// @Summary Project idea details
// @Tags projects
// @Produce json
// @Param id path int true "idea id"
// @Success 200 {object} util.Response{data=model.ProjectIdea}
// @Failure 404 {object} util.Response "idea not found"
// @Router /api/projects/{id} [get]
func (c *ProjectIdeaController) Get(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid idea id")
		return
	}

	idea, err := c.IdeaService.GetIdea(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, idea)
}

// Create godoc
// @Summary Add a project idea
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ProjectIdeaRequest true "idea payload"
// @Success 201 {object} util.Response{data=model.ProjectIdea}
// @Failure 403 {object} util.Response "admin only"
// @Router /api/projects [post]
func (c *ProjectIdeaController) Create(ctx *gin.Context) {
	var req ProjectIdeaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	idea := &model.ProjectIdea{
		Title:        req.Title,
		Summary:      req.Summary,
		Technologies: req.Technologies,
		Roadmap:      req.Roadmap,
	}
	if err := c.IdeaService.AddIdea(idea); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, idea)
}

// ImportFromGitHub godoc
// @Summary Import an idea from a GitHub repository
// @Description Uses the repository description as summary and its topics as
// @Description the technology list
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GitHubImportRequest true "repository URL"
// @Success 201 {object} util.Response{data=model.ProjectIdea}
// @Failure 400 {object} util.Response "not a GitHub repository URL"
// @Failure 403 {object} util.Response "admin only"
// @Router /api/projects/import [post]
func (c *ProjectIdeaController) ImportFromGitHub(ctx *gin.Context) {
	var req GitHubImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	idea, err := c.IdeaService.ImportFromGitHub(req.URL)
	if err != nil {
		if errors.Is(err, util.ErrInvalidGitHubURL) {
			util.BadRequest(ctx, "url must point at a GitHub repository")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, idea)
}
