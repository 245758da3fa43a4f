package controller

import (
	"errors"

	"learnify_backend/internal/model"
	"learnify_backend/internal/service"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ArticleController struct {
	ArticleService *service.ArticleService
	CommentService *service.CommentService
	RatingService  *service.RatingService
}

func NewArticleController(articleService *service.ArticleService, commentService *service.CommentService, ratingService *service.RatingService) *ArticleController {
	return &ArticleController{
		ArticleService: articleService,
		CommentService: commentService,
		RatingService:  ratingService,
	}
}

// ArticleRequest defines the article create/update payload
// swagger:model ArticleRequest
type ArticleRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Content  string `json:"content" binding:"required"`
	CourseID uint   `json:"courseId" binding:"required"`
}

// CommentRequest defines the comment payload. ParentID nests the comment
// under an existing one on the same article.
// swagger:model CommentRequest
type CommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parentId"`
}

// RatingRequest defines a vote. Values outside [1,5] are clamped rather
// than rejected, so no binding constraint on Value: a "required" tag would
// bounce a literal 0 before the clamp sees it.
// swagger:model RatingRequest
type RatingRequest struct {
	Value int `json:"value"`
}

// List godoc
// @Summary List articles
// @Tags articles
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Article}
// @Router /api/articles [get]
func (c *ArticleController) List(ctx *gin.Context) {
	articles, err := c.ArticleService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, articles)
}

// Get godoc
// @Summary Article details
// @Tags articles
// @Produce json
// @Param id path int true "article id"
// @Success 200 {object} util.Response{data=model.Article}
// @Failure 404 {object} util.Response "article not found"
// @Router /api/articles/{id} [get]
func (c *ArticleController) Get(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid article id")
		return
	}

	article, err := c.ArticleService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, article)
}

// Create godoc
// @Summary Publish an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ArticleRequest true "article payload"
// @Success 201 {object} util.Response{data=model.Article}
// @Failure 401 {object} util.Response "not authenticated"
// @Router /api/articles [post]
func (c *ArticleController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	article := &model.Article{
		Title:    req.Title,
		Content:  req.Content,
		CourseID: req.CourseID,
		AuthorID: claims.UserID,
	}
	if err := c.ArticleService.Save(ctx.Request.Context(), article); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, article)
}

// Update godoc
// @Summary Update an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "article id"
// @Param body body ArticleRequest true "article payload"
// @Success 200 {object} util.Response{data=model.Article}
// @Failure 403 {object} util.Response "not the author"
// @Failure 404 {object} util.Response "article not found"
// @Router /api/articles/{id} [put]
func (c *ArticleController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid article id")
		return
	}

	var req ArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	article, err := c.ArticleService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	if article.AuthorID != claims.UserID && claims.Role != model.Admin {
		util.Forbidden(ctx)
		return
	}

	article.Title = req.Title
	article.Content = req.Content
	if err := c.ArticleService.Save(ctx.Request.Context(), article); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, article)
}

// Delete godoc
// @Summary Delete an article
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "article id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "not the author"
// @Failure 404 {object} util.Response "article not found"
// @Router /api/articles/{id} [delete]
func (c *ArticleController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid article id")
		return
	}

	article, err := c.ArticleService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	if article.AuthorID != claims.UserID && claims.Role != model.Admin {
		util.Forbidden(ctx)
		return
	}

	if err := c.ArticleService.Delete(ctx.Request.Context(), id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListComments godoc
// @Summary Comments of an article
// @Tags comments
// @Produce json
// @Param id path int true "article id"
// @Success 200 {object} util.Response{data=[]model.Comment}
// @Router /api/articles/{id}/comments [get]
func (c *ArticleController) ListComments(ctx *gin.Context) {
	articleID, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid article id")
		return
	}

	comments, err := c.CommentService.GetByArticle(articleID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}

// CreateComment godoc
// @Summary Comment on an article
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "article id"
// @Param body body CommentRequest true "comment payload"
// @Success 201 {object} util.Response{data=model.Comment}
// @Failure 404 {object} util.Response "article or parent not found"
// @Router /api/articles/{id}/comments [post]
func (c *ArticleController) CreateComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	articleID, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid article id")
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment := &model.Comment{
		Content:   req.Content,
		AuthorID:  claims.UserID,
		ArticleID: articleID,
		ParentID:  req.ParentID,
	}
	if err := c.CommentService.Create(comment); err != nil {
		switch {
		case errors.Is(err, util.ErrArticleNotFound), errors.Is(err, util.ErrCommentNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, comment)
}

// Rate godoc
// @Summary Rate an article
// @Description One vote per user; voting again replaces the old value
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "article id"
// @Param body body RatingRequest true "vote"
// @Success 200 {object} util.Response{data=model.Article}
// @Failure 404 {object} util.Response "article not found"
// @Router /api/articles/{id}/rate [post]
func (c *ArticleController) Rate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid article id")
		return
	}

	var req RatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.RatingService.RateArticle(id, claims.UserID, req.Value); err != nil {
		if errors.Is(err, util.ErrArticleNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	// The rating recompute wrote around the cache; drop the stale copy
	// before reading back.
	c.ArticleService.Invalidate(ctx.Request.Context(), id)
	article, err := c.ArticleService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, article)
}
