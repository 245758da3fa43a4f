package controller

import (
	"errors"

	"learnify_backend/internal/model"
	"learnify_backend/internal/service"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	CommentService *service.CommentService
}

func NewCommentController(commentService *service.CommentService) *CommentController {
	return &CommentController{CommentService: commentService}
}

// Replies godoc
// @Summary Direct replies of a comment
// @Tags comments
// @Produce json
// @Param id path int true "comment id"
// @Success 200 {object} util.Response{data=[]model.Comment}
// @Router /api/comments/{id}/replies [get]
func (c *CommentController) Replies(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid comment id")
		return
	}

	replies, err := c.CommentService.GetReplies(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, replies)
}

// Delete godoc
// @Summary Delete a comment
// @Description Only the author or an admin may delete
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "comment id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "not the author"
// @Failure 404 {object} util.Response "comment not found"
// @Router /api/comments/{id} [delete]
func (c *CommentController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid comment id")
		return
	}

	comment, err := c.CommentService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrCommentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	if comment.AuthorID != claims.UserID && claims.Role != model.Admin {
		util.Forbidden(ctx)
		return
	}

	if err := c.CommentService.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
