package controller

import (
	"strings"

	"learnify_backend/internal/service"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	SearchService *service.SearchService
}

func NewSearchController(searchService *service.SearchService) *SearchController {
	return &SearchController{SearchService: searchService}
}

// Search godoc
// @Summary Full-text search
// @Description Matches articles on title and content, and PDFs on filename
// @Description and extracted text. Scope narrows the corpus.
// @Tags search
// @Produce json
// @Param q query string true "search terms"
// @Param scope query string false "articles, pdfs or all" default(all)
// @Success 200 {object} util.Response{data=service.SearchResult}
// @Failure 400 {object} util.Response "empty query"
// @Router /api/search [get]
func (c *SearchController) Search(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("q"))
	if query == "" {
		util.BadRequest(ctx, "query parameter q is required")
		return
	}

	switch ctx.DefaultQuery("scope", "all") {
	case "articles":
		articles, err := c.SearchService.SearchArticles(query)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, gin.H{"articles": articles})
	case "pdfs":
		pdfs, err := c.SearchService.SearchPdfs(query)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, gin.H{"pdfs": pdfs})
	case "all":
		result, err := c.SearchService.SearchAll(query)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, result)
	default:
		util.BadRequest(ctx, "scope must be articles, pdfs or all")
	}
}
