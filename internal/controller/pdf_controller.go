package controller

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"learnify_backend/internal/service"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PdfController struct {
	PdfService    *service.PdfService
	RatingService *service.RatingService
}

func NewPdfController(pdfService *service.PdfService, ratingService *service.RatingService) *PdfController {
	return &PdfController{
		PdfService:    pdfService,
		RatingService: ratingService,
	}
}

// Upload godoc
// @Summary Upload a PDF
// @Description Accepts a multipart PDF, extracts its text for search and
// @Description stores the file under a random name
// @Tags pdfs
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "the PDF file"
// @Param courseId formData int true "course the upload belongs to"
// @Success 201 {object} util.Response{data=model.PdfUpload}
// @Failure 400 {object} util.Response "missing file or not a PDF"
// @Failure 404 {object} util.Response "course not found"
// @Router /api/pdfs [post]
func (c *PdfController) Upload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	courseID, err := strconv.ParseUint(ctx.PostForm("courseId"), 10, 32)
	if err != nil || courseID == 0 {
		util.BadRequest(ctx, "courseId is required")
		return
	}

	pdf, err := c.PdfService.ProcessUpload(ctx.Request.Context(), file, claims.UserID, uint(courseID))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotPdf):
			util.BadRequest(ctx, "only PDF files are accepted")
		case errors.Is(err, util.ErrCourseNotFound), errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, pdf)
}

// List godoc
// @Summary List uploaded PDFs
// @Tags pdfs
// @Produce json
// @Success 200 {object} util.Response{data=[]model.PdfUpload}
// @Router /api/pdfs [get]
func (c *PdfController) List(ctx *gin.Context) {
	pdfs, err := c.PdfService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pdfs)
}

// Get godoc
// @Summary PDF metadata
// @Tags pdfs
// @Produce json
// @Param id path int true "pdf id"
// @Success 200 {object} util.Response{data=model.PdfUpload}
// @Failure 404 {object} util.Response "pdf not found"
// @Router /api/pdfs/{id} [get]
func (c *PdfController) Get(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid pdf id")
		return
	}

	pdf, err := c.PdfService.Get(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, pdf)
}

// Download godoc
// @Summary Serve the PDF binary
// @Description Streams the stored file inline under its original filename
// @Tags pdfs
// @Produce application/pdf
// @Param id path int true "pdf id"
// @Success 200 {file} binary
// @Failure 404 {object} util.Response "pdf not found"
// @Router /api/pdfs/{id}/file [get]
func (c *PdfController) Download(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid pdf id")
		return
	}

	pdf, reader, err := c.PdfService.OpenFile(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrPdfNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	defer reader.Close()

	ctx.Header("Content-Type", util.MimePDF)
	ctx.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", pdf.FileName))
	if _, err := io.Copy(ctx.Writer, reader); err != nil {
		// Headers are already out; nothing left to do but log.
		util.LogStreamError(ctx, err)
	}
}

// Report godoc
// @Summary Flag a PDF for moderation
// @Tags pdfs
// @Produce json
// @Security BearerAuth
// @Param id path int true "pdf id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "pdf not found"
// @Router /api/pdfs/{id}/report [post]
func (c *PdfController) Report(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid pdf id")
		return
	}

	if err := c.PdfService.Report(id); err != nil {
		if errors.Is(err, util.ErrPdfNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// Rate godoc
// @Summary Rate a PDF
// @Description One vote per user; voting again replaces the old value
// @Tags pdfs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "pdf id"
// @Param body body RatingRequest true "vote"
// @Success 200 {object} util.Response{data=model.PdfUpload}
// @Failure 404 {object} util.Response "pdf not found"
// @Router /api/pdfs/{id}/rate [post]
func (c *PdfController) Rate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := paramID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid pdf id")
		return
	}

	var req RatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.RatingService.RatePdf(id, claims.UserID, req.Value); err != nil {
		if errors.Is(err, util.ErrPdfNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	pdf, err := c.PdfService.Get(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pdf)
}
