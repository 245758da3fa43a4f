package service

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"
	"learnify_backend/pkg/logger"
	"learnify_backend/pkg/pdftext"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PdfService struct {
	PdfRepo    *repository.PdfUploadRepository
	UserRepo   *repository.UserRepository
	CourseRepo *repository.CourseRepository
	Storage    *StorageService
}

func NewPdfService(pdfRepo *repository.PdfUploadRepository, userRepo *repository.UserRepository, courseRepo *repository.CourseRepository, storage *StorageService) *PdfService {
	return &PdfService{
		PdfRepo:    pdfRepo,
		UserRepo:   userRepo,
		CourseRepo: courseRepo,
		Storage:    storage,
	}
}

// ProcessUpload stores the file under a random name, extracts its text and
// records the upload. The original filename survives as metadata only.
// Extraction failure is not fatal: the row is saved with empty text and a
// warning is logged.
func (s *PdfService) ProcessUpload(ctx context.Context, file *multipart.FileHeader, userID, courseID uint) (*model.PdfUpload, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, []string{util.MimePDF}); err != nil {
		return nil, util.ErrNotPdf
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	// Spool to a temp file: the text extractor needs a seekable file and
	// the storage backend may be remote.
	tmp, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return nil, err
	}

	extractedText, err := pdftext.ExtractFile(tmp.Name())
	if err != nil {
		logger.Log.Warn("pdf text extraction failed",
			zap.String("file", file.Filename), zap.Error(err))
		extractedText = ""
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	filename := "pdfs/" + uuid.New().String() + filepath.Ext(file.Filename)
	if _, err := s.Storage.Upload(ctx, filename, tmp, file.Size, util.MimePDF); err != nil {
		return nil, err
	}

	pdf := &model.PdfUpload{
		FileName:      file.Filename,
		FilePath:      filename,
		ExtractedText: extractedText,
		UserID:        user.ID,
		CourseID:      course.ID,
	}
	if err := s.PdfRepo.Create(pdf); err != nil {
		return nil, err
	}
	return pdf, nil
}

func (s *PdfService) GetAll() ([]model.PdfUpload, error) {
	return s.PdfRepo.FindAll()
}

func (s *PdfService) Get(id uint) (*model.PdfUpload, error) {
	pdf, err := s.PdfRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrPdfNotFound
	}
	return pdf, nil
}

// OpenFile returns the stored binary for serving.
func (s *PdfService) OpenFile(ctx context.Context, id uint) (*model.PdfUpload, io.ReadCloser, error) {
	pdf, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.Storage.Open(ctx, pdf.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return pdf, reader, nil
}

// Report flags the upload for moderation.
func (s *PdfService) Report(id uint) error {
	pdf, err := s.Get(id)
	if err != nil {
		return err
	}
	pdf.Reported = true
	return s.PdfRepo.Update(pdf)
}
