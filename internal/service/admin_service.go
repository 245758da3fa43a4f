package service

import (
	"context"

	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"

	"go.uber.org/zap"
)

// Dashboard is the moderation snapshot served to administrators.
type Dashboard struct {
	Users        []model.User      `json:"users"`
	ReportedPdfs []model.PdfUpload `json:"reportedPdfs"`
}

type AdminService struct {
	UserRepo   *repository.UserRepository
	CourseRepo *repository.CourseRepository
	PdfRepo    *repository.PdfUploadRepository
	Storage    *StorageService
	Logger     *zap.Logger
}

func NewAdminService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	pdfRepo *repository.PdfUploadRepository,
	storage *StorageService,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		UserRepo:   userRepo,
		CourseRepo: courseRepo,
		PdfRepo:    pdfRepo,
		Storage:    storage,
		Logger:     logger,
	}
}

func (s *AdminService) GetDashboard() (*Dashboard, error) {
	users, err := s.UserRepo.FindAll()
	if err != nil {
		return nil, err
	}
	reported, err := s.PdfRepo.FindReported()
	if err != nil {
		return nil, err
	}
	return &Dashboard{Users: users, ReportedPdfs: reported}, nil
}

// ApprovePdf clears the report flag and marks the upload approved.
func (s *AdminService) ApprovePdf(id uint) error {
	pdf, err := s.PdfRepo.FindByID(id)
	if err != nil {
		return util.ErrPdfNotFound
	}
	pdf.Reported = false
	pdf.Approved = true
	return s.PdfRepo.Update(pdf)
}

// RejectPdf removes the upload and its stored file. A missing file in
// storage is logged but does not fail the rejection.
func (s *AdminService) RejectPdf(ctx context.Context, id uint) error {
	pdf, err := s.PdfRepo.FindByID(id)
	if err != nil {
		return util.ErrPdfNotFound
	}
	if err := s.Storage.Delete(ctx, pdf.FilePath); err != nil {
		s.Logger.Warn("failed to delete rejected pdf file",
			zap.String("path", pdf.FilePath),
			zap.Error(err))
	}
	return s.PdfRepo.Delete(id)
}

func (s *AdminService) UpdateUserRole(id uint, role model.UserRole) error {
	if !role.Valid() {
		return util.ErrInvalidRole
	}
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return util.ErrUserNotFound
	}
	user.Role = role
	return s.UserRepo.Update(user)
}

func (s *AdminService) DeleteUser(id uint) error {
	if _, err := s.UserRepo.FindByID(id); err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.Delete(id)
}

// DeleteCourse cascades through lessons, articles and uploads via the
// repository's association-aware delete.
func (s *AdminService) DeleteCourse(id uint) error {
	if _, err := s.CourseRepo.FindByID(id); err != nil {
		return util.ErrCourseNotFound
	}
	return s.CourseRepo.Delete(id)
}
