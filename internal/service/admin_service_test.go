package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"learnify_backend/internal/config"
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newAdminFixture(t *testing.T) (*AdminService, *gorm.DB, string) {
	db := setupTestDB(t)
	dir := t.TempDir()

	storage := &StorageService{Provider: &LocalStorageProvider{
		Config: &config.StorageConfig{Type: "local", LocalPath: dir},
	}}

	svc := NewAdminService(
		repository.NewUserRepository(db),
		repository.NewCourseRepository(db),
		repository.NewPdfUploadRepository(db),
		storage,
		zap.NewNop(),
	)
	return svc, db, dir
}

func seedReportedPdf(t *testing.T, db *gorm.DB, dir string) *model.PdfUpload {
	t.Helper()

	user := createTestUser(t, db, "uploader")
	course := createTestCourse(t, db, "Go basics")

	path := filepath.Join(dir, "pdfs")
	require.NoError(t, os.MkdirAll(path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "abc.pdf"), []byte("%PDF-1.7"), 0644))

	pdf := &model.PdfUpload{
		FileName: "notes.pdf",
		FilePath: "pdfs/abc.pdf",
		UserID:   user.ID,
		CourseID: course.ID,
		Reported: true,
	}
	require.NoError(t, db.Create(pdf).Error)
	return pdf
}

func TestDashboardListsUsersAndReportedPdfs(t *testing.T) {
	svc, db, dir := newAdminFixture(t)
	seedReportedPdf(t, db, dir)

	clean := &model.PdfUpload{FileName: "ok.pdf", FilePath: "pdfs/ok.pdf", UserID: 1, CourseID: 1}
	require.NoError(t, db.Create(clean).Error)

	dashboard, err := svc.GetDashboard()
	require.NoError(t, err)
	assert.Len(t, dashboard.Users, 1)
	require.Len(t, dashboard.ReportedPdfs, 1)
	assert.Equal(t, "notes.pdf", dashboard.ReportedPdfs[0].FileName)
}

func TestApprovePdfClearsReport(t *testing.T) {
	svc, db, dir := newAdminFixture(t)
	pdf := seedReportedPdf(t, db, dir)

	require.NoError(t, svc.ApprovePdf(pdf.ID))

	var got model.PdfUpload
	require.NoError(t, db.First(&got, pdf.ID).Error)
	assert.False(t, got.Reported)
	assert.True(t, got.Approved)
}

func TestRejectPdfRemovesRowAndFile(t *testing.T) {
	svc, db, dir := newAdminFixture(t)
	pdf := seedReportedPdf(t, db, dir)

	require.NoError(t, svc.RejectPdf(context.Background(), pdf.ID))

	var count int64
	require.NoError(t, db.Model(&model.PdfUpload{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	_, err := os.Stat(filepath.Join(dir, "pdfs", "abc.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestRejectPdfMissing(t *testing.T) {
	svc, _, _ := newAdminFixture(t)
	assert.ErrorIs(t, svc.RejectPdf(context.Background(), 999), util.ErrPdfNotFound)
}
