package repository

import (
	"learnify_backend/internal/model"

	"gorm.io/gorm"
)

type PdfUploadRepository struct {
	DB *gorm.DB
}

func NewPdfUploadRepository(db *gorm.DB) *PdfUploadRepository {
	return &PdfUploadRepository{DB: db}
}

func (r *PdfUploadRepository) Create(pdf *model.PdfUpload) error {
	return r.DB.Create(pdf).Error
}

func (r *PdfUploadRepository) FindByID(id uint) (*model.PdfUpload, error) {
	var pdf model.PdfUpload
	err := r.DB.First(&pdf, id).Error
	return &pdf, err
}

func (r *PdfUploadRepository) FindAll() ([]model.PdfUpload, error) {
	var pdfs []model.PdfUpload
	err := r.DB.Find(&pdfs).Error
	return pdfs, err
}

func (r *PdfUploadRepository) FindReported() ([]model.PdfUpload, error) {
	var pdfs []model.PdfUpload
	err := r.DB.Where("reported = ?", true).Find(&pdfs).Error
	return pdfs, err
}

func (r *PdfUploadRepository) Update(pdf *model.PdfUpload) error {
	return r.DB.Save(pdf).Error
}

func (r *PdfUploadRepository) Delete(id uint) error {
	return r.DB.Select("Ratings").Delete(&model.PdfUpload{BaseModel: model.BaseModel{ID: id}}).Error
}

// FullTextSearch matches the boolean-mode FULLTEXT index over
// (file_name, extracted_text). MySQL only.
func (r *PdfUploadRepository) FullTextSearch(query string) ([]model.PdfUpload, error) {
	var pdfs []model.PdfUpload
	err := r.DB.Raw(
		"SELECT * FROM pdf_uploads WHERE MATCH(file_name, extracted_text) AGAINST(? IN BOOLEAN MODE)",
		query,
	).Scan(&pdfs).Error
	return pdfs, err
}
