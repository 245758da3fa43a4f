package repository

import (
	"learnify_backend/internal/model"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) FindByArticleAndUser(tx *gorm.DB, articleID, userID uint) (*model.Rating, error) {
	var rating model.Rating
	err := tx.Where("article_id = ? AND user_id = ?", articleID, userID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) FindByPdfAndUser(tx *gorm.DB, pdfID, userID uint) (*model.Rating, error) {
	var rating model.Rating
	err := tx.Where("pdf_id = ? AND user_id = ?", pdfID, userID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// StatsByArticle returns the vote count and arithmetic mean for the article.
// The mean is 0 when there are no votes.
func (r *RatingRepository) StatsByArticle(tx *gorm.DB, articleID uint) (int64, float64, error) {
	return r.stats(tx, "article_id = ?", articleID)
}

func (r *RatingRepository) StatsByPdf(tx *gorm.DB, pdfID uint) (int64, float64, error) {
	return r.stats(tx, "pdf_id = ?", pdfID)
}

func (r *RatingRepository) stats(tx *gorm.DB, cond string, id uint) (int64, float64, error) {
	var count int64
	if err := tx.Model(&model.Rating{}).Where(cond, id).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}

	var avg float64
	err := tx.Model(&model.Rating{}).Where(cond, id).Select("AVG(value)").Scan(&avg).Error
	return count, avg, err
}
