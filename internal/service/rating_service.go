package service

import (
	"errors"

	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"

	"gorm.io/gorm"
)

type RatingService struct {
	RatingRepo  *repository.RatingRepository
	ArticleRepo *repository.ArticleRepository
	PdfRepo     *repository.PdfUploadRepository
	DB          *gorm.DB
}

func NewRatingService(ratingRepo *repository.RatingRepository, articleRepo *repository.ArticleRepository, pdfRepo *repository.PdfUploadRepository, db *gorm.DB) *RatingService {
	return &RatingService{
		RatingRepo:  ratingRepo,
		ArticleRepo: articleRepo,
		PdfRepo:     pdfRepo,
		DB:          db,
	}
}

// clampRating forces the raw value into [1,5].
func clampRating(value int) int {
	if value < 1 {
		return 1
	}
	if value > 5 {
		return 5
	}
	return value
}

// RateArticle records the user's vote and recomputes the article's derived
// stats. A repeat vote by the same user overwrites the existing row, so the
// vote count stays constant. The whole flow runs in one transaction.
func (s *RatingService) RateArticle(articleID, userID uint, value int) error {
	value = clampRating(value)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var article model.Article
		if err := tx.First(&article, articleID).Error; err != nil {
			return util.ErrArticleNotFound
		}

		existing, err := s.RatingRepo.FindByArticleAndUser(tx, articleID, userID)
		switch {
		case err == nil:
			existing.Value = value
			if err := tx.Save(existing).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			rating := &model.Rating{Value: value, UserID: userID, ArticleID: &articleID}
			if err := tx.Create(rating).Error; err != nil {
				return err
			}
		default:
			return err
		}

		count, avg, err := s.RatingRepo.StatsByArticle(tx, articleID)
		if err != nil {
			return err
		}

		article.VoteCount = int(count)
		article.AverageRating = avg
		return tx.Save(&article).Error
	})
}

// RatePdf mirrors RateArticle for PDF uploads.
func (s *RatingService) RatePdf(pdfID, userID uint, value int) error {
	value = clampRating(value)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var pdf model.PdfUpload
		if err := tx.First(&pdf, pdfID).Error; err != nil {
			return util.ErrPdfNotFound
		}

		existing, err := s.RatingRepo.FindByPdfAndUser(tx, pdfID, userID)
		switch {
		case err == nil:
			existing.Value = value
			if err := tx.Save(existing).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			rating := &model.Rating{Value: value, UserID: userID, PdfID: &pdfID}
			if err := tx.Create(rating).Error; err != nil {
				return err
			}
		default:
			return err
		}

		count, avg, err := s.RatingRepo.StatsByPdf(tx, pdfID)
		if err != nil {
			return err
		}

		pdf.VoteCount = int(count)
		pdf.AverageRating = avg
		return tx.Save(&pdf).Error
	})
}
