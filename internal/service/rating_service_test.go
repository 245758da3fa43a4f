package service

import (
	"testing"

	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRatingFixture(t *testing.T) (*RatingService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewRatingService(
		repository.NewRatingRepository(db),
		repository.NewArticleRepository(db),
		repository.NewPdfUploadRepository(db),
		db,
	)
	return svc, db
}

func TestRateArticleComputesAverage(t *testing.T) {
	svc, db := newRatingFixture(t)

	author := createTestUser(t, db, "author")
	course := createTestCourse(t, db, "Go basics")
	article := createTestArticle(t, db, author.ID, course.ID, "Slices")

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, svc.RateArticle(article.ID, alice.ID, 4))
	require.NoError(t, svc.RateArticle(article.ID, bob.ID, 5))

	var got model.Article
	require.NoError(t, db.First(&got, article.ID).Error)
	assert.Equal(t, 2, got.VoteCount)
	assert.InDelta(t, 4.5, got.AverageRating, 0.001)
}

func TestRateArticleRepeatVoteReplaces(t *testing.T) {
	svc, db := newRatingFixture(t)

	author := createTestUser(t, db, "author")
	course := createTestCourse(t, db, "Go basics")
	article := createTestArticle(t, db, author.ID, course.ID, "Maps")
	alice := createTestUser(t, db, "alice")

	require.NoError(t, svc.RateArticle(article.ID, alice.ID, 2))
	require.NoError(t, svc.RateArticle(article.ID, alice.ID, 4))

	var got model.Article
	require.NoError(t, db.First(&got, article.ID).Error)
	assert.Equal(t, 1, got.VoteCount, "a repeat vote must not add a row")
	assert.InDelta(t, 4.0, got.AverageRating, 0.001)

	var ratings int64
	require.NoError(t, db.Model(&model.Rating{}).Count(&ratings).Error)
	assert.EqualValues(t, 1, ratings)
}

func TestRateArticleClampsValue(t *testing.T) {
	svc, db := newRatingFixture(t)

	author := createTestUser(t, db, "author")
	course := createTestCourse(t, db, "Go basics")
	article := createTestArticle(t, db, author.ID, course.ID, "Channels")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, svc.RateArticle(article.ID, alice.ID, 9))
	require.NoError(t, svc.RateArticle(article.ID, bob.ID, -3))

	var ratings []model.Rating
	require.NoError(t, db.Order("id").Find(&ratings).Error)
	require.Len(t, ratings, 2)
	assert.Equal(t, 5, ratings[0].Value)
	assert.Equal(t, 1, ratings[1].Value)
}

func TestRateArticleMissingArticle(t *testing.T) {
	svc, db := newRatingFixture(t)
	alice := createTestUser(t, db, "alice")

	err := svc.RateArticle(12345, alice.ID, 3)
	assert.ErrorIs(t, err, util.ErrArticleNotFound)
}

func TestRatePdfComputesStats(t *testing.T) {
	svc, db := newRatingFixture(t)

	uploader := createTestUser(t, db, "uploader")
	course := createTestCourse(t, db, "Go basics")
	pdf := &model.PdfUpload{
		FileName: "notes.pdf",
		FilePath: "pdfs/abc.pdf",
		UserID:   uploader.ID,
		CourseID: course.ID,
	}
	require.NoError(t, db.Create(pdf).Error)

	alice := createTestUser(t, db, "alice")
	require.NoError(t, svc.RatePdf(pdf.ID, alice.ID, 3))

	var got model.PdfUpload
	require.NoError(t, db.First(&got, pdf.ID).Error)
	assert.Equal(t, 1, got.VoteCount)
	assert.InDelta(t, 3.0, got.AverageRating, 0.001)
}

func TestRatePdfMissingPdf(t *testing.T) {
	svc, db := newRatingFixture(t)
	alice := createTestUser(t, db, "alice")

	err := svc.RatePdf(999, alice.ID, 4)
	assert.ErrorIs(t, err, util.ErrPdfNotFound)
}
