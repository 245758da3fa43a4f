package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/service"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupArticleRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Article{},
		&model.Rating{},
	))

	articleRepo := repository.NewArticleRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	pdfRepo := repository.NewPdfUploadRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	articleService := service.NewArticleService(articleRepo, nil)
	ratingService := service.NewRatingService(ratingRepo, articleRepo, pdfRepo, db)
	commentService := service.NewCommentService(commentRepo, articleRepo)
	controller := NewArticleController(articleService, commentService, ratingService)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", &util.Claims{
			UserID:   1,
			Role:     model.Student,
			Username: "voter",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject: "voter",
			},
		})
	})
	router.POST("/api/articles/:id/rate", controller.Rate)

	return router, db
}

func seedRatedArticle(t *testing.T, db *gorm.DB) *model.Article {
	t.Helper()

	user := &model.User{Username: "voter", Email: "voter@example.com", Password: "hashed", Role: model.Student, Active: true}
	require.NoError(t, db.Create(user).Error)
	course := &model.Course{Title: "Go Basics", Type: model.CourseJFS}
	require.NoError(t, db.Create(course).Error)
	article := &model.Article{Title: "Slices", Content: "slice internals", AuthorID: user.ID, CourseID: course.ID}
	require.NoError(t, db.Create(article).Error)
	return article
}

func TestArticleRateZeroValueIsClamped(t *testing.T) {
	router, db := setupArticleRouter(t)
	article := seedRatedArticle(t, db)

	// A literal zero must reach the clamp instead of failing validation.
	req := httptest.NewRequest(http.MethodPost, "/api/articles/1/rate", strings.NewReader(`{"value":0}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored model.Article
	require.NoError(t, db.First(&stored, article.ID).Error)
	assert.Equal(t, 1, stored.VoteCount)
	assert.Equal(t, float64(1), stored.AverageRating)
}

func TestArticleRateOutOfRangeValue(t *testing.T) {
	router, db := setupArticleRouter(t)
	article := seedRatedArticle(t, db)

	req := httptest.NewRequest(http.MethodPost, "/api/articles/1/rate", strings.NewReader(`{"value":9}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored model.Article
	require.NoError(t, db.First(&stored, article.ID).Error)
	assert.Equal(t, 1, stored.VoteCount)
	assert.Equal(t, float64(5), stored.AverageRating)
}
