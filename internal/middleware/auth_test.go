package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learnify_backend/internal/config"
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupGateRouter(t *testing.T) (*gin.Engine, *config.Config, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour

	router := gin.New()
	router.Use(AuthGate(cfg, repository.NewUserRepository(db)))
	router.GET("/open", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, claims.Username)
	})
	router.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "in")
	})
	router.GET("/admin", RequireRoles(model.Admin), func(c *gin.Context) {
		c.String(http.StatusOK, "admin in")
	})

	return router, cfg, db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
		Active:   true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func get(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGateLetsAnonymousThrough(t *testing.T) {
	router, _, _ := setupGateRouter(t)

	w := get(router, "/open", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestGateIgnoresInvalidToken(t *testing.T) {
	router, _, _ := setupGateRouter(t)

	// The gate never rejects; a bad token just leaves the request
	// unauthenticated.
	w := get(router, "/open", "garbage.token.here")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	w = get(router, "/protected", "garbage.token.here")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateAttachesClaims(t *testing.T) {
	router, cfg, db := setupGateRouter(t)
	user := seedUser(t, db, "alice", model.Student)

	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	w := get(router, "/open", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())

	w = get(router, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	router, _, _ := setupGateRouter(t)

	w := get(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesEnforced(t *testing.T) {
	router, cfg, db := setupGateRouter(t)

	student := seedUser(t, db, "student", model.Student)
	admin := seedUser(t, db, "admin", model.Admin)

	studentToken, err := util.GenerateJWT(student, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)
	adminToken, err := util.GenerateJWT(admin, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	w := get(router, "/admin", studentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = get(router, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGateSkipsDeactivatedUser(t *testing.T) {
	router, cfg, db := setupGateRouter(t)

	user := seedUser(t, db, "alice", model.Student)
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).Update("active", false).Error)

	w := get(router, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
