package app

import (
	"learnify_backend/internal/config"
	"learnify_backend/internal/middleware"
	"learnify_backend/internal/model"
	"learnify_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())

	// The gate resolves tokens on every request but never rejects; the
	// RequireAuth/RequireRoles middlewares below do the rejecting.
	router.Use(middleware.AuthGate(cfg, repos.user))

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
		}

		users := api.Group("/users", middleware.RequireAuth())
		{
			users.GET("/me", c.user.Me)
			users.PUT("/me", c.user.UpdateMe)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", c.course.List)
			courses.GET("/:id", c.course.Get)
			courses.GET("/:id/lessons", c.lesson.ListByCourse)

			staff := courses.Group("", middleware.RequireRoles(model.Instructor))
			{
				staff.POST("", c.course.Create)
				staff.PUT("/:id", c.course.Update)
				staff.DELETE("/:id", c.course.Delete)
				staff.POST("/:id/lessons", c.lesson.Create)
			}
		}

		lessons := api.Group("/lessons")
		{
			lessons.GET("/:id/resources", c.lesson.ListResources)

			staff := lessons.Group("", middleware.RequireRoles(model.Instructor))
			{
				staff.PUT("/:id", c.lesson.Update)
				staff.DELETE("/:id", c.lesson.Delete)
				staff.POST("/:id/resources", c.lesson.CreateResource)
			}
		}

		resources := api.Group("/resources", middleware.RequireRoles(model.Instructor))
		{
			resources.PUT("/:id", c.lesson.UpdateResource)
			resources.DELETE("/:id", c.lesson.DeleteResource)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", c.article.List)
			articles.GET("/:id", c.article.Get)
			articles.GET("/:id/comments", c.article.ListComments)

			authed := articles.Group("", middleware.RequireAuth())
			{
				authed.POST("", c.article.Create)
				authed.PUT("/:id", c.article.Update)
				authed.DELETE("/:id", c.article.Delete)
				authed.POST("/:id/comments", c.article.CreateComment)
				authed.POST("/:id/rate", c.article.Rate)
			}
		}

		comments := api.Group("/comments")
		{
			comments.GET("/:id/replies", c.comment.Replies)
			comments.DELETE("/:id", middleware.RequireAuth(), c.comment.Delete)
		}

		pdfs := api.Group("/pdfs")
		{
			pdfs.GET("", c.pdf.List)
			pdfs.GET("/:id", c.pdf.Get)
			pdfs.GET("/:id/file", c.pdf.Download)

			authed := pdfs.Group("", middleware.RequireAuth())
			{
				authed.POST("", c.pdf.Upload)
				authed.POST("/:id/report", c.pdf.Report)
				authed.POST("/:id/rate", c.pdf.Rate)
			}
		}

		api.GET("/search", c.search.Search)

		projects := api.Group("/projects")
		{
			projects.GET("", c.idea.List)
			projects.POST("/suggest", c.idea.Suggest)
			projects.GET("/:id", c.idea.Get)

			admin := projects.Group("", middleware.RequireRoles(model.Admin))
			{
				admin.POST("", c.idea.Create)
				admin.POST("/import", c.idea.ImportFromGitHub)
			}
		}

		admin := api.Group("/admin", middleware.RequireRoles(model.Admin))
		{
			admin.GET("/dashboard", c.admin.Dashboard)
			admin.POST("/pdfs/:id/approve", c.admin.ApprovePdf)
			admin.POST("/pdfs/:id/reject", c.admin.RejectPdf)
			admin.PUT("/users/:id/role", c.admin.UpdateUserRole)
			admin.PUT("/users/:id/active", c.admin.SetUserActive)
			admin.DELETE("/users/:id", c.admin.DeleteUser)
			admin.DELETE("/courses/:id", c.admin.DeleteCourse)
		}
	}
}
