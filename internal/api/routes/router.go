package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/report-hub/internal/api/handlers"
	"github.com/linskybing/report-hub/internal/api/middleware"
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/notify"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/pkg/response"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos, svc *application.Services, hub *notify.Hub) {
	h := handlers.New(svc, hub)

	r.GET("/healthz", health(repos))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/reports", h.Events.Stream)

		projectTypes := auth.Group("/project-types")
		{
			projectTypes.GET("", h.ProjectType.List)
			projectTypes.GET("/:id", h.ProjectType.Get)
			projectTypes.POST("", middleware.Admin(), h.ProjectType.Create)
			projectTypes.PUT("/:id", middleware.Admin(), h.ProjectType.Update)
			projectTypes.DELETE("/:id", middleware.Admin(), h.ProjectType.Delete)
		}

		auth.GET("/projects/:id", h.Project.GetProjectByID)

		templates := auth.Group("/report-templates")
		{
			templates.GET("", h.Template.List)
			templates.GET("/:id", h.Template.Get)
			templates.GET("/:id/export", middleware.Admin(), h.Template.Export)
			templates.POST("", middleware.Admin(), h.Template.Create)
			templates.PUT("/:id", middleware.Admin(), h.Template.Update)
			templates.DELETE("/:id", middleware.Admin(), h.Template.Delete)
		}

		reports := auth.Group("/reports")
		{
			reports.POST("", h.Submission.Create)
			reports.GET("", h.Submission.List)
			reports.GET("/statistics", h.Submission.Statistics)
			reports.GET("/project/:projectId", h.Submission.ListByProject)
			reports.GET("/project/:projectId/status/:status", h.Submission.ListByProjectAndStatus)
			reports.GET("/status/:status", h.Submission.ListByStatus)
			reports.GET("/:id", h.Submission.Get)
			reports.PATCH("/:id", h.Submission.Update)
			reports.DELETE("/:id", h.Submission.Delete)
			reports.PUT("/:id/submit", h.Submission.Submit)
			reports.PUT("/:id/approve", middleware.Admin(), h.Submission.Approve)
			reports.PUT("/:id/reject", middleware.Admin(), h.Submission.Reject)
			reports.GET("/:id/history", h.Submission.History)
			reports.POST("/:id/images", h.Image.Upload)
		}

		auth.GET("/audit/logs", middleware.Admin(), h.Audit.GetAuditLogs)
	}
}

func health(repos *repository.Repos) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := repos.DB().DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, response.MessageResponse{Message: "ok"})
	}
}
