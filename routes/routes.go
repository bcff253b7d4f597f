package routes

import (
	"net/http"
	"time"

	"servyadmin/handlers"
	"servyadmin/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the per-area handlers so route registration takes
// a single argument.
type HandlerBundle struct {
	Dashboard    *handlers.DashboardHandler
	Directory    *handlers.DirectoryHandler
	Verification *handlers.VerificationHandler
	Reports      *handlers.ReportHandler
}

// RegisterDashboardRoutes registers the overview endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.GET("/overview", hb.Dashboard.OverviewHandler)
	}
}

// RegisterDirectoryRoutes registers the provider directory endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("", hb.Directory.ListProvidersHandler)
		api.GET("/:id/details", hb.Directory.ProviderDetailsHandler)
	}
}

// RegisterVerificationRoutes registers the application moderation endpoints.
func RegisterVerificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/verification")
	{
		api.GET("/pending", hb.Verification.PendingHandler)
		api.GET("/counts", hb.Verification.CountsHandler)
		api.PUT("/:id/approve", hb.Verification.ApproveHandler)
		api.PUT("/:id/reject", hb.Verification.RejectHandler)
	}
}

// RegisterReportRoutes registers the report inspection endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.GET("", hb.Reports.ListReportsHandler)
		api.PUT("/:id/status", hb.Reports.UpdateStatusHandler)
		api.GET("/:id/video", hb.Reports.VideoHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"backend": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDashboardRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterVerificationRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterHealthRoute(r)
}
