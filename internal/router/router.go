package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"billrecon/internal/config"
	"billrecon/internal/handler"
	"billrecon/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	log *logrus.Logger,
	sessionH *handler.SessionHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Multipart parts above this spill to disk; the service enforces the hard limit.
	r.MaxMultipartMemory = cfg.Upload.MaxBytes()

	r.GET("/healthz", healthH.Liveness)
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	v1 := r.Group("/api/v1")

	sessions := v1.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.GET("/:id", sessionH.Get)
	sessions.DELETE("/:id", sessionH.Delete)
	sessions.POST("/:id/reset", sessionH.Reset)

	// Uploads replace one side of the dataset and re-merge.
	sessions.POST("/:id/customer-master", sessionH.UploadCustomerMaster)
	sessions.POST("/:id/invoice-data", sessionH.UploadInvoiceData)

	sessions.GET("/:id/merged", sessionH.Merged)
	sessions.GET("/:id/merged.csv", sessionH.MergedCSV)
	sessions.GET("/:id/summary", sessionH.Summary)
	sessions.GET("/:id/summary.xlsx", sessionH.SummaryWorkbook)
	sessions.GET("/:id/documents", sessionH.Documents)
	sessions.GET("/:id/documents/:sap/:subtype", sessionH.DocumentValues)

	return r
}
