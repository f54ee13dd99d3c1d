package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sridharsing7570/resume-analyser/internal/resumes"
	"github.com/Sridharsing7570/resume-analyser/internal/services/health"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/config"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/metrics"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/server/middleware"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
	Health        *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
