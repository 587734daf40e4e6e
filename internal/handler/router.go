package handler

import (
	"context"
	"net/http"
	"time"

	"vet-scheduler/internal/domain/user"
	"vet-scheduler/internal/handler/api"
	"vet-scheduler/internal/handler/middleware"
	"vet-scheduler/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// ReadyCheck reports whether a dependency can serve traffic.
type ReadyCheck func(ctx context.Context) error

// Readiness lists the checks behind /ready, keyed by dependency name.
type Readiness map[string]ReadyCheck

type RouterParams struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	Logger             *middleware.Logger
	AppointmentHandler *api.AppointmentHandler
	CalendarHandler    *api.CalendarHandler
	AuthMiddleware     *middleware.AuthMiddleware
	RateLimiter        *middleware.RateLimiter
	Readiness          Readiness
	Gatherer           prometheus.Gatherer
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/ready", readyCheck(p.Readiness))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := p.AuthMiddleware
	appts := p.AppointmentHandler
	cal := p.CalendarHandler
	staff := auth.RequireRoleAtLeast(user.RoleStaff)
	admin := auth.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(auth.RequireAuth())
	{
		citas := apiGroup.Group("/citas")
		addRoutes(citas, []route{
			{Method: http.MethodPost, Path: "", Handler: appts.Create, Mw: []gin.HandlerFunc{p.RateLimiter.Limit()}},
			{Method: http.MethodGet, Path: "", Handler: appts.ListMine},
			{Method: http.MethodPatch, Path: "/:id/estado", Handler: appts.UpdateStatus, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodPut, Path: "/:id/estado", Handler: appts.UpdateStatus, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodDelete, Path: "/:id", Handler: appts.Delete, Mw: []gin.HandlerFunc{admin}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/calendario", Handler: cal.Mine},
		})

		clinicas := apiGroup.Group("/clinicas/:id")
		clinicas.Use(staff)
		addRoutes(clinicas, []route{
			{Method: http.MethodGet, Path: "/citas", Handler: appts.ListClinic},
			{Method: http.MethodGet, Path: "/calendario", Handler: cal.Clinic},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// @Summary Readiness check
// @Description Ping the database and the rate limiter's Redis
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /ready [get]
func readyCheck(checks Readiness) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				results[name] = err.Error()
				continue
			}
			results[name] = "ok"
		}

		state := "ready"
		if status != http.StatusOK {
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "checks": results})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
