package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slot-booking/internal/handler/api"
	"slot-booking/internal/handler/middleware"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Slots        *api.SlotHandler
	Bookings     *api.BookingHandler
	ServiceTypes *api.ServiceTypeHandler
	Users        *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, cfg, m, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(m))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.RateLimit(cfg.RateLimit))
	{
		addRoutes(apiGroup.Group("/users"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Users.Register},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Users.Get},
		})

		addRoutes(apiGroup.Group("/service-types"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.ServiceTypes.List},
			{Method: http.MethodPost, Path: "", Handler: h.ServiceTypes.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.ServiceTypes.Get},
		})

		addRoutes(apiGroup.Group("/slots"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Slots.List},
			{Method: http.MethodPost, Path: "", Handler: h.Slots.Create},
			{Method: http.MethodPost, Path: "/bulk", Handler: h.Slots.BulkCreate},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Slots.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Slots.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Slots.Delete},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Bookings.UpdateStatus},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Bookings.Delete},
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

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
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
