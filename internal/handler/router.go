package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trainer-booking/internal/handler/api"
	"trainer-booking/internal/handler/middleware"
	"trainer-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Schedule *api.ScheduleHandler
	Booking  *api.BookingHandler
	History  *api.HistoryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	actor := middleware.RequireActor()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/sessions/validity", Handler: h.Schedule.Validity},
			{Method: http.MethodPut, Path: "/schedule/participants", Handler: h.Schedule.UpdateParticipants, Mw: []gin.HandlerFunc{actor}},
		})

		trainers := apiGroup.Group("/trainers/:id/schedule")
		addRoutes(trainers, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Schedule.GetSchedule},
			{Method: http.MethodPut, Path: "/slots", Handler: h.Schedule.PublishSlot, Mw: []gin.HandlerFunc{actor}},
			{Method: http.MethodDelete, Path: "/slots/:day/:time", Handler: h.Schedule.ResetSlot, Mw: []gin.HandlerFunc{actor}},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
		})
		bookingWrites := bookings.Group("")
		bookingWrites.Use(actor)
		addRoutes(bookingWrites, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Patch},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Clear},
			{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Booking.Accept},
			{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Booking.Pay},
			{Method: http.MethodPost, Path: "/:id/start", Handler: h.Booking.Start},
		})

		refunds := apiGroup.Group("/refunds")
		addRoutes(refunds, []route{
			{Method: http.MethodPost, Path: "", Handler: h.History.Drop, Mw: []gin.HandlerFunc{actor}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.History.GetRefund},
		})

		history := apiGroup.Group("/history")
		addRoutes(history, []route{
			{Method: http.MethodPost, Path: "/archive", Handler: h.History.Archive, Mw: []gin.HandlerFunc{actor}},
			{Method: http.MethodGet, Path: "", Handler: h.History.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.History.Get},
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
