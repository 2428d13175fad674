package components

import (
	"trainer-booking/internal/handler"
	"trainer-booking/internal/handler/api"
	"trainer-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
		api.NewBookingHandler,
		api.NewHistoryHandler,
	),
	fx.Invoke(RegisterRoutes),
)

type routeParams struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Schedule *api.ScheduleHandler
	Booking  *api.BookingHandler
	History  *api.HistoryHandler
}

func RegisterRoutes(p routeParams) {
	handler.NewRouter(p.Engine, p.Config, handler.Handlers{
		Schedule: p.Schedule,
		Booking:  p.Booking,
		History:  p.History,
	})
}
