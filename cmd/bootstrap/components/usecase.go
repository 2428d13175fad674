package components

import (
	"trainer-booking/internal/pkg/clock"
	"trainer-booking/internal/pkg/config"
	"trainer-booking/internal/usecase/commands"
	"trainer-booking/internal/usecase/queries"
	"trainer-booking/internal/worker"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewRetryConfig,
		// Commands
		commands.NewScheduleUseCase,
		commands.NewBookingUseCase,
		commands.NewExpiryUseCase,
		commands.NewDropUseCase,
		commands.NewArchiveUseCase,
		// Queries
		queries.NewSessionValidator,
		queries.NewScheduleQueries,
		queries.NewHistoryQueries,
		NewExpiryObserver,
		queries.NewBookingQueries,
	),
)

func NewRetryConfig(cfg config.Config) commands.RetryConfig {
	rc := commands.DefaultRetryConfig()
	if cfg.Booking.WriteBackAttempts > 0 {
		rc.Attempts = cfg.Booking.WriteBackAttempts
	}
	if cfg.Booking.WriteBackDelay > 0 {
		rc.Delay = cfg.Booking.WriteBackDelay
	}
	return rc
}

type ObserverResult struct {
	fx.Out

	Observer *worker.ExpiryObserver
	Port     queries.ExpiryObserver
}

// NewExpiryObserver hands the same observer to the read path and to the worker that drains it.
func NewExpiryObserver(expiry commands.ExpiryCommands) ObserverResult {
	obs := worker.NewExpiryObserver(expiry, 256)
	return ObserverResult{Observer: obs, Port: obs}
}
