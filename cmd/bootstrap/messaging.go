package bootstrap

import (
	"context"
	"log/slog"

	"trainer-booking/internal/infra/gateway"
	"trainer-booking/internal/infra/mq"
	"trainer-booking/internal/pkg/config"
	"trainer-booking/internal/usecase/commands"
	"trainer-booking/internal/worker"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
		NewRefundGateway,
	),
)

// NewEventPublisher connects to RabbitMQ only when the outbox dispatcher runs.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (worker.EventPublisher, error) {
	if !cfg.Worker.OutboxEnabled {
		return mq.LogPublisher{}, nil
	}
	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, err
	}
	logger.Info("rabbitmq publisher ready", "exchange", cfg.MQ.Exchange)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewRefundGateway(cfg config.Config, logger *slog.Logger) (commands.RefundGateway, error) {
	switch cfg.Payment.Gateway {
	case "omise":
		client, err := gateway.NewOmiseClient(cfg.Payment.PublicKey, cfg.Payment.SecretKey)
		if err != nil {
			return nil, err
		}
		logger.Info("omise refund gateway configured")
		return gateway.NewOmiseRefunds(client), nil
	default:
		return gateway.Noop{}, nil
	}
}
