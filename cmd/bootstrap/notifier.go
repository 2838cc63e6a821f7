package bootstrap

import (
	"log/slog"

	"storefront-api/internal/infra/notifier"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/usecase"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotificationDispatcher,
	),
)

func NewNotificationDispatcher(cfg config.Config) usecase.NotificationDispatcher {
	if !cfg.Mail.Enabled {
		slog.Info("mail disabled, notifications will be logged only")
		return notifier.NewLogDispatcher()
	}
	return notifier.NewMailDispatcher(cfg.Mail)
}
