package components

import (
	"libris/internal/handler"
	"libris/internal/handler/api"
	"libris/internal/handler/middleware"
	"libris/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig {
			return cfg.Cookie
		},
		api.NewAuthHandler,
		api.NewBookHandler,
		api.NewReservationHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
