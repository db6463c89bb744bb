package components

import (
	"wishkeeper/internal/handler"
	"wishkeeper/internal/handler/api"
	"wishkeeper/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewShareHandler,
		api.NewPurchaseHandler,
		api.NewListHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
