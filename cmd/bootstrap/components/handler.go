package components

import (
	"halisaha-api/internal/handler"
	"halisaha-api/internal/handler/api"
	"halisaha-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewVenueHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
