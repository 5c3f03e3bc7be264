package components

import (
	"halisaha-api/internal/pkg/clock"
	"halisaha-api/internal/pkg/jwt"
	"halisaha-api/internal/pkg/password"
	"halisaha-api/internal/usecase"
	"halisaha-api/internal/usecase/commands"
	"halisaha-api/internal/usecase/queries"
	"halisaha-api/internal/usecase/venuestate"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseVenueStateModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		password.NewHasher,
		fx.As(new(commands.PasswordHasher)),
	),
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseVenueStateModule = fx.Module("usecase/venuestate",
	fx.Provide(
		venuestate.NewSlotLedger,
		venuestate.NewRatingAggregator,
		venuestate.NewReconciler,
		func(l *venuestate.SlotLedger) commands.SlotLedger { return l },
		func(a *venuestate.RatingAggregator) commands.RatingRecomputer { return a },
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewVenueCommands,
		commands.NewReservationCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewVenueQueries,
		queries.NewReservationQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
