package components

import (
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/infra/readstore"
	"halisaha-api/internal/infra/uow"
	"halisaha-api/internal/usecase/queries"
	"halisaha-api/internal/usecase/shared"

	"go.uber.org/fx"
)

// PersistenceModule expects *pgxpool.Pool, *pgstore.Queries and pgstore.DBTX from the db module.
// Write repositories are built per transaction by the unit of work.
var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	uowModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		func(q *pgstore.Queries) readstore.UserReadQueries { return q },
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Venue
		func(q *pgstore.Queries) readstore.VenueReadQueries { return q },
		fx.Annotate(
			readstore.NewVenueReadStore,
			fx.As(new(queries.VenueReadStore)),
		),
		// Reservation
		func(q *pgstore.Queries) readstore.ReservationViewQueries { return q },
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Review
		func(q *pgstore.Queries) readstore.ReviewReadQueries { return q },
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)
