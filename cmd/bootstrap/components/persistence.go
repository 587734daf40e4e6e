package components

import (
	"vet-scheduler/internal/infra/readstore"
	sqlc "vet-scheduler/internal/infra/sqlc/generated"
	"vet-scheduler/internal/infra/uow"
	"vet-scheduler/internal/pkg/clock"
	"vet-scheduler/internal/usecase/queries"
	"vet-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Appointment views
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentViewQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentViewRepo)),
		),
	),
)

// The unit of work builds the write-side repositories and the catalog reads
// per transaction, so they are not provided separately.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, clk clock.Clock) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, q, clk)
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
