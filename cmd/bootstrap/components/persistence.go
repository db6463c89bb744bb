package components

import (
	"wishkeeper/internal/infra/db"
	"wishkeeper/internal/infra/readstore"
	"wishkeeper/internal/infra/uow"
	"wishkeeper/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side: repositories are handed out lazily per transaction by
		// the unit of work.
		uow.NewPostgresUoW,
		// Read side: pool-bound view stores.
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			readstore.NewShareReadStore,
			fx.As(new(queries.ShareReadStore)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
