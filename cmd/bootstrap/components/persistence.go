package components

import (
	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/readstore"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Write side
		repository.NewBookingRepository,
		repository.NewServiceReads,
		repository.NewStaffRepository,
		// Read side
		readstore.NewBookingReadStore,
		readstore.NewAvailabilityReadStore,
		readstore.NewServiceReadStore,
		readstore.NewStaffReadStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
