package pgsql

import (
	portsrepo "github.com/chargewatch/pricetrack/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PricingFactRepo: newPgxPricingFactRepository(dbPool),
	}
}
