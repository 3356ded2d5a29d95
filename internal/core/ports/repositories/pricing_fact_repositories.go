package repositories

import (
	"context"
	"time"

	"github.com/chargewatch/pricetrack/internal/core/domain"
	"github.com/chargewatch/pricetrack/internal/models"
)

// PricingFactReader defines read operations for versioned pricing facts.
type PricingFactReader interface {
	// FindCurrentFact retrieves the fact for the key with a null valid_to.
	// Returns apperrors.ErrNotFound when no current fact exists.
	FindCurrentFact(ctx context.Context, key domain.PlanKey) (*models.PricingFact, error)

	// FindFactHistory retrieves all versions for the key in storage order.
	FindFactHistory(ctx context.Context, key domain.PlanKey) ([]models.PricingFact, error)
}

// PricingFactWriter defines write operations for versioned pricing facts.
type PricingFactWriter interface {
	// InsertFact appends one row to the store.
	InsertFact(ctx context.Context, fact models.PricingFact) error

	// ArchiveFact sets valid_to on the identified row if it is still current
	// and returns the number of rows modified. Zero rows means another writer
	// archived it first.
	ArchiveFact(ctx context.Context, factID string, validTo time.Time) (int64, error)

	// ArchiveCurrentByPlan archives every current fact for (provider, planName)
	// across all countries and returns the number of rows modified. Used when a
	// provider retires a plan.
	ArchiveCurrentByPlan(ctx context.Context, provider, planName string, validTo time.Time) (int64, error)
}

// PricingFactRepositoryFacade combines all pricing-fact repository interfaces.
type PricingFactRepositoryFacade interface {
	PricingFactReader
	PricingFactWriter
}
