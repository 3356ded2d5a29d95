package services

import (
	"context"

	"github.com/chargewatch/pricetrack/internal/core/domain"
	"github.com/chargewatch/pricetrack/internal/dto"
)

// PricingLedgerReaderSvc defines read operations on the versioned price history.
type PricingLedgerReaderSvc interface {
	// GetCurrentPricing retrieves the active fact for the key.
	// Returns apperrors.ErrNotFound when no current fact exists.
	GetCurrentPricing(ctx context.Context, key domain.PlanKey) (*domain.PricingFact, error)

	// GetPricingHistory retrieves all versions for the key, ordered by version.
	GetPricingHistory(ctx context.Context, key domain.PlanKey) ([]domain.PricingFact, error)
}

// PricingLedgerWriterSvc defines write operations on the versioned price history.
type PricingLedgerWriterSvc interface {
	// InsertPricing persists the first version for a key. The caller guarantees
	// no current fact exists, typically by inserting after GetCurrentPricing
	// returned ErrNotFound.
	InsertPricing(ctx context.Context, fact domain.PricingFact) (*domain.PricingFact, error)

	// UpdatePricing compares the observation against the current fact and
	// archives-and-appends on a real change. The result reports whether a new
	// version was written, the observation was unchanged, or no current fact
	// existed for the key.
	UpdatePricing(ctx context.Context, fact domain.PricingFact) (*domain.UpdateResult, error)

	// RetirePlan archives every current fact for (provider, planName) across
	// all countries and returns the number archived.
	RetirePlan(ctx context.Context, provider, planName string) (int64, error)
}

// PricingLedgerSvcFacade combines all ledger service interfaces.
type PricingLedgerSvcFacade interface {
	PricingLedgerReaderSvc
	PricingLedgerWriterSvc
}

// IngestionSvcFacade processes one collector batch: parse each plan card,
// assemble a candidate fact and run it through the ledger, isolating per-plan
// failures.
type IngestionSvcFacade interface {
	IngestObservations(ctx context.Context, req dto.ObservationBatchRequest) (*dto.ObservationBatchResponse, error)
}
