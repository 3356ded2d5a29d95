package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chargewatch/pricetrack/internal/apperrors"
	"github.com/chargewatch/pricetrack/internal/core/domain"
	portsrepo "github.com/chargewatch/pricetrack/internal/core/ports/repositories"
	portssvc "github.com/chargewatch/pricetrack/internal/core/ports/services"
	"github.com/chargewatch/pricetrack/internal/utils/mapping"
	"github.com/google/uuid"
)

// PricingLedgerService maintains the append-only, single-current-version price
// history per plan key. The read-compare-archive-insert sequence is not atomic;
// correctness assumes a single writer per key. The partial unique index on
// (country, provider, plan_name) WHERE valid_to IS NULL backstops that
// assumption, and the archive modified-count check converts a lost update into
// apperrors.ErrConcurrency instead of silent corruption.
type PricingLedgerService struct {
	BaseService
	factRepo   portsrepo.PricingFactRepositoryFacade
	currencies domain.CurrencyCountryMap
	now        func() time.Time
}

var _ portssvc.PricingLedgerSvcFacade = (*PricingLedgerService)(nil)

// LedgerOption configures a PricingLedgerService.
type LedgerOption func(*PricingLedgerService)

// WithClock overrides the time source, used by tests to pin version boundaries.
func WithClock(now func() time.Time) LedgerOption {
	return func(s *PricingLedgerService) {
		s.now = now
	}
}

// NewPricingLedgerService creates a new PricingLedgerService.
func NewPricingLedgerService(factRepo portsrepo.PricingFactRepositoryFacade, currencies domain.CurrencyCountryMap, opts ...LedgerOption) *PricingLedgerService {
	s := &PricingLedgerService{
		factRepo:   factRepo,
		currencies: currencies,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// versionBoundary is the timestamp written on archive and insert. Flooring to
// the hour aligns repeated observations within one scrape run onto a single
// version boundary, so the archived fact's end equals its successor's start.
func (s *PricingLedgerService) versionBoundary() time.Time {
	return s.now().UTC().Truncate(time.Hour)
}

// GetCurrentPricing retrieves the active fact for the key. A stored row that
// fails validation is a data-integrity signal and surfaces as ErrValidation.
func (s *PricingLedgerService) GetCurrentPricing(ctx context.Context, key domain.PlanKey) (*domain.PricingFact, error) {
	row, err := s.factRepo.FindCurrentFact(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get current pricing for %s: %w", key, err)
	}

	fact := mapping.ToDomainPricingFact(*row)
	if err := fact.Validate(s.currencies); err != nil {
		s.LogError(ctx, err, "Stored pricing fact failed validation", slog.String("fact_id", fact.FactID))
		return nil, fmt.Errorf("stored fact %s is invalid: %w", fact.FactID, err)
	}
	return &fact, nil
}

// GetPricingHistory retrieves all versions for the key ordered by version.
// Versions are monotonically increasing and gap-free by construction.
func (s *PricingLedgerService) GetPricingHistory(ctx context.Context, key domain.PlanKey) ([]domain.PricingFact, error) {
	rows, err := s.factRepo.FindFactHistory(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get pricing history for %s: %w", key, err)
	}
	return mapping.ToDomainPricingFactSlice(rows), nil
}

// InsertPricing persists the first version for a key with validFrom floored to
// the hour and an open validity interval. The caller guarantees no current
// fact exists for the key.
func (s *PricingLedgerService) InsertPricing(ctx context.Context, fact domain.PricingFact) (*domain.PricingFact, error) {
	if err := fact.Validate(s.currencies); err != nil {
		return nil, err
	}

	fact.FactID = uuid.NewString()
	fact.Version = 1
	fact.ValidFrom = s.versionBoundary()
	fact.ValidTo = nil

	if err := s.factRepo.InsertFact(ctx, mapping.ToModelPricingFact(fact)); err != nil {
		return nil, fmt.Errorf("failed to insert pricing for %s: %w", fact.Key(), err)
	}

	s.LogInfo(ctx, "Inserted first pricing version",
		slog.String("key", fact.Key().String()),
		slog.String("price_per_kwh", fact.PricePerKwh.String()))
	return &fact, nil
}

// UpdatePricing compares the observation against the current fact for its key.
// Equal observations are a no-op, which makes re-observation idempotent. On a
// real change the current fact is archived, then a successor with version+1 is
// inserted; both writes use the same floored timestamp so the intervals meet
// exactly. A missing current fact is reported as a soft outcome, not an error.
func (s *PricingLedgerService) UpdatePricing(ctx context.Context, fact domain.PricingFact) (*domain.UpdateResult, error) {
	if err := fact.Validate(s.currencies); err != nil {
		return nil, err
	}

	current, err := s.GetCurrentPricing(ctx, fact.Key())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "No active pricing found for key, nothing to update", slog.String("key", fact.Key().String()))
			return &domain.UpdateResult{Outcome: domain.UpdateOutcomeNoCurrent}, nil
		}
		return nil, err
	}

	if current.EconomicallyEqual(&fact) {
		s.LogDebug(ctx, "No pricing changes detected", slog.String("key", fact.Key().String()))
		return &domain.UpdateResult{Outcome: domain.UpdateOutcomeUnchanged, Fact: current}, nil
	}

	boundary := s.versionBoundary()

	modified, err := s.factRepo.ArchiveFact(ctx, current.FactID, boundary)
	if err != nil {
		return nil, fmt.Errorf("failed to archive fact %s: %w", current.FactID, err)
	}
	if modified == 0 {
		return nil, fmt.Errorf("%w: fact %s was already archived", apperrors.ErrConcurrency, current.FactID)
	}

	fact.FactID = uuid.NewString()
	fact.Version = current.Version + 1
	fact.ValidFrom = boundary
	fact.ValidTo = nil

	if err := s.factRepo.InsertFact(ctx, mapping.ToModelPricingFact(fact)); err != nil {
		return nil, fmt.Errorf("failed to insert pricing version %d for %s: %w", fact.Version, fact.Key(), err)
	}

	s.LogInfo(ctx, "Archived pricing and inserted new version",
		slog.String("key", fact.Key().String()),
		slog.Int64("version", fact.Version),
		slog.String("price_per_kwh", fact.PricePerKwh.String()))
	return &domain.UpdateResult{Outcome: domain.UpdateOutcomeNewVersion, Fact: &fact}, nil
}

// RetirePlan archives every current fact for (provider, planName) across all
// countries, used when a provider discontinues a plan line.
func (s *PricingLedgerService) RetirePlan(ctx context.Context, provider, planName string) (int64, error) {
	if provider == "" || planName == "" {
		return 0, fmt.Errorf("%w: provider and plan name are required", apperrors.ErrValidation)
	}

	archived, err := s.factRepo.ArchiveCurrentByPlan(ctx, provider, planName, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to retire plan %s/%s: %w", provider, planName, err)
	}

	s.LogInfo(ctx, "Retired pricing plan",
		slog.String("provider", provider),
		slog.String("plan_name", planName),
		slog.Int64("archived", archived))
	return archived, nil
}
