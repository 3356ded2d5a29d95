package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chargewatch/pricetrack/internal/apperrors"
	"github.com/chargewatch/pricetrack/internal/core/domain"
	portssvc "github.com/chargewatch/pricetrack/internal/core/ports/services"
	"github.com/chargewatch/pricetrack/internal/dto"
	"github.com/chargewatch/pricetrack/internal/utils/moneytext"
)

// IngestionService turns one collector batch into ledger writes. Each plan
// card is parsed and recorded independently; a bad card is reported in the
// batch response and must not abort the remaining plans in the run.
type IngestionService struct {
	BaseService
	ledger     portssvc.PricingLedgerSvcFacade
	currencies domain.CurrencyCountryMap
}

var _ portssvc.IngestionSvcFacade = (*IngestionService)(nil)

// NewIngestionService creates a new IngestionService.
func NewIngestionService(ledger portssvc.PricingLedgerSvcFacade, currencies domain.CurrencyCountryMap) *IngestionService {
	return &IngestionService{ledger: ledger, currencies: currencies}
}

// IngestObservations processes all plan cards of one (country, provider)
// batch. For each card: parse the price texts, assemble a candidate fact and
// run the get-current / insert-or-update pattern against the ledger.
func (s *IngestionService) IngestObservations(ctx context.Context, req dto.ObservationBatchRequest) (*dto.ObservationBatchResponse, error) {
	res := &dto.ObservationBatchResponse{Country: req.Country, Provider: req.Provider}

	for _, card := range req.Plans {
		if err := s.ingestPlan(ctx, req.Country, req.Provider, card, res); err != nil {
			s.LogError(ctx, err, "Skipping plan observation",
				slog.String("country", req.Country),
				slog.String("provider", req.Provider),
				slog.String("plan_name", card.PlanName))
			res.Failures = append(res.Failures, dto.PlanFailure{PlanName: card.PlanName, Reason: err.Error()})
		}
	}

	s.LogInfo(ctx, "Processed observation batch",
		slog.String("country", req.Country),
		slog.String("provider", req.Provider),
		slog.Int("inserted", res.Inserted),
		slog.Int("updated", res.Updated),
		slog.Int("unchanged", res.Unchanged),
		slog.Int("failed", len(res.Failures)))
	return res, nil
}

func (s *IngestionService) ingestPlan(ctx context.Context, country, provider string, card dto.PlanObservation, res *dto.ObservationBatchResponse) error {
	fact, err := s.buildCandidateFact(ctx, country, provider, card)
	if err != nil {
		return err
	}

	_, err = s.ledger.GetCurrentPricing(ctx, fact.Key())
	switch {
	case err == nil:
		result, uerr := s.ledger.UpdatePricing(ctx, *fact)
		if uerr != nil {
			return uerr
		}
		switch result.Outcome {
		case domain.UpdateOutcomeNewVersion:
			res.Updated++
		case domain.UpdateOutcomeUnchanged:
			res.Unchanged++
		case domain.UpdateOutcomeNoCurrent:
			// The current fact vanished between the read and the update,
			// e.g. an admin retired the plan mid-batch. Recoverable.
			return fmt.Errorf("current pricing for %s disappeared during batch", fact.Key())
		}
	case errors.Is(err, apperrors.ErrNotFound):
		if _, ierr := s.ledger.InsertPricing(ctx, *fact); ierr != nil {
			return ierr
		}
		res.Inserted++
	default:
		return err
	}
	return nil
}

// buildCandidateFact parses the card's raw texts into a validated fact with
// the ledger-owned fields left for insert/update to fill in.
func (s *IngestionService) buildCandidateFact(ctx context.Context, country, provider string, card dto.PlanObservation) (*domain.PricingFact, error) {
	price, err := moneytext.ParseMoney(card.PriceText)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Parsed plan price",
		slog.String("plan_name", card.PlanName),
		slog.String("price", price.String()))

	var terms domain.SubscriptionTerms
	if card.SubscriptionAmount != "" {
		terms, err = moneytext.ParseSubscription(card.SubscriptionAmount, card.SubscriptionPeriod)
		if err != nil {
			return nil, err
		}
	}

	return domain.NewPricingFact(country, price.Currency, provider, card.PlanName, price.Amount, terms, s.currencies)
}
