package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/chargewatch/pricetrack/internal/apperrors"
	"github.com/chargewatch/pricetrack/internal/core/domain"
	"github.com/chargewatch/pricetrack/internal/core/services"
	"github.com/chargewatch/pricetrack/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFactRepository is an in-memory stand-in for the Postgres repository,
// used to exercise full insert/update sequences against the real service
// logic without a database.
type memFactRepository struct {
	mu   sync.Mutex
	rows []models.PricingFact
}

func (r *memFactRepository) FindCurrentFact(_ context.Context, key domain.PlanKey) (*models.PricingFact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		row := r.rows[i]
		if row.Country == key.Country && row.Provider == key.Provider && row.PlanName == key.PlanName && row.ValidTo == nil {
			copied := row
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memFactRepository) FindFactHistory(_ context.Context, key domain.PlanKey) ([]models.PricingFact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var history []models.PricingFact
	for _, row := range r.rows {
		if row.Country == key.Country && row.Provider == key.Provider && row.PlanName == key.PlanName {
			history = append(history, row)
		}
	}
	return history, nil
}

func (r *memFactRepository) InsertFact(_ context.Context, fact models.PricingFact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, fact)
	return nil
}

func (r *memFactRepository) ArchiveFact(_ context.Context, factID string, validTo time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].FactID == factID && r.rows[i].ValidTo == nil {
			ts := validTo
			r.rows[i].ValidTo = &ts
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memFactRepository) ArchiveCurrentByPlan(_ context.Context, provider, planName string, validTo time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var modified int64
	for i := range r.rows {
		if r.rows[i].Provider == provider && r.rows[i].PlanName == planName && r.rows[i].ValidTo == nil {
			ts := validTo
			r.rows[i].ValidTo = &ts
			modified++
		}
	}
	return modified, nil
}

// steppingClock advances one hour per observation run, mimicking daily
// scrape runs landing in distinct version boundaries.
type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time { return c.now }
func (c *steppingClock) Step()          { c.now = c.now.Add(time.Hour) }

func newLedgerOverMemory(t *testing.T) (*services.PricingLedgerService, *steppingClock) {
	t.Helper()
	clock := &steppingClock{now: time.Date(2024, 5, 6, 8, 15, 0, 0, time.UTC)}
	ledger := services.NewPricingLedgerService(
		&memFactRepository{},
		domain.DefaultCurrencyCountryMap(),
		services.WithClock(clock.Now),
	)
	return ledger, clock
}

func combiFact(price string) domain.PricingFact {
	return domain.PricingFact{
		Country:     "Germany",
		Currency:    "€",
		Provider:    "Ionity",
		PlanName:    "Combi",
		PricePerKwh: decimal.RequireFromString(price),
		Version:     1,
	}
}

func TestLedgerEndToEndPriceChange(t *testing.T) {
	ctx := context.Background()
	ledger, clock := newLedgerOverMemory(t)
	key := combiFact("0.35").Key()

	_, err := ledger.InsertPricing(ctx, combiFact("0.35"))
	require.NoError(t, err)

	clock.Step()
	result, err := ledger.UpdatePricing(ctx, combiFact("0.39"))
	require.NoError(t, err)
	assert.Equal(t, domain.UpdateOutcomeNewVersion, result.Outcome)

	current, err := ledger.GetCurrentPricing(ctx, key)
	require.NoError(t, err)
	assert.True(t, current.PricePerKwh.Equal(decimal.RequireFromString("0.39")))
	assert.Equal(t, int64(2), current.Version)

	history, err := ledger.GetPricingHistory(ctx, key)
	require.NoError(t, err)
	require.Len(t, history, 2)

	archived := history[0]
	assert.True(t, archived.PricePerKwh.Equal(decimal.RequireFromString("0.35")))
	require.NotNil(t, archived.ValidTo, "superseded version must be archived")
}

func TestLedgerUpdateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ledger, clock := newLedgerOverMemory(t)
	key := combiFact("0.30").Key()

	_, err := ledger.InsertPricing(ctx, combiFact("0.30"))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		clock.Step()
		result, err := ledger.UpdatePricing(ctx, combiFact("0.30"))
		require.NoError(t, err)
		assert.Equal(t, domain.UpdateOutcomeUnchanged, result.Outcome)
	}

	history, err := ledger.GetPricingHistory(ctx, key)
	require.NoError(t, err)
	assert.Len(t, history, 1, "re-observing the same price must not grow history")
	assert.Equal(t, int64(1), history[0].Version)
}

func TestLedgerVersionsAreMonotonicAndIntervalsContiguous(t *testing.T) {
	ctx := context.Background()
	ledger, clock := newLedgerOverMemory(t)
	key := combiFact("0.30").Key()

	_, err := ledger.InsertPricing(ctx, combiFact("0.30"))
	require.NoError(t, err)

	prices := []string{"0.32", "0.32", "0.35", "0.31", "0.31", "0.44"}
	for _, p := range prices {
		clock.Step()
		_, err := ledger.UpdatePricing(ctx, combiFact(p))
		require.NoError(t, err)
	}

	history, err := ledger.GetPricingHistory(ctx, key)
	require.NoError(t, err)
	require.Len(t, history, 5, "only real changes create versions")

	currentCount := 0
	for i, fact := range history {
		assert.Equal(t, int64(i+1), fact.Version, "versions must be 1,2,3,... with no gaps")
		if fact.ValidTo == nil {
			currentCount++
		}
		if i > 0 {
			prev := history[i-1]
			require.NotNil(t, prev.ValidTo)
			assert.True(t, prev.ValidTo.Equal(fact.ValidFrom),
				"archived validTo must equal successor validFrom")
		}
	}
	assert.Equal(t, 1, currentCount, "exactly one current fact per key")
}

func TestLedgerRetirePlanLeavesNoCurrentFacts(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newLedgerOverMemory(t)

	german := combiFact("0.35")
	french := combiFact("0.36")
	french.Country = "France"

	_, err := ledger.InsertPricing(ctx, german)
	require.NoError(t, err)
	_, err = ledger.InsertPricing(ctx, french)
	require.NoError(t, err)

	archived, err := ledger.RetirePlan(ctx, "Ionity", "Combi")
	require.NoError(t, err)
	assert.Equal(t, int64(2), archived)

	_, err = ledger.GetCurrentPricing(ctx, german.Key())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = ledger.GetCurrentPricing(ctx, french.Key())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	history, err := ledger.GetPricingHistory(ctx, german.Key())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.NotNil(t, history[0].ValidTo)
}
