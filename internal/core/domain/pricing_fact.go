package domain

import (
	"fmt"
	"time"

	"github.com/chargewatch/pricetrack/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PlanKey identifies one pricing history stream. Concurrent plans of the same
// provider in the same country are distinguished by plan name.
type PlanKey struct {
	Country  string `json:"country"`
	Provider string `json:"provider"`
	PlanName string `json:"planName"`
}

func (k PlanKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Country, k.Provider, k.PlanName)
}

// PricingFact is one versioned price point for a plan key. For any key at most
// one fact has a nil ValidTo (the current fact); all others are historical with
// contiguous, non-overlapping [ValidFrom, ValidTo) intervals ordered by
// strictly increasing Version.
type PricingFact struct {
	FactID      string           `json:"factID"`
	Country     string           `json:"country"`
	Currency    string           `json:"currency"`
	Provider    string           `json:"provider"`
	PlanName    string           `json:"planName"`
	PricePerKwh decimal.Decimal  `json:"pricePerKwh"`
	MonthlyFee  *decimal.Decimal `json:"monthlySubscriptionFee,omitempty"`
	YearlyFee   *decimal.Decimal `json:"yearlySubscriptionFee,omitempty"`
	Version     int64            `json:"version"`
	ValidFrom   time.Time        `json:"validFrom"`
	ValidTo     *time.Time       `json:"validTo,omitempty"`
}

// NewPricingFact assembles a candidate fact from observed values and validates
// it against the currency map. The ledger fills in FactID, Version and the
// validity interval on insert/update.
func NewPricingFact(country, currency, provider, planName string, pricePerKwh decimal.Decimal, terms SubscriptionTerms, currencies CurrencyCountryMap) (*PricingFact, error) {
	fact := &PricingFact{
		Country:     country,
		Currency:    currency,
		Provider:    provider,
		PlanName:    planName,
		PricePerKwh: pricePerKwh,
		MonthlyFee:  terms.MonthlyFee,
		YearlyFee:   terms.YearlyFee,
		Version:     1,
	}
	if err := fact.Validate(currencies); err != nil {
		return nil, err
	}
	return fact, nil
}

// Validate checks the data-model invariants. It is applied both to candidate
// facts before writes and to stored rows after decoding, where a failure is a
// data-integrity signal rather than a normal control-flow path.
func (f *PricingFact) Validate(currencies CurrencyCountryMap) error {
	if len(f.Country) < 2 {
		return fmt.Errorf("%w: country must be at least 2 characters", apperrors.ErrValidation)
	}
	if n := len([]rune(f.Currency)); n < 1 || n > 3 {
		return fmt.Errorf("%w: currency must be 1-3 characters", apperrors.ErrValidation)
	}
	if f.Provider == "" {
		return fmt.Errorf("%w: provider is required", apperrors.ErrValidation)
	}
	if f.PlanName == "" {
		return fmt.Errorf("%w: plan name is required", apperrors.ErrValidation)
	}
	if !f.PricePerKwh.IsPositive() {
		return fmt.Errorf("%w: price per kWh must be greater than 0", apperrors.ErrValidation)
	}
	if f.MonthlyFee != nil && f.MonthlyFee.IsNegative() {
		return fmt.Errorf("%w: monthly subscription fee must not be negative", apperrors.ErrValidation)
	}
	if f.YearlyFee != nil && f.YearlyFee.IsNegative() {
		return fmt.Errorf("%w: yearly subscription fee must not be negative", apperrors.ErrValidation)
	}
	if f.MonthlyFee != nil && f.YearlyFee != nil {
		return fmt.Errorf("%w: a plan bills monthly or yearly, not both", apperrors.ErrValidation)
	}
	if f.Version < 1 {
		return fmt.Errorf("%w: version must be at least 1", apperrors.ErrValidation)
	}
	if !currencies.Allows(f.Currency, f.Country) {
		return fmt.Errorf("%w: currency %s not valid for %s", apperrors.ErrValidation, f.Currency, f.Country)
	}
	return nil
}

// Key returns the natural key of the fact.
func (f PricingFact) Key() PlanKey {
	return PlanKey{Country: f.Country, Provider: f.Provider, PlanName: f.PlanName}
}

// IsCurrent reports whether the fact is the active version for its key.
func (f *PricingFact) IsCurrent() bool {
	return f.ValidTo == nil
}

// EconomicallyEqual compares the economically meaningful fields and ignores
// FactID, Version and the validity interval. Re-observing the same price any
// number of times must produce exactly one stored version.
func (f *PricingFact) EconomicallyEqual(other *PricingFact) bool {
	return f.Country == other.Country &&
		f.Currency == other.Currency &&
		f.Provider == other.Provider &&
		f.PlanName == other.PlanName &&
		f.PricePerKwh.Equal(other.PricePerKwh) &&
		decimalPtrEqual(f.MonthlyFee, other.MonthlyFee) &&
		decimalPtrEqual(f.YearlyFee, other.YearlyFee)
}

func decimalPtrEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// UpdateOutcome describes what an update call did for a key.
type UpdateOutcome string

const (
	// UpdateOutcomeNoCurrent means no current fact existed for the key; the
	// call was a no-op. This is a recoverable condition, not an error.
	UpdateOutcomeNoCurrent UpdateOutcome = "no_current_fact"
	// UpdateOutcomeUnchanged means the observation matched the current fact;
	// nothing was written.
	UpdateOutcomeUnchanged UpdateOutcome = "unchanged"
	// UpdateOutcomeNewVersion means the current fact was archived and a
	// successor version inserted.
	UpdateOutcomeNewVersion UpdateOutcome = "new_version"
)

// UpdateResult reports the outcome of an update. Fact is the current fact
// after the call, nil when the outcome is UpdateOutcomeNoCurrent.
type UpdateResult struct {
	Outcome UpdateOutcome `json:"outcome"`
	Fact    *PricingFact  `json:"fact,omitempty"`
}
