package domain_test

import (
	"testing"

	"github.com/chargewatch/pricetrack/internal/apperrors"
	"github.com/chargewatch/pricetrack/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFact() domain.PricingFact {
	return domain.PricingFact{
		Country:     "Germany",
		Currency:    "€",
		Provider:    "Ionity",
		PlanName:    "Passport",
		PricePerKwh: decimal.RequireFromString("0.35"),
		Version:     1,
	}
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNewPricingFactValid(t *testing.T) {
	fact, err := domain.NewPricingFact("Germany", "€", "Ionity", "Passport",
		decimal.RequireFromString("0.35"), domain.SubscriptionTerms{}, domain.DefaultCurrencyCountryMap())
	require.NoError(t, err)
	assert.Equal(t, int64(1), fact.Version)
	assert.True(t, fact.IsCurrent())
}

func TestNewPricingFactCurrencyCountryMismatch(t *testing.T) {
	_, err := domain.NewPricingFact("Switzerland", "€", "Ionity", "Passport",
		decimal.RequireFromString("0.35"), domain.SubscriptionTerms{}, domain.DefaultCurrencyCountryMap())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNewPricingFactUnknownCurrencyAllowsAnyCountry(t *testing.T) {
	// A currency absent from the map must not be over-restricted.
	_, err := domain.NewPricingFact("Germany", "XPF", "Ionity", "Passport",
		decimal.RequireFromString("0.35"), domain.SubscriptionTerms{}, domain.DefaultCurrencyCountryMap())
	assert.NoError(t, err)
}

func TestKeyIsCallableOnValues(t *testing.T) {
	// Key must work on a plain value, including the unaddressable return of a
	// constructor, since facts travel by value through the service layer.
	key := validFact().Key()
	assert.Equal(t, domain.PlanKey{Country: "Germany", Provider: "Ionity", PlanName: "Passport"}, key)
	assert.Equal(t, "Germany/Ionity/Passport", key.String())
}

func TestValidateRejectsBadFields(t *testing.T) {
	currencies := domain.DefaultCurrencyCountryMap()

	tests := []struct {
		name   string
		mutate func(*domain.PricingFact)
	}{
		{"short country", func(f *domain.PricingFact) { f.Country = "D" }},
		{"empty currency", func(f *domain.PricingFact) { f.Currency = "" }},
		{"long currency", func(f *domain.PricingFact) { f.Currency = "EURO" }},
		{"missing provider", func(f *domain.PricingFact) { f.Provider = "" }},
		{"missing plan name", func(f *domain.PricingFact) { f.PlanName = "" }},
		{"zero price", func(f *domain.PricingFact) { f.PricePerKwh = decimal.Zero }},
		{"negative price", func(f *domain.PricingFact) { f.PricePerKwh = decimal.RequireFromString("-0.10") }},
		{"negative monthly fee", func(f *domain.PricingFact) { f.MonthlyFee = decimalPtr("-1") }},
		{"negative yearly fee", func(f *domain.PricingFact) { f.YearlyFee = decimalPtr("-1") }},
		{"both cadences set", func(f *domain.PricingFact) { f.MonthlyFee = decimalPtr("5.99"); f.YearlyFee = decimalPtr("59.99") }},
		{"zero version", func(f *domain.PricingFact) { f.Version = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fact := validFact()
			tc.mutate(&fact)
			err := fact.Validate(currencies)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestValidateWithAlternateCurrencyMap(t *testing.T) {
	// The map is injected, so tests can substitute their own without
	// touching shared state.
	currencies := domain.CurrencyCountryMap{"€": {"Narnia"}}

	fact := validFact()
	err := fact.Validate(currencies)
	require.Error(t, err)

	fact.Country = "Narnia"
	assert.NoError(t, fact.Validate(currencies))
}

func TestEconomicallyEqualIgnoresLedgerFields(t *testing.T) {
	a := validFact()
	b := validFact()
	b.FactID = "some-id"
	b.Version = 7

	assert.True(t, a.EconomicallyEqual(&b), "FactID and Version must not affect economic equality")
}

func TestEconomicallyEqualDetectsChanges(t *testing.T) {
	a := validFact()

	b := validFact()
	b.PricePerKwh = decimal.RequireFromString("0.39")
	assert.False(t, a.EconomicallyEqual(&b))

	c := validFact()
	c.MonthlyFee = decimalPtr("5.99")
	assert.False(t, a.EconomicallyEqual(&c))

	d := validFact()
	d.Currency = "CHF"
	assert.False(t, a.EconomicallyEqual(&d))
}

func TestEconomicallyEqualDecimalScale(t *testing.T) {
	a := validFact()
	b := validFact()
	b.PricePerKwh = decimal.RequireFromString("0.350")

	assert.True(t, a.EconomicallyEqual(&b), "0.35 and 0.350 are the same price")
}
