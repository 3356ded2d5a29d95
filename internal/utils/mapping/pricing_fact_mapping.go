package mapping

import (
	"github.com/chargewatch/pricetrack/internal/core/domain"
	"github.com/chargewatch/pricetrack/internal/models"
	"github.com/shopspring/decimal"
)

// NormalizeLegacySubscription lifts a pre-split row onto the current shape.
// Old rows carry a single undifferentiated subscription fee; it is
// reinterpreted as a yearly fee. A zero legacy fee means the plan had no
// recurring fee at all and maps to neither field. Rows that already populate
// the split columns are returned unchanged.
func NormalizeLegacySubscription(m models.PricingFact) models.PricingFact {
	if m.MonthlyFee.Valid || m.YearlyFee.Valid || !m.LegacySubscriptionFee.Valid {
		return m
	}
	if !m.LegacySubscriptionFee.Decimal.IsZero() {
		m.YearlyFee = m.LegacySubscriptionFee
	}
	m.LegacySubscriptionFee = decimal.NullDecimal{}
	return m
}

// ToDomainPricingFact converts a store row to the domain shape. The legacy
// schema adapter runs first so that validation always sees the current shape.
func ToDomainPricingFact(m models.PricingFact) domain.PricingFact {
	m = NormalizeLegacySubscription(m)
	return domain.PricingFact{
		FactID:      m.FactID,
		Country:     m.Country,
		Currency:    m.Currency,
		Provider:    m.Provider,
		PlanName:    m.PlanName,
		PricePerKwh: m.PricePerKwh,
		MonthlyFee:  fromNullDecimal(m.MonthlyFee),
		YearlyFee:   fromNullDecimal(m.YearlyFee),
		Version:     m.Version,
		ValidFrom:   m.ValidFrom,
		ValidTo:     m.ValidTo,
	}
}

// ToModelPricingFact converts a domain fact to its store row. The legacy
// column is never written for new rows.
func ToModelPricingFact(f domain.PricingFact) models.PricingFact {
	return models.PricingFact{
		FactID:      f.FactID,
		Country:     f.Country,
		Currency:    f.Currency,
		Provider:    f.Provider,
		PlanName:    f.PlanName,
		PricePerKwh: f.PricePerKwh,
		MonthlyFee:  toNullDecimal(f.MonthlyFee),
		YearlyFee:   toNullDecimal(f.YearlyFee),
		Version:     f.Version,
		ValidFrom:   f.ValidFrom,
		ValidTo:     f.ValidTo,
	}
}

// ToDomainPricingFactSlice converts a slice of store rows.
func ToDomainPricingFactSlice(rows []models.PricingFact) []domain.PricingFact {
	facts := make([]domain.PricingFact, len(rows))
	for i, m := range rows {
		facts[i] = ToDomainPricingFact(m)
	}
	return facts
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
