package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingFact is the store representation of one versioned price row.
//
// LegacySubscriptionFee is the pre-split recurring fee column. Rows written
// before the monthly/yearly split carry only this column; on load it is
// reinterpreted as a yearly fee (see mapping.NormalizeLegacySubscription).
// New rows never set it.
type PricingFact struct {
	FactID                string              `json:"factID"`
	Country               string              `json:"country"`
	Currency              string              `json:"currency"`
	Provider              string              `json:"provider"`
	PlanName              string              `json:"planName"`
	PricePerKwh           decimal.Decimal     `json:"pricePerKwh"`
	MonthlyFee            decimal.NullDecimal `json:"monthlySubscriptionFee"`
	YearlyFee             decimal.NullDecimal `json:"yearlySubscriptionFee"`
	LegacySubscriptionFee decimal.NullDecimal `json:"subscriptionFee"`
	Version               int64               `json:"version"`
	ValidFrom             time.Time           `json:"validFrom"`
	ValidTo               *time.Time          `json:"validTo"`
}
