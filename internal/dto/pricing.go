package dto

import (
	"time"

	"github.com/chargewatch/pricetrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PlanKeyParams identifies one pricing history stream in query parameters.
// Country and plan names may contain spaces ("United Kingdom"), so the key
// travels as query values rather than path segments.
type PlanKeyParams struct {
	Country  string `form:"country" binding:"required,min=2"`
	Provider string `form:"provider" binding:"required"`
	PlanName string `form:"plan" binding:"required"`
}

// ToPlanKey converts the bound parameters to the domain key.
func (p PlanKeyParams) ToPlanKey() domain.PlanKey {
	return domain.PlanKey{Country: p.Country, Provider: p.Provider, PlanName: p.PlanName}
}

// PricingFactResponse is the API shape of one fact version.
type PricingFactResponse struct {
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

// ToPricingFactResponse converts a domain fact to its response DTO.
func ToPricingFactResponse(f *domain.PricingFact) PricingFactResponse {
	return PricingFactResponse{
		FactID:      f.FactID,
		Country:     f.Country,
		Currency:    f.Currency,
		Provider:    f.Provider,
		PlanName:    f.PlanName,
		PricePerKwh: f.PricePerKwh,
		MonthlyFee:  f.MonthlyFee,
		YearlyFee:   f.YearlyFee,
		Version:     f.Version,
		ValidFrom:   f.ValidFrom,
		ValidTo:     f.ValidTo,
	}
}

// ToPricingFactListResponse converts a slice of domain facts.
func ToPricingFactListResponse(facts []domain.PricingFact) []PricingFactResponse {
	res := make([]PricingFactResponse, len(facts))
	for i := range facts {
		res[i] = ToPricingFactResponse(&facts[i])
	}
	return res
}

// PlanObservation is one plan card as extracted by the web collector: the raw
// visible text fragments, not yet parsed. The subscription fields are empty
// for plans without a recurring fee.
type PlanObservation struct {
	PlanName           string `json:"planName" binding:"required"`
	PriceText          string `json:"priceText" binding:"required"`
	SubscriptionAmount string `json:"subscriptionAmount,omitempty"`
	SubscriptionPeriod string `json:"subscriptionPeriod,omitempty" binding:"omitempty,billing_period"`
}

// ObservationBatchRequest is one collector run for a single country and
// provider.
type ObservationBatchRequest struct {
	Country  string            `json:"country" binding:"required,min=2"`
	Provider string            `json:"provider" binding:"required"`
	Plans    []PlanObservation `json:"plans" binding:"required,min=1,dive"`
}

// PlanFailure records why a single plan in a batch was skipped.
type PlanFailure struct {
	PlanName string `json:"planName"`
	Reason   string `json:"reason"`
}

// ObservationBatchResponse summarizes what a batch did. A failed plan never
// aborts processing of the remaining plans.
type ObservationBatchResponse struct {
	Country   string        `json:"country"`
	Provider  string        `json:"provider"`
	Inserted  int           `json:"inserted"`
	Updated   int           `json:"updated"`
	Unchanged int           `json:"unchanged"`
	Failures  []PlanFailure `json:"failures,omitempty"`
}

// RetirePlanRequest archives every current fact for a plan across countries.
type RetirePlanRequest struct {
	Provider string `json:"provider" binding:"required"`
	PlanName string `json:"planName" binding:"required"`
}

// RetirePlanResponse reports how many current facts were archived.
type RetirePlanResponse struct {
	Provider string `json:"provider"`
	PlanName string `json:"planName"`
	Archived int64  `json:"archived"`
}
