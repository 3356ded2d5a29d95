package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money pairs a decimal amount with a currency code. Currency codes are 1-3
// characters and include symbolic forms such as "€" or "£".
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// String renders the money value for logs, e.g. "0.39 €".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.String(), m.Currency)
}

// SubscriptionTerms holds the recurring fee of a pricing plan. Exactly one of
// the two fields is set; a plan bills monthly or yearly, never both.
type SubscriptionTerms struct {
	MonthlyFee *decimal.Decimal `json:"monthlyFee,omitempty"`
	YearlyFee  *decimal.Decimal `json:"yearlyFee,omitempty"`
}
