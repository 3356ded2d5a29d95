// Package moneytext turns the free-form price strings extracted from pricing
// pages ("€11.99", "47,200 HUF", "43p/kWh") into normalized money values.
package moneytext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chargewatch/pricetrack/internal/apperrors"
	"github.com/chargewatch/pricetrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// amountPattern matches an optional 1-3 character currency token as prefix or
// suffix around a decimal amount. "." is the decimal separator; thousands
// separators are stripped before matching.
var amountPattern = regexp.MustCompile(`([^\d\s]{1,3})?\s*(\d+(?:\.\d+)?)\s*([^\d\s]{1,3})?`)

const perKwhSuffix = "/kWh"

// hundred converts pence to pounds.
var hundred = decimal.NewFromInt(100)

// ParseMoney extracts an amount and currency from a price string. The currency
// token may prefix or suffix the amount; an optional "/kWh" unit suffix is
// ignored. A bare trailing "p" is the pence minor unit: the amount is divided
// by 100 and the currency normalized to "£".
func ParseMoney(text string) (domain.Money, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	cleaned = strings.TrimSuffix(cleaned, perKwhSuffix)
	cleaned = strings.TrimSpace(cleaned)

	match := amountPattern.FindStringSubmatch(cleaned)
	if match == nil || match[2] == "" {
		return domain.Money{}, fmt.Errorf("%w: no amount found in %q", apperrors.ErrParse, text)
	}

	amount, err := decimal.NewFromString(match[2])
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: bad amount %q: %v", apperrors.ErrParse, match[2], err)
	}

	currency := match[1]
	if currency == "" {
		currency = match[3]
	}

	// "43p" is forty-three pence, not a "p" currency.
	if currency == "p" && strings.HasSuffix(cleaned, "p") {
		amount = amount.Div(hundred)
		currency = "£"
	}

	return domain.Money{Amount: amount, Currency: currency}, nil
}

// ParseSubscription parses a recurring-fee amount together with its billing
// period. The period is matched case-insensitively against "per month" and
// "per year"; anything else is a parse error. Exactly one fee field of the
// returned terms is populated.
func ParseSubscription(amountText, periodText string) (domain.SubscriptionTerms, error) {
	money, err := ParseMoney(amountText)
	if err != nil {
		return domain.SubscriptionTerms{}, err
	}

	switch strings.ToLower(strings.TrimSpace(periodText)) {
	case "per month":
		return domain.SubscriptionTerms{MonthlyFee: &money.Amount}, nil
	case "per year":
		return domain.SubscriptionTerms{YearlyFee: &money.Amount}, nil
	default:
		return domain.SubscriptionTerms{}, fmt.Errorf("%w: unknown billing period %q", apperrors.ErrParse, periodText)
	}
}
