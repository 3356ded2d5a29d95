package moneytext

import (
	"testing"

	"github.com/chargewatch/pricetrack/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoneyPrefixCurrency(t *testing.T) {
	money, err := ParseMoney("€7.99")
	require.NoError(t, err)
	assert.True(t, money.Amount.Equal(decimal.RequireFromString("7.99")), "Amount should be 7.99")
	assert.Equal(t, "€", money.Currency)
}

func TestParseMoneyPostfixCurrency(t *testing.T) {
	money, err := ParseMoney("7.99 SFR")
	require.NoError(t, err)
	assert.True(t, money.Amount.Equal(decimal.RequireFromString("7.99")), "Amount should be 7.99")
	assert.Equal(t, "SFR", money.Currency)
}

func TestParseMoneyPerKwhSuffix(t *testing.T) {
	money, err := ParseMoney("0.39 €/kWh")
	require.NoError(t, err)
	assert.True(t, money.Amount.Equal(decimal.RequireFromString("0.39")), "Amount should be 0.39")
	assert.Equal(t, "€", money.Currency)
}

func TestParseMoneyPence(t *testing.T) {
	money, err := ParseMoney("43p")
	require.NoError(t, err)
	assert.True(t, money.Amount.Equal(decimal.RequireFromString("0.43")), "43p should normalize to 0.43 pounds")
	assert.Equal(t, "£", money.Currency)
}

func TestParseMoneyPencePerKwh(t *testing.T) {
	money, err := ParseMoney("43p/kWh")
	require.NoError(t, err)
	assert.True(t, money.Amount.Equal(decimal.RequireFromString("0.43")), "43p/kWh should normalize to 0.43 pounds")
	assert.Equal(t, "£", money.Currency)
}

func TestParseMoneyThousandsSeparator(t *testing.T) {
	money, err := ParseMoney("47,200 HUF")
	require.NoError(t, err)
	assert.True(t, money.Amount.Equal(decimal.NewFromInt(47200)), "Thousands separator should be stripped")
	assert.Equal(t, "HUF", money.Currency)
}

func TestParseMoneyNoMatch(t *testing.T) {
	_, err := ParseMoney("No price here.")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrParse)
}

func TestParseSubscriptionMonthly(t *testing.T) {
	terms, err := ParseSubscription("€0.99", "per month")
	require.NoError(t, err)
	require.NotNil(t, terms.MonthlyFee)
	assert.True(t, terms.MonthlyFee.Equal(decimal.RequireFromString("0.99")))
	assert.Nil(t, terms.YearlyFee, "Monthly plans must not set a yearly fee")
}

func TestParseSubscriptionYearly(t *testing.T) {
	terms, err := ParseSubscription("€11.99", "per year")
	require.NoError(t, err)
	require.NotNil(t, terms.YearlyFee)
	assert.True(t, terms.YearlyFee.Equal(decimal.RequireFromString("11.99")))
	assert.Nil(t, terms.MonthlyFee, "Yearly plans must not set a monthly fee")
}

func TestParseSubscriptionPeriodCaseInsensitive(t *testing.T) {
	terms, err := ParseSubscription("€11.99", "Per Month")
	require.NoError(t, err)
	assert.NotNil(t, terms.MonthlyFee)
}

func TestParseSubscriptionUnknownPeriod(t *testing.T) {
	_, err := ParseSubscription("€11.99", "per week")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrParse)
}

func TestParseSubscriptionBadAmount(t *testing.T) {
	_, err := ParseSubscription("free", "per month")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrParse)
}
