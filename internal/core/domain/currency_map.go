package domain

// CurrencyCountryMap maps a currency code to the set of countries permitted to
// use it. It is passed into fact validation instead of living as package-level
// state so tests can substitute alternate mappings.
type CurrencyCountryMap map[string][]string

// Allows reports whether the country may use the currency. A currency absent
// from the map is permitted for any country.
func (m CurrencyCountryMap) Allows(currency, country string) bool {
	countries, known := m[currency]
	if !known {
		return true
	}
	for _, c := range countries {
		if c == country {
			return true
		}
	}
	return false
}

// DefaultCurrencyCountryMap returns the mapping used in production.
// "TestCountry" is a sentinel market used by integration fixtures.
func DefaultCurrencyCountryMap() CurrencyCountryMap {
	return CurrencyCountryMap{
		"€": {
			"Germany", "France", "Italy", "Austria", "Spain", "Portugal",
			"Netherlands", "Belgium", "Luxembourg", "Ireland", "Finland",
			"Slovakia", "Hungary", "Greece", "Croatia", "Slovenia", "Estonia",
			"Latvia", "Lithuania", "Malta", "Cyprus", "TestCountry",
		},
		"CHF": {"Switzerland"},
		"DKR": {"Denmark"},
		"NOK": {"Norway"},
		"SEK": {"Sweden"},
		"PLN": {"Poland"},
		"USD": {"United States", "Canada"},
		"£":   {"United Kingdom"},
		"CZK": {"Czech Republic"},
		"HUF": {"Hungary"},
		"RON": {"Romania"},
		"BGN": {"Bulgaria"},
		"HRK": {"Croatia"},
		"ISK": {"Iceland"},
	}
}
