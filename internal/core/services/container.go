package services

import (
	"github.com/chargewatch/pricetrack/internal/core/domain"
	portsrepo "github.com/chargewatch/pricetrack/internal/core/ports/repositories"
	portssvc "github.com/chargewatch/pricetrack/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized
// dependencies. The currency map is injected here so tests can substitute
// alternate mappings without touching shared state.
func NewContainer(repos *portsrepo.RepositoryProvider, currencies domain.CurrencyCountryMap) *portssvc.ServiceContainer {
	ledger := NewPricingLedgerService(repos.PricingFactRepo, currencies)

	return &portssvc.ServiceContainer{
		PricingLedger: ledger,
		Ingestion:     NewIngestionService(ledger, currencies),
	}
}
