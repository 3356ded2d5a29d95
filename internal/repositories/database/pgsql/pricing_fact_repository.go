package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chargewatch/pricetrack/internal/apperrors"
	"github.com/chargewatch/pricetrack/internal/core/domain"
	portsrepo "github.com/chargewatch/pricetrack/internal/core/ports/repositories"
	"github.com/chargewatch/pricetrack/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPricingFactRepository struct {
	BaseRepository
}

// newPgxPricingFactRepository creates a new repository for versioned pricing facts.
func newPgxPricingFactRepository(pool *pgxpool.Pool) portsrepo.PricingFactRepositoryFacade {
	return &PgxPricingFactRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PricingFactRepositoryFacade = (*PgxPricingFactRepository)(nil)

const pricingFactColumns = `
	pricing_fact_id, country, currency, provider, plan_name,
	price_per_kwh, monthly_subscription_fee, yearly_subscription_fee, subscription_fee,
	version, valid_from, valid_to
`

// FindCurrentFact retrieves the row for the key with a null valid_to.
func (r *PgxPricingFactRepository) FindCurrentFact(ctx context.Context, key domain.PlanKey) (*models.PricingFact, error) {
	query := `
		SELECT ` + pricingFactColumns + `
		FROM pricing_facts
		WHERE country = $1 AND provider = $2 AND plan_name = $3 AND valid_to IS NULL;
	`
	var row models.PricingFact
	err := r.Pool.QueryRow(ctx, query, key.Country, key.Provider, key.PlanName).Scan(
		&row.FactID,
		&row.Country,
		&row.Currency,
		&row.Provider,
		&row.PlanName,
		&row.PricePerKwh,
		&row.MonthlyFee,
		&row.YearlyFee,
		&row.LegacySubscriptionFee,
		&row.Version,
		&row.ValidFrom,
		&row.ValidTo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find current fact for %s: %w", key, err)
	}
	return &row, nil
}

// FindFactHistory retrieves all versions for the key ordered by version.
func (r *PgxPricingFactRepository) FindFactHistory(ctx context.Context, key domain.PlanKey) ([]models.PricingFact, error) {
	query := `
		SELECT ` + pricingFactColumns + `
		FROM pricing_facts
		WHERE country = $1 AND provider = $2 AND plan_name = $3
		ORDER BY version;
	`
	rows, err := r.Pool.Query(ctx, query, key.Country, key.Provider, key.PlanName)
	if err != nil {
		return nil, fmt.Errorf("failed to query fact history for %s: %w", key, err)
	}
	defer rows.Close()

	history, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PricingFact, error) {
		var fact models.PricingFact
		err := row.Scan(
			&fact.FactID,
			&fact.Country,
			&fact.Currency,
			&fact.Provider,
			&fact.PlanName,
			&fact.PricePerKwh,
			&fact.MonthlyFee,
			&fact.YearlyFee,
			&fact.LegacySubscriptionFee,
			&fact.Version,
			&fact.ValidFrom,
			&fact.ValidTo,
		)
		return fact, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []models.PricingFact{}, nil
		}
		return nil, fmt.Errorf("failed to scan fact history: %w", err)
	}

	return history, nil
}

// InsertFact appends one row. The partial unique index on the natural key
// WHERE valid_to IS NULL rejects a second current fact for the same key.
func (r *PgxPricingFactRepository) InsertFact(ctx context.Context, fact models.PricingFact) error {
	query := `
		INSERT INTO pricing_facts (
			pricing_fact_id, country, currency, provider, plan_name,
			price_per_kwh, monthly_subscription_fee, yearly_subscription_fee,
			version, valid_from, valid_to
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		fact.FactID,
		fact.Country,
		fact.Currency,
		fact.Provider,
		fact.PlanName,
		fact.PricePerKwh,
		fact.MonthlyFee,
		fact.YearlyFee,
		fact.Version,
		fact.ValidFrom,
		fact.ValidTo,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: current fact already exists for %s/%s/%s", apperrors.ErrDuplicate, fact.Country, fact.Provider, fact.PlanName)
		}
		return fmt.Errorf("failed to insert pricing fact: %w", err)
	}
	return nil
}

// ArchiveFact closes the validity interval of the identified row if it is
// still current and returns the number of rows modified.
func (r *PgxPricingFactRepository) ArchiveFact(ctx context.Context, factID string, validTo time.Time) (int64, error) {
	query := `
		UPDATE pricing_facts
		SET valid_to = $2
		WHERE pricing_fact_id = $1 AND valid_to IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, factID, validTo)
	if err != nil {
		return 0, fmt.Errorf("failed to archive fact %s: %w", factID, err)
	}
	return tag.RowsAffected(), nil
}

// ArchiveCurrentByPlan archives every current fact for (provider, planName)
// across all countries.
func (r *PgxPricingFactRepository) ArchiveCurrentByPlan(ctx context.Context, provider, planName string, validTo time.Time) (int64, error) {
	query := `
		UPDATE pricing_facts
		SET valid_to = $3
		WHERE provider = $1 AND plan_name = $2 AND valid_to IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, provider, planName, validTo)
	if err != nil {
		return 0, fmt.Errorf("failed to archive current facts for %s/%s: %w", provider, planName, err)
	}
	return tag.RowsAffected(), nil
}
