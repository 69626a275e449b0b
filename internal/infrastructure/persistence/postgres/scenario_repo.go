package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
	"github.com/dmjfallon/cascade-beta/internal/domain/port"
)

const scenarioSchema = `
CREATE TABLE IF NOT EXISTS scenarios (
	id                 TEXT PRIMARY KEY,
	name               TEXT NOT NULL,
	loan_a_balance     DOUBLE PRECISION NOT NULL,
	loan_a_rate        DOUBLE PRECISION NOT NULL,
	loan_a_months      DOUBLE PRECISION NOT NULL,
	loan_b_balance     DOUBLE PRECISION NOT NULL,
	loan_b_rate        DOUBLE PRECISION NOT NULL,
	loan_b_months      DOUBLE PRECISION NOT NULL,
	extra_a            DOUBLE PRECISION NOT NULL,
	extra_b            DOUBLE PRECISION NOT NULL,
	redirect_scheduled BOOLEAN NOT NULL,
	redirect_extra     BOOLEAN NOT NULL,
	strategy           TEXT NOT NULL,
	created_at         TIMESTAMPTZ NOT NULL
)`

// ScenarioRepo implements port.ScenarioRepository on PostgreSQL.
type ScenarioRepo struct {
	pool *pgxpool.Pool
}

// NewScenarioRepo creates the repository and ensures the scenarios table
// exists.
func NewScenarioRepo(ctx context.Context, pool *pgxpool.Pool) (*ScenarioRepo, error) {
	if _, err := pool.Exec(ctx, scenarioSchema); err != nil {
		return nil, fmt.Errorf("create scenarios table: %w", err)
	}
	return &ScenarioRepo{pool: pool}, nil
}

// Save persists a scenario. Saving an existing ID overwrites it.
func (r *ScenarioRepo) Save(ctx context.Context, sc model.Scenario) error {
	query := `
		INSERT INTO scenarios (
			id, name,
			loan_a_balance, loan_a_rate, loan_a_months,
			loan_b_balance, loan_b_rate, loan_b_months,
			extra_a, extra_b,
			redirect_scheduled, redirect_extra,
			strategy, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (id) DO UPDATE SET
			name               = EXCLUDED.name,
			loan_a_balance     = EXCLUDED.loan_a_balance,
			loan_a_rate        = EXCLUDED.loan_a_rate,
			loan_a_months      = EXCLUDED.loan_a_months,
			loan_b_balance     = EXCLUDED.loan_b_balance,
			loan_b_rate        = EXCLUDED.loan_b_rate,
			loan_b_months      = EXCLUDED.loan_b_months,
			extra_a            = EXCLUDED.extra_a,
			extra_b            = EXCLUDED.extra_b,
			redirect_scheduled = EXCLUDED.redirect_scheduled,
			redirect_extra     = EXCLUDED.redirect_extra,
			strategy           = EXCLUDED.strategy
	`
	_, err := r.pool.Exec(ctx, query,
		sc.ID, sc.Name,
		sc.LoanA.Balance, sc.LoanA.Rate, sc.LoanA.Months,
		sc.LoanB.Balance, sc.LoanB.Rate, sc.LoanB.Months,
		sc.ExtraA, sc.ExtraB,
		sc.RedirectScheduled, sc.RedirectExtra,
		sc.Strategy, sc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save scenario: %w", err)
	}
	return nil
}

// FindByID retrieves a scenario by ID.
func (r *ScenarioRepo) FindByID(ctx context.Context, id string) (model.Scenario, error) {
	query := `
		SELECT id, name,
		       loan_a_balance, loan_a_rate, loan_a_months,
		       loan_b_balance, loan_b_rate, loan_b_months,
		       extra_a, extra_b,
		       redirect_scheduled, redirect_extra,
		       strategy, created_at
		FROM scenarios
		WHERE id = $1
	`
	var sc model.Scenario
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&sc.ID, &sc.Name,
		&sc.LoanA.Balance, &sc.LoanA.Rate, &sc.LoanA.Months,
		&sc.LoanB.Balance, &sc.LoanB.Rate, &sc.LoanB.Months,
		&sc.ExtraA, &sc.ExtraB,
		&sc.RedirectScheduled, &sc.RedirectExtra,
		&sc.Strategy, &sc.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Scenario{}, port.ErrScenarioNotFound
	}
	if err != nil {
		return model.Scenario{}, fmt.Errorf("find scenario: %w", err)
	}
	return sc, nil
}
