package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/report"
	"github.com/DjordjeVuckovic/uplift-hunter/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Storer keeps reports in the evaluations table; summary columns are
// denormalized next to the JSONB document for listing.
type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	if pool == nil {
		return nil, fmt.Errorf("connection pool is nil")
	}
	return &Storer{db: pool.conn}, nil
}

func (s *Storer) Save(ctx context.Context, r *report.Report) (uuid.UUID, error) {
	if err := storage.Prepare(r); err != nil {
		return uuid.Nil, err
	}

	doc, err := json.Marshal(r)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	sum := r.Summary()

	cmd := `
        INSERT INTO evaluations (id, name, samples, models, best_model, created_at, report)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            samples = EXCLUDED.samples,
            models = EXCLUDED.models,
            best_model = EXCLUDED.best_model,
            report = EXCLUDED.report
        RETURNING id;
    `
	var id uuid.UUID
	err = s.db.QueryRow(
		ctx,
		cmd,
		sum.ID,
		sum.Name,
		sum.Samples,
		sum.Models,
		sum.Best,
		sum.CreatedAt,
		doc,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *Storer) Get(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	var doc []byte
	err := s.db.QueryRow(ctx, `SELECT report FROM evaluations WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NewNotFound(storage.ReportResource, id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluation: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(doc, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &r, nil
}

func (s *Storer) List(ctx context.Context, page, size int) ([]report.Summary, int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM evaluations`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count evaluations: %w", err)
	}

	rows, err := s.db.Query(ctx, `
        SELECT id, name, created_at, samples, models, best_model
        FROM evaluations
        ORDER BY created_at DESC, id
        LIMIT $1 OFFSET $2
    `, size, pagination.Offset(page, size))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list evaluations: %w", err)
	}

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (report.Summary, error) {
		var sum report.Summary
		err := row.Scan(&sum.ID, &sum.Name, &sum.CreatedAt, &sum.Samples, &sum.Models, &sum.Best)
		return sum, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan evaluations: %w", err)
	}
	return summaries, total, nil
}
