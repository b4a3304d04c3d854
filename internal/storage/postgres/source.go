package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Volcanex/kindle-server/internal/domain"
)

type SourceStore struct {
	db *sqlx.DB
}

func NewSourceStore(db *sqlx.DB) *SourceStore {
	return &SourceStore{db: db}
}

func (s *SourceStore) ListSources(ctx context.Context, activeOnly bool) ([]domain.FeedSource, error) {
	var sources []domain.FeedSource
	query := `
		SELECT id, url, name, category, active, cadence, last_sync, next_due,
			last_status, created_at
		FROM sources`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &sources, query)
	if err != nil {
		return nil, err
	}
	return sources, nil
}

func (s *SourceStore) GetByURL(ctx context.Context, url string) (*domain.FeedSource, error) {
	var source domain.FeedSource
	query := `
		SELECT id, url, name, category, active, cadence, last_sync, next_due,
			last_status, created_at
		FROM sources
		WHERE url = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &source, query, url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &source, nil
}

func (s *SourceStore) Save(ctx context.Context, source *domain.FeedSource) (int64, error) {
	query := `
		INSERT INTO sources (url, name, category, active, cadence, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (url) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			active = EXCLUDED.active,
			cadence = EXCLUDED.cadence
		RETURNING id`

	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id, query,
		source.URL,
		source.Name,
		source.Category,
		source.Active,
		source.Cadence,
	)
	if err != nil {
		return 0, err
	}

	source.ID = id
	return id, nil
}

func (s *SourceStore) RecordSyncOutcome(ctx context.Context, sourceID int64, syncedAt, nextDue time.Time, status string) error {
	query := `
		UPDATE sources SET
			last_sync = $2,
			next_due = $3,
			last_status = $4
		WHERE id = $1`

	result, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, sourceID, syncedAt, nextDue, status)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
