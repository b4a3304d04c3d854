package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Volcanex/kindle-server/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// GetByDedupKey returns nil, nil when no article has the key.
func (s *ArticleStore) GetByDedupKey(ctx context.Context, key string) (*domain.Article, error) {
	var article domain.Article
	query := `
		SELECT id, dedup_key, title, content, summary, source_name, source_url,
			feed_url, author, category, published_at, word_count, reading_time,
			quality_score, status, included, processing_note, created_at, updated_at
		FROM articles
		WHERE dedup_key = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &article, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *ArticleStore) Upsert(ctx context.Context, article *domain.Article) (int64, error) {
	query := `
		INSERT INTO articles (
			dedup_key, title, content, summary, source_name, source_url,
			feed_url, author, category, published_at, word_count, reading_time,
			quality_score, status, included, processing_note, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now()
		)
		ON CONFLICT (dedup_key) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			summary = EXCLUDED.summary,
			author = EXCLUDED.author,
			category = EXCLUDED.category,
			published_at = EXCLUDED.published_at,
			word_count = EXCLUDED.word_count,
			status = EXCLUDED.status,
			updated_at = now()
		RETURNING id`

	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id, query,
		article.DedupKey,
		article.Title,
		article.Content,
		article.Summary,
		article.SourceName,
		article.SourceURL,
		article.FeedURL,
		article.Author,
		article.Category,
		article.PublishedAt,
		article.WordCount,
		article.ReadingTime,
		article.QualityScore,
		article.Status,
		article.Included,
		article.ProcessingNote,
	)
	if err != nil {
		return 0, err
	}

	article.ID = id
	return id, nil
}

func (s *ArticleStore) ListPending(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	query := `
		SELECT id, dedup_key, title, content, summary, source_name, source_url,
			feed_url, author, category, published_at, word_count, reading_time,
			quality_score, status, included, processing_note, created_at, updated_at
		FROM articles
		WHERE status = $1
		ORDER BY created_at`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles, query, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// UpdateProcessing writes the fields the scoring and inclusion passes set.
func (s *ArticleStore) UpdateProcessing(ctx context.Context, article *domain.Article) error {
	query := `
		UPDATE articles SET
			word_count = $2,
			reading_time = $3,
			quality_score = $4,
			status = $5,
			included = $6,
			processing_note = $7,
			updated_at = now()
		WHERE id = $1`

	result, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		article.ID,
		article.WordCount,
		article.ReadingTime,
		article.QualityScore,
		article.Status,
		article.Included,
		article.ProcessingNote,
	)
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

func (s *ArticleStore) ListRecentBySource(ctx context.Context, sourceName string, since time.Time) ([]domain.Article, error) {
	var articles []domain.Article
	query := `
		SELECT id, dedup_key, title, content, summary, source_name, source_url,
			feed_url, author, category, published_at, word_count, reading_time,
			quality_score, status, included, processing_note, created_at, updated_at
		FROM articles
		WHERE source_name = $1 AND created_at >= $2
		ORDER BY created_at DESC`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles, query, sourceName, since)
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *ArticleStore) ListIncludedSince(ctx context.Context, since time.Time, minQuality float64) ([]domain.Article, error) {
	var articles []domain.Article
	query := `
		SELECT id, dedup_key, title, content, summary, source_name, source_url,
			feed_url, author, category, published_at, word_count, reading_time,
			quality_score, status, included, processing_note, created_at, updated_at
		FROM articles
		WHERE included AND created_at >= $1 AND quality_score >= $2
		ORDER BY source_name, published_at DESC`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles, query, since, minQuality)
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *ArticleStore) DeleteOlderThan(ctx context.Context, cutoff time.Time, keepIncluded bool) (int64, error) {
	query := `DELETE FROM articles WHERE created_at < $1`
	if keepIncluded {
		query += ` AND NOT included`
	}

	result, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *ArticleStore) Stats(ctx context.Context, since time.Time) (*domain.ArticleStats, error) {
	stats := &domain.ArticleStats{}
	exec := GetExecutor(ctx, s.db)

	summary := `
		SELECT
			count(*) AS total,
			count(*) FILTER (WHERE created_at >= $1) AS recent,
			count(*) FILTER (WHERE included) AS for_delivery,
			coalesce(avg(quality_score), 0) AS avg_quality
		FROM articles`

	row := exec.QueryRowxContext(ctx, summary, since)
	if err := row.Scan(&stats.TotalArticles, &stats.ArticlesLast24h, &stats.ArticlesForDelivery, &stats.AverageQuality); err != nil {
		return nil, err
	}

	bySource := `
		SELECT source_name, count(*) AS count
		FROM articles
		WHERE created_at >= $1
		GROUP BY source_name
		ORDER BY count DESC`

	if err := sqlx.SelectContext(ctx, exec, &stats.BySource, bySource, since); err != nil {
		return nil, err
	}
	return stats, nil
}
