package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/Volcanex/kindle-server/internal/config"
	"github.com/Volcanex/kindle-server/internal/domain"
)

// ArticleStore persists articles. Upsert must be safe to retry with
// identical content.
type ArticleStore interface {
	// GetByDedupKey returns nil without error when no article has the key.
	GetByDedupKey(ctx context.Context, key string) (*domain.Article, error)
	Upsert(ctx context.Context, article *domain.Article) (int64, error)
	ListPending(ctx context.Context) ([]domain.Article, error)
	UpdateProcessing(ctx context.Context, article *domain.Article) error
	ListRecentBySource(ctx context.Context, sourceName string, since time.Time) ([]domain.Article, error)
	ListIncludedSince(ctx context.Context, since time.Time, minQuality float64) ([]domain.Article, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, keepIncluded bool) (int64, error)
	Stats(ctx context.Context, since time.Time) (*domain.ArticleStats, error)
}

// SourceRegistry tracks registered feed sources and their sync bookkeeping.
type SourceRegistry interface {
	ListSources(ctx context.Context, activeOnly bool) ([]domain.FeedSource, error)
	RecordSyncOutcome(ctx context.Context, sourceID int64, syncedAt, nextDue time.Time, status string) error
}

// Publisher notifies the downstream delivery pipeline about articles whose
// inclusion flag changed.
type Publisher interface {
	PublishInclusion(ctx context.Context, article *domain.Article, included bool) error
	Close() error
}

// FeedValidator checks a feed before articles from it are persisted.
type FeedValidator interface {
	ValidateBeforeSave(ctx context.Context, url string, cfg config.FeedConfiguration) (bool, string, map[string]any)
}

// FeedAggregator ingests one feed and scores newly stored articles.
type FeedAggregator interface {
	AggregateFeed(ctx context.Context, feedURL string, forceRefresh bool, maxArticles int) (*domain.FeedResult, error)
	ProcessNewArticles(ctx context.Context) (int, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
