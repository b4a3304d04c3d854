package domain

import "time"

// FeedResult holds counts for one feed aggregation.
type FeedResult struct {
	Found   int
	Added   int
	Updated int
}

// AggregateAllResult accumulates counts across a multi-feed run. Errors
// carries one message per failed feed; a failed feed never aborts the rest.
type AggregateAllResult struct {
	FeedsProcessed int
	Found          int
	Added          int
	Updated        int
	Errors         []string
}

// SourceSyncResult reports one source's sync attempt.
type SourceSyncResult struct {
	SourceID     int64
	SourceName   string
	URL          string
	Success      bool
	Found        int
	Added        int
	Updated      int
	ErrorMessage string
	SyncedAt     time.Time
	Duration     time.Duration
}

// BatchResult aggregates a whole sync-all run.
type BatchResult struct {
	TotalSources    int
	Synced          int
	Skipped         int
	Failed          int
	ArticlesAdded   int
	ArticlesUpdated int
	Results         []SourceSyncResult
	StartedAt       time.Time
	CompletedAt     time.Time
	Duration        time.Duration
}

// SourceArticles groups articles ready for downstream delivery by source.
type SourceArticles struct {
	SourceName   string
	ArticleCount int
	Articles     []Article
}

// SourceCount pairs a source name with its recent article count.
type SourceCount struct {
	SourceName string `db:"source_name"`
	Count      int    `db:"count"`
}

// ArticleStats summarizes recent ingestion activity.
type ArticleStats struct {
	ArticlesLast24h     int
	ArticlesForDelivery int
	BySource            []SourceCount
	AverageQuality      float64
	TotalArticles       int
}
