package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/Volcanex/kindle-server/internal/config"
	"github.com/Volcanex/kindle-server/internal/content"
	"github.com/Volcanex/kindle-server/internal/dedup"
	"github.com/Volcanex/kindle-server/internal/domain"
	"github.com/Volcanex/kindle-server/internal/feed"
	"github.com/Volcanex/kindle-server/internal/quality"
)

const (
	autoIncludeScore = 0.7
	autoExcludeScore = 0.3
	keyLockStripes   = 64
)

// Aggregator runs production ingestion: fetch, parse, extract, dedupe and
// persist, with scoring deferred to ProcessNewArticles.
type Aggregator struct {
	client    *feed.Client
	parser    *feed.Parser
	extractor *content.Extractor
	store     ArticleStore
	publisher Publisher
	logger    *slog.Logger
	defaults  config.FeedConfiguration

	// keyLocks serializes writes per dedup key so two workers seeing the
	// same entry cannot race past the existence check.
	keyLocks [keyLockStripes]sync.Mutex
}

func NewAggregator(
	client *feed.Client,
	parser *feed.Parser,
	extractor *content.Extractor,
	store ArticleStore,
	publisher Publisher,
	logger *slog.Logger,
) *Aggregator {
	return &Aggregator{
		client:    client,
		parser:    parser,
		extractor: extractor,
		store:     store,
		publisher: publisher,
		logger:    logger,
		defaults:  config.DefaultFeedConfiguration(),
	}
}

// AggregateFeed ingests up to maxArticles entries from one feed. A failing
// entry is skipped and never aborts the feed.
func (a *Aggregator) AggregateFeed(ctx context.Context, feedURL string, forceRefresh bool, maxArticles int) (*domain.FeedResult, error) {
	if maxArticles <= 0 {
		maxArticles = a.defaults.MaxArticles
	}

	a.logger.Info("aggregating feed", "url", feedURL, "max_articles", maxArticles, "force", forceRefresh)

	raw, _, err := feed.FetchWithRetry(ctx, a.client, feedURL, a.defaults.Timeout, nil, a.defaults.RetryCount)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	parsed, warnings, err := a.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	for _, w := range warnings {
		a.logger.Warn("feed parse warning", "url", feedURL, "warning", w)
	}

	sourceName := parsed.Title
	if sourceName == "" {
		sourceName = feed.DomainName(feedURL)
	}

	result := &domain.FeedResult{}
	for _, entry := range parsed.Entries {
		if result.Found >= maxArticles {
			break
		}

		outcome, err := a.processEntry(ctx, entry, feedURL, sourceName)
		if err != nil {
			a.logger.Error("error processing entry", "url", feedURL, "title", entry.Title, "error", err)
			continue
		}

		switch outcome {
		case dedup.OutcomeAdded:
			result.Added++
		case dedup.OutcomeUpdated:
			result.Updated++
		case dedup.OutcomeSkipped:
			continue
		}
		result.Found++
	}

	a.logger.Info("feed aggregated",
		"url", feedURL,
		"source", sourceName,
		"found", result.Found,
		"added", result.Added,
		"updated", result.Updated,
	)

	return result, nil
}

// AggregateAllFeeds ingests every feed in turn and then runs the scoring
// pass. One feed's failure is recorded and never aborts the rest.
func (a *Aggregator) AggregateAllFeeds(ctx context.Context, feedURLs []string, forceRefresh bool, maxPerFeed int) *domain.AggregateAllResult {
	result := &domain.AggregateAllResult{}

	for _, feedURL := range feedURLs {
		feedResult, err := a.AggregateFeed(ctx, feedURL, forceRefresh, maxPerFeed)
		if err != nil {
			a.logger.Error("error processing feed", "url", feedURL, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", feedURL, err))
			continue
		}

		result.FeedsProcessed++
		result.Found += feedResult.Found
		result.Added += feedResult.Added
		result.Updated += feedResult.Updated
	}

	if _, err := a.ProcessNewArticles(ctx); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("process new articles: %v", err))
	}

	return result
}

// ProcessNewArticles scores every pending article and applies the
// auto-policy: high scores are included for downstream publication, low
// scores excluded, the rest left for manual curation. Score and reading
// time are always recomputed together.
func (a *Aggregator) ProcessNewArticles(ctx context.Context) (int, error) {
	pending, err := a.store.ListPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending articles: %w", err)
	}

	processed := 0
	for i := range pending {
		article := &pending[i]

		if article.WordCount == 0 && article.Content != "" {
			article.WordCount = quality.WordCount(article.Content)
		}
		article.ReadingTime = quality.ReadingTime(article.WordCount)
		article.QualityScore = quality.ScoreArticle(article.Title, article.Summary, article.Author, article.WordCount)
		article.MarkProcessed()

		switch {
		case article.QualityScore >= autoIncludeScore:
			article.Include()
		case article.QualityScore < autoExcludeScore:
			article.Exclude("Low quality score")
		}

		if err := a.store.UpdateProcessing(ctx, article); err != nil {
			a.logger.Error("error processing article", "dedup_key", article.DedupKey, "error", err)
			continue
		}

		if article.Included && a.publisher != nil {
			if err := a.publisher.PublishInclusion(ctx, article, true); err != nil {
				a.logger.Error("error publishing inclusion", "dedup_key", article.DedupKey, "error", err)
			}
		}

		processed++
	}

	a.logger.Info("processed new articles", "count", processed)
	return processed, nil
}

// processEntry runs the per-entry pipeline: extract, dedupe, persist.
// Scoring is deferred; new and updated articles re-enter pending.
func (a *Aggregator) processEntry(ctx context.Context, entry feed.Entry, feedURL, sourceName string) (dedup.Outcome, error) {
	if entry.Title == "" {
		return dedup.OutcomeSkipped, nil
	}

	key := dedup.IdentityKey(feedURL, entry)

	lock := &a.keyLocks[stripe(key)]
	lock.Lock()
	defer lock.Unlock()

	existing, err := a.store.GetByDedupKey(ctx, key)
	if err != nil {
		return "", fmt.Errorf("lookup article: %w", err)
	}

	text := a.extractor.Extract(entry)
	summary := a.extractor.Summary(entry, text)
	wordCount := quality.WordCount(text)

	outcome := dedup.Resolve(existing, entry.Title, text)

	switch outcome {
	case dedup.OutcomeAdded:
		article := &domain.Article{
			DedupKey:    key,
			Title:       entry.Title,
			Content:     text,
			Summary:     summary,
			SourceName:  sourceName,
			SourceURL:   entry.Link,
			FeedURL:     feedURL,
			Author:      entry.Author,
			Category:    entry.Category,
			PublishedAt: publishedAt(entry),
			WordCount:   wordCount,
			Status:      domain.StatusPending,
		}
		if _, err := a.store.Upsert(ctx, article); err != nil {
			return "", fmt.Errorf("insert article: %w", err)
		}

	case dedup.OutcomeUpdated:
		existing.Title = entry.Title
		existing.Content = text
		existing.Summary = summary
		existing.Author = entry.Author
		existing.WordCount = wordCount
		existing.Status = domain.StatusPending
		if _, err := a.store.Upsert(ctx, existing); err != nil {
			return "", fmt.Errorf("update article: %w", err)
		}
	}

	return outcome, nil
}

func publishedAt(entry feed.Entry) time.Time {
	if entry.Published != nil {
		return *entry.Published
	}
	return time.Now().UTC()
}

func stripe(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32() % keyLockStripes
}
