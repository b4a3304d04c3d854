package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Volcanex/kindle-server/internal/config"
	"github.com/Volcanex/kindle-server/internal/domain"
)

// downstreamMarkWindow bounds which recently created articles a completed
// sync marks eligible for downstream delivery.
const downstreamMarkWindow = time.Hour

// SyncManager drives per-source syncing on independent cadences with
// per-source failure isolation.
type SyncManager struct {
	aggregator FeedAggregator
	validator  FeedValidator
	store      ArticleStore
	registry   SourceRegistry
	publisher  Publisher
	txManager  TransactionManager
	logger     *slog.Logger

	workers          int
	qualityThreshold float64
}

func NewSyncManager(
	aggregator FeedAggregator,
	validator FeedValidator,
	store ArticleStore,
	registry SourceRegistry,
	publisher Publisher,
	txManager TransactionManager,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncManager {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	threshold := cfg.QualityThreshold
	if threshold == 0 {
		threshold = 0.3
	}
	return &SyncManager{
		aggregator:       aggregator,
		validator:        validator,
		store:            store,
		registry:         registry,
		publisher:        publisher,
		txManager:        txManager,
		logger:           logger,
		workers:          workers,
		qualityThreshold: threshold,
	}
}

// ShouldSync reports whether a source is due. Forced syncs always run;
// inactive sources never do; a source that has never synced is always due.
func (m *SyncManager) ShouldSync(source domain.FeedSource, force bool) bool {
	if force {
		return true
	}
	if !source.Active {
		return false
	}
	if source.LastSync.IsZero() {
		return true
	}
	next := source.LastSync.Add(source.Cadence.Interval())
	return !time.Now().Before(next)
}

// SyncSourceArticles syncs one source: validate the feed, aggregate, score,
// then mark this source's fresh articles for downstream delivery. When cfg
// is nil a default scaled by the source's cadence is used. The sync outcome
// is recorded against the registry whether it succeeded or failed.
func (m *SyncManager) SyncSourceArticles(ctx context.Context, source domain.FeedSource, cfg *config.FeedConfiguration) domain.SourceSyncResult {
	start := time.Now()
	result := domain.SourceSyncResult{
		SourceID:   source.ID,
		SourceName: source.Name,
		URL:        source.URL,
		SyncedAt:   start,
	}

	fc := config.DefaultFeedConfiguration()
	if cfg == nil {
		fc.MaxArticles = source.Cadence.DefaultMaxArticles()
		fc.UpdateFrequency = source.Cadence
	} else {
		fc = *cfg
		if err := fc.Validate(); err != nil {
			result.ErrorMessage = fmt.Sprintf("invalid configuration: %v", err)
			result.Duration = time.Since(start)
			return result
		}
	}

	m.logger.Info("syncing source", "source", source.Name, "url", source.URL, "cadence", source.Cadence)

	ok, reason, _ := m.validator.ValidateBeforeSave(ctx, source.URL, fc)
	if !ok {
		result.ErrorMessage = "feed validation failed: " + reason
	} else if aggResult, err := m.aggregator.AggregateFeed(ctx, source.URL, true, fc.MaxArticles); err != nil {
		result.ErrorMessage = err.Error()
	} else {
		if _, err := m.aggregator.ProcessNewArticles(ctx); err != nil {
			m.logger.Error("error scoring new articles", "source", source.Name, "error", err)
		}

		result.Success = true
		result.Found = aggResult.Found
		result.Added = aggResult.Added
		result.Updated = aggResult.Updated

		m.markArticlesForDownstream(ctx, source, start)
	}

	result.Duration = time.Since(start)
	m.recordOutcome(ctx, source, start, result)
	return result
}

// SyncAllDueSources syncs every due source on a bounded worker pool. One
// source's failure is recorded and never aborts the batch; cancelling the
// batch stops new dispatches while in-flight sources finish on their own.
func (m *SyncManager) SyncAllDueSources(ctx context.Context, sources []domain.FeedSource, force bool) *domain.BatchResult {
	start := time.Now()
	batch := &domain.BatchResult{
		TotalSources: len(sources),
		StartedAt:    start,
	}

	var due []domain.FeedSource
	for _, source := range sources {
		if m.ShouldSync(source, force) {
			due = append(due, source)
		} else {
			batch.Skipped++
		}
	}

	workers := m.workers
	if workers > len(due) {
		workers = len(due)
	}

	jobs := make(chan domain.FeedSource)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for source := range jobs {
				// Detached from batch cancellation so a started sync
				// completes or times out cleanly.
				result := m.SyncSourceArticles(context.WithoutCancel(ctx), source, nil)

				mu.Lock()
				batch.Results = append(batch.Results, result)
				if result.Success {
					batch.Synced++
					batch.ArticlesAdded += result.Added
					batch.ArticlesUpdated += result.Updated
				} else {
					batch.Failed++
				}
				mu.Unlock()
			}
		}()
	}

	dispatched := 0
dispatch:
	for _, source := range due {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- source:
			dispatched++
		}
	}
	close(jobs)
	wg.Wait()

	batch.Skipped += len(due) - dispatched
	batch.CompletedAt = time.Now()
	batch.Duration = batch.CompletedAt.Sub(start)

	m.logger.Info("batch sync completed",
		"total", batch.TotalSources,
		"synced", batch.Synced,
		"skipped", batch.Skipped,
		"failed", batch.Failed,
		"added", batch.ArticlesAdded,
		"updated", batch.ArticlesUpdated,
		"duration", batch.Duration,
	)

	return batch
}

// SyncDue loads the registered sources and syncs those that are due.
func (m *SyncManager) SyncDue(ctx context.Context, force bool) (*domain.BatchResult, error) {
	sources, err := m.registry.ListSources(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return m.SyncAllDueSources(ctx, sources, force), nil
}

// GetArticlesForDownstreamWindow returns included, recent, good-quality
// articles grouped by source, largest group first.
func (m *SyncManager) GetArticlesForDownstreamWindow(ctx context.Context, hours int) ([]domain.SourceArticles, error) {
	since := time.Now().Add(-time.Duration(hours) * time.Hour)

	articles, err := m.store.ListIncludedSince(ctx, since, m.qualityThreshold)
	if err != nil {
		return nil, fmt.Errorf("list included articles: %w", err)
	}

	byName := map[string]*domain.SourceArticles{}
	var order []string
	for _, article := range articles {
		group, ok := byName[article.SourceName]
		if !ok {
			group = &domain.SourceArticles{SourceName: article.SourceName}
			byName[article.SourceName] = group
			order = append(order, article.SourceName)
		}
		article.Summary = truncateSummary(article.Summary, 200)
		group.Articles = append(group.Articles, article)
		group.ArticleCount++
	}

	groups := make([]domain.SourceArticles, 0, len(order))
	for _, name := range order {
		groups = append(groups, *byName[name])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].ArticleCount > groups[j].ArticleCount
	})

	return groups, nil
}

// SyncStatistics summarizes the last 24 hours of ingestion.
func (m *SyncManager) SyncStatistics(ctx context.Context) (*domain.ArticleStats, error) {
	return m.store.Stats(ctx, time.Now().Add(-24*time.Hour))
}

// CleanupOldArticles deletes articles older than the given number of days,
// keeping those marked for downstream delivery.
func (m *SyncManager) CleanupOldArticles(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	deleted, err := m.store.DeleteOlderThan(ctx, cutoff, true)
	if err != nil {
		return 0, fmt.Errorf("delete old articles: %w", err)
	}
	m.logger.Info("cleaned up old articles", "deleted", deleted, "days", days)
	return deleted, nil
}

// markArticlesForDownstream includes articles created within the last hour
// of this source's sync that clear the quality threshold.
func (m *SyncManager) markArticlesForDownstream(ctx context.Context, source domain.FeedSource, syncStart time.Time) {
	cutoff := syncStart.Add(-downstreamMarkWindow)

	articles, err := m.store.ListRecentBySource(ctx, source.Name, cutoff)
	if err != nil {
		m.logger.Error("error listing recent articles", "source", source.Name, "error", err)
		return
	}

	var eligible []domain.Article
	for _, article := range articles {
		if article.QualityScore >= m.qualityThreshold && !article.Included {
			eligible = append(eligible, article)
		}
	}
	if len(eligible) == 0 {
		return
	}

	err = m.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range eligible {
			eligible[i].Include()
			if err := m.store.UpdateProcessing(txCtx, &eligible[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		m.logger.Error("error marking articles for downstream", "source", source.Name, "error", err)
		return
	}

	if m.publisher != nil {
		for i := range eligible {
			if err := m.publisher.PublishInclusion(ctx, &eligible[i], true); err != nil {
				m.logger.Error("error publishing inclusion", "dedup_key", eligible[i].DedupKey, "error", err)
			}
		}
	}

	m.logger.Info("marked articles for downstream delivery", "source", source.Name, "count", len(eligible))
}

func (m *SyncManager) recordOutcome(ctx context.Context, source domain.FeedSource, syncedAt time.Time, result domain.SourceSyncResult) {
	status := "success"
	if !result.Success {
		status = "failed: " + result.ErrorMessage
	}
	nextDue := syncedAt.Add(source.Cadence.Interval())

	if err := m.registry.RecordSyncOutcome(ctx, source.ID, syncedAt, nextDue, status); err != nil {
		m.logger.Error("error recording sync outcome", "source", source.Name, "error", err)
	}
}

func truncateSummary(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
