// Package tester validates feeds without persisting anything. It is used
// both for pre-save validation and for operator diagnostics.
package tester

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Volcanex/kindle-server/internal/config"
	"github.com/Volcanex/kindle-server/internal/content"
	"github.com/Volcanex/kindle-server/internal/domain"
	"github.com/Volcanex/kindle-server/internal/feed"
	"github.com/Volcanex/kindle-server/internal/quality"
)

const staleFeedAge = 30 * 24 * time.Hour

// Tester runs the fetch/parse/extract/score stack against a single feed
// and reports its health.
type Tester struct {
	client    *feed.Client
	parser    *feed.Parser
	extractor *content.Extractor
	logger    *slog.Logger
}

func New(client *feed.Client, parser *feed.Parser, extractor *content.Extractor, logger *slog.Logger) *Tester {
	return &Tester{
		client:    client,
		parser:    parser,
		extractor: extractor,
		logger:    logger,
	}
}

// TestFeed tests a feed end to end. It always returns a structured result,
// never an error, so callers can display partial diagnostics on failure.
func (t *Tester) TestFeed(ctx context.Context, url string, cfg config.FeedConfiguration) domain.FeedTestResult {
	start := time.Now()
	result := domain.FeedTestResult{
		URL:      url,
		Metadata: map[string]any{},
	}

	if err := feed.ValidateURL(url); err != nil {
		result.Status = domain.HealthInvalid
		result.ErrorMessage = "invalid URL format"
		result.Duration = time.Since(start)
		return result
	}

	raw, meta, err := feed.FetchWithRetry(ctx, t.client, url, cfg.Timeout, cfg.CustomHeaders, cfg.RetryCount)
	if err != nil {
		if feed.IsTimeout(err) {
			result.Status = domain.HealthTimeout
			result.ErrorMessage = fmt.Sprintf("request timeout after %s", cfg.Timeout)
		} else {
			result.Status = domain.HealthError
			result.ErrorMessage = err.Error()
		}
		result.Duration = time.Since(start)
		return result
	}

	parsed, warnings, err := t.parser.Parse(raw)
	if err != nil {
		result.Status = domain.HealthError
		if errors.Is(err, feed.ErrInvalidFeed) {
			result.ErrorMessage = "invalid feed structure"
		} else {
			result.ErrorMessage = err.Error()
		}
		result.Warnings = warnings
		result.Duration = time.Since(start)
		return result
	}

	result.Title = parsed.Title
	if result.Title == "" {
		result.Title = feed.DomainName(url)
	}
	result.Description = parsed.Description
	result.LastUpdated = parsed.Updated
	result.ArticleCount = len(parsed.Entries)
	result.Warnings = warnings
	result.Metadata = t.metadata(parsed, meta, cfg)

	if len(parsed.Entries) == 0 {
		result.Status = domain.HealthError
		result.ErrorMessage = "feed contains no entries"
		result.Duration = time.Since(start)
		return result
	}

	limit := cfg.MaxArticles
	if limit > len(parsed.Entries) {
		limit = len(parsed.Entries)
	}
	for _, entry := range parsed.Entries[:limit] {
		if sample := t.testEntry(entry, cfg); sample != nil {
			result.SampleArticles = append(result.SampleArticles, *sample)
		}
	}

	result.Success = true
	result.Status = determineStatus(result.SampleArticles, warnings)
	result.Duration = time.Since(start)

	t.logger.Debug("feed test finished",
		"url", url,
		"status", result.Status,
		"articles", result.ArticleCount,
		"samples", len(result.SampleArticles),
		"duration", result.Duration,
	)

	return result
}

// TestFeeds tests several feeds sequentially.
func (t *Tester) TestFeeds(ctx context.Context, urls []string, cfg config.FeedConfiguration) []domain.FeedTestResult {
	results := make([]domain.FeedTestResult, 0, len(urls))
	for _, url := range urls {
		results = append(results, t.TestFeed(ctx, url, cfg))
	}
	return results
}

// ValidateBeforeSave runs a live test plus the save-time-only checks: a
// feed with zero articles or no updates in 30 days is rejected even when
// the test itself succeeds. Nothing is persisted.
func (t *Tester) ValidateBeforeSave(ctx context.Context, url string, cfg config.FeedConfiguration) (bool, string, map[string]any) {
	result := t.TestFeed(ctx, url, cfg)

	if !result.Success {
		return false, result.ErrorMessage, map[string]any{}
	}
	if result.ArticleCount == 0 {
		return false, "feed contains no articles", map[string]any{}
	}
	if result.Status == domain.HealthError {
		return false, "feed failed health check", map[string]any{}
	}
	if result.LastUpdated != nil && time.Since(*result.LastUpdated) > staleFeedAge {
		return false, "feed appears to be inactive (no updates in 30 days)", map[string]any{}
	}

	return true, "", result.Metadata
}

// testEntry scores one sampled entry. Entries failing the content filters
// or the quality threshold are silently excluded from the sample.
func (t *Tester) testEntry(entry feed.Entry, cfg config.FeedConfiguration) *domain.SampleArticle {
	if entry.Title == "" {
		return nil
	}

	text := t.extractor.Extract(entry)
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	for _, filter := range cfg.ContentFilters {
		if strings.Contains(lower, strings.ToLower(filter)) {
			return nil
		}
	}

	wordCount := quality.WordCount(text)
	score := quality.ScoreSample(entry.Title, text, entry.Author, wordCount)
	if score < cfg.QualityThreshold {
		return nil
	}

	return &domain.SampleArticle{
		Title:        entry.Title,
		Content:      truncate(text, 500),
		Author:       entry.Author,
		Category:     entry.Category,
		SourceURL:    entry.Link,
		PublishedAt:  entry.Published,
		WordCount:    wordCount,
		ReadingTime:  quality.ReadingTime(wordCount),
		QualityScore: score,
	}
}

// determineStatus computes terminal feed health from the sample and the
// parse warnings. An empty sample means nothing usable came out of the
// feed even though it parsed.
func determineStatus(samples []domain.SampleArticle, warnings []string) domain.FeedHealth {
	if len(samples) == 0 {
		return domain.HealthError
	}
	if len(warnings) > 0 {
		return domain.HealthWarning
	}

	var total float64
	for _, s := range samples {
		total += s.QualityScore
	}
	if total/float64(len(samples)) < 0.4 {
		return domain.HealthWarning
	}

	return domain.HealthHealthy
}

func (t *Tester) metadata(parsed *feed.ParsedFeed, meta *feed.ResponseMeta, cfg config.FeedConfiguration) map[string]any {
	m := map[string]any{
		"feed_format": parsed.FeedType,
		"generator":   parsed.Generator,
		"language":    parsed.Language,
		"config_used": map[string]any{
			"max_articles":      cfg.MaxArticles,
			"timeout":           cfg.Timeout.String(),
			"quality_threshold": cfg.QualityThreshold,
		},
	}
	if meta != nil {
		m["content_type"] = meta.ContentType
		m["server"] = meta.Header.Get("Server")
		m["cache_control"] = meta.Header.Get("Cache-Control")
		m["etag"] = meta.Header.Get("ETag")
		m["last_modified"] = meta.Header.Get("Last-Modified")
	}
	return m
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
