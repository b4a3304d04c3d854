package domain

import "time"

// FeedHealth is the outcome of testing a feed. All states are terminal
// for a single test invocation.
type FeedHealth string

const (
	HealthHealthy FeedHealth = "healthy"
	HealthWarning FeedHealth = "warning"
	HealthError   FeedHealth = "error"
	HealthTimeout FeedHealth = "timeout"
	HealthInvalid FeedHealth = "invalid"
)

// SampleArticle is a scored entry captured during a feed test. Content is
// truncated for display.
type SampleArticle struct {
	Title        string
	Content      string
	Author       string
	Category     string
	SourceURL    string
	PublishedAt  *time.Time
	WordCount    int
	ReadingTime  int
	QualityScore float64
}

// FeedTestResult is the transient report of one feed test. It is produced
// and consumed within a single call and never persisted.
type FeedTestResult struct {
	URL            string
	Status         FeedHealth
	Success        bool
	Title          string
	Description    string
	ArticleCount   int
	LastUpdated    *time.Time
	ErrorMessage   string
	Warnings       []string
	Metadata       map[string]any
	Duration       time.Duration
	SampleArticles []SampleArticle
}
