package config

import (
	"fmt"
	"time"

	"github.com/Volcanex/kindle-server/internal/domain"
)

// FeedConfiguration carries per-operation fetch and filtering options. It
// is a value object supplied by the caller per call; Validate enforces
// the bounds once at the boundary instead of at every point of use.
type FeedConfiguration struct {
	MaxArticles      int
	Timeout          time.Duration
	RetryCount       int
	QualityThreshold float64
	ContentFilters   []string
	CustomHeaders    map[string]string
	UpdateFrequency  domain.Cadence
}

// DefaultFeedConfiguration returns the configuration used when a caller
// supplies none.
func DefaultFeedConfiguration() FeedConfiguration {
	return FeedConfiguration{
		MaxArticles:      10,
		Timeout:          30 * time.Second,
		RetryCount:       3,
		QualityThreshold: 0.3,
		UpdateFrequency:  domain.CadenceDaily,
	}
}

// Validate checks the configuration bounds. A zero-value field is invalid;
// build on DefaultFeedConfiguration when only overriding part of it.
func (c FeedConfiguration) Validate() error {
	if c.MaxArticles < 1 || c.MaxArticles > 100 {
		return fmt.Errorf("max_articles %d out of range [1,100]", c.MaxArticles)
	}
	if c.Timeout < 5*time.Second || c.Timeout > 120*time.Second {
		return fmt.Errorf("timeout %s out of range [5s,120s]", c.Timeout)
	}
	if c.RetryCount < 1 || c.RetryCount > 5 {
		return fmt.Errorf("retry_count %d out of range [1,5]", c.RetryCount)
	}
	if c.QualityThreshold < 0 || c.QualityThreshold > 1 {
		return fmt.Errorf("quality_threshold %f out of range [0,1]", c.QualityThreshold)
	}
	return nil
}
