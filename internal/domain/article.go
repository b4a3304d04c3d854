package domain

import "time"

// ArticleStatus tracks an article through the processing pipeline.
// Transitions: pending -> processed -> included|excluded. No other
// transitions are performed by this core.
type ArticleStatus string

const (
	StatusPending   ArticleStatus = "pending"
	StatusProcessed ArticleStatus = "processed"
	StatusIncluded  ArticleStatus = "included"
	StatusExcluded  ArticleStatus = "excluded"
)

// Article is the persisted, cleaned and scored representation of a feed
// entry. The dedup key is derived once from (feed URL, entry identity)
// and never recomputed after creation.
type Article struct {
	ID             int64         `db:"id"`
	DedupKey       string        `db:"dedup_key"`
	Title          string        `db:"title"`
	Content        string        `db:"content"`
	Summary        string        `db:"summary"`
	SourceName     string        `db:"source_name"`
	SourceURL      string        `db:"source_url"`
	FeedURL        string        `db:"feed_url"`
	Author         string        `db:"author"`
	Category       string        `db:"category"`
	PublishedAt    time.Time     `db:"published_at"`
	WordCount      int           `db:"word_count"`
	ReadingTime    int           `db:"reading_time"`
	QualityScore   float64       `db:"quality_score"`
	Status         ArticleStatus `db:"status"`
	Included       bool          `db:"included"`
	ProcessingNote string        `db:"processing_note"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

// MarkProcessed records that the scoring pass has run.
func (a *Article) MarkProcessed() {
	a.Status = StatusProcessed
}

// Include marks the article eligible for downstream publication.
func (a *Article) Include() {
	a.Included = true
	a.Status = StatusIncluded
}

// Exclude withholds the article from downstream publication.
func (a *Article) Exclude(reason string) {
	a.Included = false
	a.Status = StatusExcluded
	if reason != "" {
		a.ProcessingNote = reason
	}
}
