package domain

import "time"

// Cadence is the configured re-fetch interval tier for a source.
type Cadence string

const (
	CadenceHourly  Cadence = "hourly"
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

// Interval returns the wait between syncs for the cadence. Unrecognized
// cadences fall back to daily.
func (c Cadence) Interval() time.Duration {
	switch c {
	case CadenceHourly:
		return time.Hour
	case CadenceDaily:
		return 24 * time.Hour
	case CadenceWeekly:
		return 7 * 24 * time.Hour
	case CadenceMonthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// DefaultMaxArticles returns how many articles a sync should pull when no
// explicit configuration is given. Slower cadences pull more per run.
func (c Cadence) DefaultMaxArticles() int {
	switch c {
	case CadenceHourly:
		return 5
	case CadenceDaily:
		return 10
	case CadenceWeekly:
		return 20
	case CadenceMonthly:
		return 30
	default:
		return 10
	}
}

// FeedSource is a registered feed with its sync cadence and bookkeeping.
// It is mutated only after a sync attempt resolves, never mid-flight.
type FeedSource struct {
	ID         int64     `db:"id"`
	URL        string    `db:"url"`
	Name       string    `db:"name"`
	Category   string    `db:"category"`
	Active     bool      `db:"active"`
	Cadence    Cadence   `db:"cadence"`
	LastSync   time.Time `db:"last_sync"` // zero value means never synced
	NextDue    time.Time `db:"next_due"`
	LastStatus string    `db:"last_status"`
	CreatedAt  time.Time `db:"created_at"`
}
