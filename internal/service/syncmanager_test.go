package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Volcanex/kindle-server/internal/config"
	"github.com/Volcanex/kindle-server/internal/domain"
	"github.com/Volcanex/kindle-server/internal/service/mocks"
)

type SyncManagerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	aggregator *mocks.MockFeedAggregator
	validator  *mocks.MockFeedValidator
	store      *mocks.MockArticleStore
	registry   *mocks.MockSourceRegistry
	publisher  *mocks.MockPublisher
	txManager  *mocks.MockTransactionManager

	manager *SyncManager
	logger  *slog.Logger
}

func (s *SyncManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.aggregator = mocks.NewMockFeedAggregator(s.ctrl)
	s.validator = mocks.NewMockFeedValidator(s.ctrl)
	s.store = mocks.NewMockArticleStore(s.ctrl)
	s.registry = mocks.NewMockSourceRegistry(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.manager = NewSyncManager(
		s.aggregator,
		s.validator,
		s.store,
		s.registry,
		s.publisher,
		s.txManager,
		s.logger,
		config.SyncConfig{
			Interval:         15 * time.Minute,
			Workers:          2,
			QualityThreshold: 0.3,
			CleanupDays:      30,
			DownstreamHours:  24,
		},
	)
}

func (s *SyncManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncManagerTestSuite(t *testing.T) {
	suite.Run(t, new(SyncManagerTestSuite))
}

func testSource(id int64, cadence domain.Cadence, lastSync time.Time) domain.FeedSource {
	return domain.FeedSource{
		ID:       id,
		URL:      "https://example.com/feed.xml",
		Name:     "Example Feed",
		Active:   true,
		Cadence:  cadence,
		LastSync: lastSync,
	}
}

func (s *SyncManagerTestSuite) TestShouldSync_ForceAlwaysRuns() {
	source := testSource(1, domain.CadenceDaily, time.Now())
	s.True(s.manager.ShouldSync(source, true))
}

func (s *SyncManagerTestSuite) TestShouldSync_InactiveNeverRuns() {
	source := testSource(1, domain.CadenceDaily, time.Time{})
	source.Active = false
	s.False(s.manager.ShouldSync(source, false))
}

func (s *SyncManagerTestSuite) TestShouldSync_NeverSyncedIsDue() {
	source := testSource(1, domain.CadenceDaily, time.Time{})
	s.True(s.manager.ShouldSync(source, false))
}

func (s *SyncManagerTestSuite) TestShouldSync_RecentSyncNotDue() {
	source := testSource(1, domain.CadenceDaily, time.Now().Add(-time.Hour))
	s.False(s.manager.ShouldSync(source, false))
}

func (s *SyncManagerTestSuite) TestShouldSync_OverdueByCadence() {
	hourly := testSource(1, domain.CadenceHourly, time.Now().Add(-2*time.Hour))
	s.True(s.manager.ShouldSync(hourly, false))

	daily := testSource(2, domain.CadenceDaily, time.Now().Add(-2*time.Hour))
	s.False(s.manager.ShouldSync(daily, false))

	weekly := testSource(3, domain.CadenceWeekly, time.Now().Add(-8*24*time.Hour))
	s.True(s.manager.ShouldSync(weekly, false))
}

func (s *SyncManagerTestSuite) TestSyncSourceArticles_Success() {
	ctx := context.Background()
	source := testSource(1, domain.CadenceDaily, time.Time{})

	s.validator.EXPECT().ValidateBeforeSave(gomock.Any(), source.URL, gomock.Any()).
		Return(true, "", map[string]any{})
	s.aggregator.EXPECT().AggregateFeed(gomock.Any(), source.URL, true, source.Cadence.DefaultMaxArticles()).
		Return(&domain.FeedResult{Found: 5, Added: 3, Updated: 2}, nil)
	s.aggregator.EXPECT().ProcessNewArticles(gomock.Any()).Return(3, nil)
	s.store.EXPECT().ListRecentBySource(gomock.Any(), source.Name, gomock.Any()).Return(nil, nil)
	s.registry.EXPECT().RecordSyncOutcome(gomock.Any(), source.ID, gomock.Any(), gomock.Any(), "success").
		Return(nil)

	result := s.manager.SyncSourceArticles(ctx, source, nil)

	s.True(result.Success)
	s.Equal(5, result.Found)
	s.Equal(3, result.Added)
	s.Equal(2, result.Updated)
	s.Empty(result.ErrorMessage)
}

func (s *SyncManagerTestSuite) TestSyncSourceArticles_MarksEligibleForDownstream() {
	ctx := context.Background()
	source := testSource(1, domain.CadenceDaily, time.Time{})

	recent := []domain.Article{
		{ID: 1, DedupKey: "good", QualityScore: 0.6, Status: domain.StatusProcessed},
		{ID: 2, DedupKey: "poor", QualityScore: 0.1, Status: domain.StatusProcessed},
		{ID: 3, DedupKey: "done", QualityScore: 0.8, Included: true, Status: domain.StatusIncluded},
	}

	s.validator.EXPECT().ValidateBeforeSave(gomock.Any(), source.URL, gomock.Any()).
		Return(true, "", map[string]any{})
	s.aggregator.EXPECT().AggregateFeed(gomock.Any(), source.URL, true, gomock.Any()).
		Return(&domain.FeedResult{Found: 3, Added: 3}, nil)
	s.aggregator.EXPECT().ProcessNewArticles(gomock.Any()).Return(3, nil)
	s.store.EXPECT().ListRecentBySource(gomock.Any(), source.Name, gomock.Any()).Return(recent, nil)

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	s.store.EXPECT().UpdateProcessing(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, article *domain.Article) error {
			s.Equal("good", article.DedupKey)
			s.True(article.Included)
			s.Equal(domain.StatusIncluded, article.Status)
			return nil
		})
	s.publisher.EXPECT().PublishInclusion(gomock.Any(), gomock.Any(), true).Return(nil)
	s.registry.EXPECT().RecordSyncOutcome(gomock.Any(), source.ID, gomock.Any(), gomock.Any(), "success").
		Return(nil)

	result := s.manager.SyncSourceArticles(ctx, source, nil)
	s.True(result.Success)
}

func (s *SyncManagerTestSuite) TestSyncSourceArticles_ValidationFailure() {
	ctx := context.Background()
	source := testSource(1, domain.CadenceDaily, time.Time{})

	s.validator.EXPECT().ValidateBeforeSave(gomock.Any(), source.URL, gomock.Any()).
		Return(false, "feed contains no articles", map[string]any{})
	s.registry.EXPECT().RecordSyncOutcome(gomock.Any(), source.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _, _ time.Time, status string) error {
			s.True(strings.HasPrefix(status, "failed:"))
			s.Contains(status, "feed contains no articles")
			return nil
		})

	result := s.manager.SyncSourceArticles(ctx, source, nil)

	s.False(result.Success)
	s.Contains(result.ErrorMessage, "feed validation failed")
}

func (s *SyncManagerTestSuite) TestSyncSourceArticles_AggregateFailure() {
	ctx := context.Background()
	source := testSource(1, domain.CadenceDaily, time.Time{})

	s.validator.EXPECT().ValidateBeforeSave(gomock.Any(), source.URL, gomock.Any()).
		Return(true, "", map[string]any{})
	s.aggregator.EXPECT().AggregateFeed(gomock.Any(), source.URL, true, gomock.Any()).
		Return(nil, errors.New("fetch feed: connection refused"))
	s.registry.EXPECT().RecordSyncOutcome(gomock.Any(), source.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	result := s.manager.SyncSourceArticles(ctx, source, nil)

	s.False(result.Success)
	s.Contains(result.ErrorMessage, "connection refused")
}

func (s *SyncManagerTestSuite) TestSyncSourceArticles_InvalidConfiguration() {
	ctx := context.Background()
	source := testSource(1, domain.CadenceDaily, time.Time{})

	cfg := config.DefaultFeedConfiguration()
	cfg.MaxArticles = 500

	result := s.manager.SyncSourceArticles(ctx, source, &cfg)

	s.False(result.Success)
	s.Contains(result.ErrorMessage, "invalid configuration")
}

func (s *SyncManagerTestSuite) TestSyncSourceArticles_RecordsNextDueFromCadence() {
	ctx := context.Background()
	source := testSource(1, domain.CadenceHourly, time.Time{})

	s.validator.EXPECT().ValidateBeforeSave(gomock.Any(), source.URL, gomock.Any()).
		Return(true, "", map[string]any{})
	s.aggregator.EXPECT().AggregateFeed(gomock.Any(), source.URL, true, gomock.Any()).
		Return(&domain.FeedResult{}, nil)
	s.aggregator.EXPECT().ProcessNewArticles(gomock.Any()).Return(0, nil)
	s.store.EXPECT().ListRecentBySource(gomock.Any(), source.Name, gomock.Any()).Return(nil, nil)
	s.registry.EXPECT().RecordSyncOutcome(gomock.Any(), source.ID, gomock.Any(), gomock.Any(), "success").
		DoAndReturn(func(_ context.Context, _ int64, syncedAt, nextDue time.Time, _ string) error {
			s.WithinDuration(syncedAt.Add(time.Hour), nextDue, time.Second)
			return nil
		})

	s.manager.SyncSourceArticles(ctx, source, nil)
}

func (s *SyncManagerTestSuite) TestSyncAllDueSources_SkipsNotDue() {
	ctx := context.Background()

	due := testSource(1, domain.CadenceDaily, time.Time{})
	recent := testSource(2, domain.CadenceDaily, time.Now().Add(-time.Hour))
	inactive := testSource(3, domain.CadenceDaily, time.Time{})
	inactive.Active = false

	s.validator.EXPECT().ValidateBeforeSave(gomock.Any(), due.URL, gomock.Any()).
		Return(true, "", map[string]any{})
	s.aggregator.EXPECT().AggregateFeed(gomock.Any(), due.URL, true, gomock.Any()).
		Return(&domain.FeedResult{Found: 2, Added: 2}, nil)
	s.aggregator.EXPECT().ProcessNewArticles(gomock.Any()).Return(2, nil)
	s.store.EXPECT().ListRecentBySource(gomock.Any(), due.Name, gomock.Any()).Return(nil, nil)
	s.registry.EXPECT().RecordSyncOutcome(gomock.Any(), due.ID, gomock.Any(), gomock.Any(), "success").
		Return(nil)

	batch := s.manager.SyncAllDueSources(ctx, []domain.FeedSource{due, recent, inactive}, false)

	s.Equal(3, batch.TotalSources)
	s.Equal(1, batch.Synced)
	s.Equal(2, batch.Skipped)
	s.Equal(0, batch.Failed)
	s.Equal(2, batch.ArticlesAdded)
	s.Len(batch.Results, 1)
	s.False(batch.CompletedAt.IsZero())
}

func (s *SyncManagerTestSuite) TestSyncAllDueSources_FailureIsolation() {
	ctx := context.Background()

	good := testSource(1, domain.CadenceDaily, time.Time{})
	bad := testSource(2, domain.CadenceDaily, time.Time{})
	bad.URL = "https://bad.example.com/feed.xml"
	bad.Name = "Bad Feed"

	s.validator.EXPECT().ValidateBeforeSave(gomock.Any(), good.URL, gomock.Any()).
		Return(true, "", map[string]any{})
	s.aggregator.EXPECT().AggregateFeed(gomock.Any(), good.URL, true, gomock.Any()).
		Return(&domain.FeedResult{Found: 1, Added: 1}, nil)
	s.aggregator.EXPECT().ProcessNewArticles(gomock.Any()).Return(1, nil)
	s.store.EXPECT().ListRecentBySource(gomock.Any(), good.Name, gomock.Any()).Return(nil, nil)

	s.validator.EXPECT().ValidateBeforeSave(gomock.Any(), bad.URL, gomock.Any()).
		Return(false, "invalid feed structure", map[string]any{})

	s.registry.EXPECT().RecordSyncOutcome(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)

	batch := s.manager.SyncAllDueSources(ctx, []domain.FeedSource{good, bad}, false)

	s.Equal(1, batch.Synced)
	s.Equal(1, batch.Failed)
	s.Equal(1, batch.ArticlesAdded)
	s.Len(batch.Results, 2)
}

func (s *SyncManagerTestSuite) TestSyncAllDueSources_ForceSyncsEverything() {
	ctx := context.Background()

	recent := testSource(1, domain.CadenceDaily, time.Now().Add(-time.Minute))

	s.validator.EXPECT().ValidateBeforeSave(gomock.Any(), recent.URL, gomock.Any()).
		Return(true, "", map[string]any{})
	s.aggregator.EXPECT().AggregateFeed(gomock.Any(), recent.URL, true, gomock.Any()).
		Return(&domain.FeedResult{}, nil)
	s.aggregator.EXPECT().ProcessNewArticles(gomock.Any()).Return(0, nil)
	s.store.EXPECT().ListRecentBySource(gomock.Any(), recent.Name, gomock.Any()).Return(nil, nil)
	s.registry.EXPECT().RecordSyncOutcome(gomock.Any(), recent.ID, gomock.Any(), gomock.Any(), "success").
		Return(nil)

	batch := s.manager.SyncAllDueSources(ctx, []domain.FeedSource{recent}, true)

	s.Equal(1, batch.Synced)
	s.Equal(0, batch.Skipped)
}

func (s *SyncManagerTestSuite) TestSyncDue_ListError() {
	s.registry.EXPECT().ListSources(gomock.Any(), false).Return(nil, errors.New("db down"))

	_, err := s.manager.SyncDue(context.Background(), false)
	s.Error(err)
}

func (s *SyncManagerTestSuite) TestGetArticlesForDownstreamWindow_GroupsAndSorts() {
	articles := []domain.Article{
		{ID: 1, SourceName: "Small Source", Summary: "short"},
		{ID: 2, SourceName: "Big Source", Summary: strings.Repeat("x", 300)},
		{ID: 3, SourceName: "Big Source", Summary: "another"},
	}

	s.store.EXPECT().ListIncludedSince(gomock.Any(), gomock.Any(), 0.3).Return(articles, nil)

	groups, err := s.manager.GetArticlesForDownstreamWindow(context.Background(), 24)
	s.NoError(err)

	s.Require().Len(groups, 2)
	s.Equal("Big Source", groups[0].SourceName)
	s.Equal(2, groups[0].ArticleCount)
	s.Equal("Small Source", groups[1].SourceName)
	s.Equal(1, groups[1].ArticleCount)

	long := groups[0].Articles[0].Summary
	s.LessOrEqual(len([]rune(long)), 203)
	s.True(strings.HasSuffix(long, "..."))
}

func (s *SyncManagerTestSuite) TestSyncStatistics() {
	stats := &domain.ArticleStats{
		TotalArticles:       100,
		ArticlesLast24h:     10,
		ArticlesForDelivery: 4,
		AverageQuality:      0.62,
	}
	s.store.EXPECT().Stats(gomock.Any(), gomock.Any()).Return(stats, nil)

	got, err := s.manager.SyncStatistics(context.Background())
	s.NoError(err)
	s.Equal(stats, got)
}

func (s *SyncManagerTestSuite) TestCleanupOldArticles() {
	s.store.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any(), true).DoAndReturn(
		func(_ context.Context, cutoff time.Time, _ bool) (int64, error) {
			s.WithinDuration(time.Now().AddDate(0, 0, -30), cutoff, time.Minute)
			return 5, nil
		})

	deleted, err := s.manager.CleanupOldArticles(context.Background(), 30)
	s.NoError(err)
	s.Equal(int64(5), deleted)
}
