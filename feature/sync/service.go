package sync

import (
	"context"
	"errors"
	"fmt"
	stdsync "sync"
	"time"

	"aoe4-sync/core/metrics"
	"aoe4-sync/feature/aoe4world"
	"aoe4-sync/feature/stats"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrRunInProgress is returned when a run is requested while another one is active.
var ErrRunInProgress = errors.New("sync run already in progress")

// ErrUnknownMode is returned for a run mode other than full or quick.
var ErrUnknownMode = errors.New("unknown sync mode")

// StatsSource fetches upstream datasets.
type StatsSource interface {
	GetCivStats(ctx context.Context, leaderboard, rankLevel string) ([]aoe4world.CivStat, error)
	GetTopPlayers(ctx context.Context, leaderboard string, count int) ([]aoe4world.LeaderboardEntry, error)
}

// StatsStore persists reshaped datasets.
type StatsStore interface {
	UpsertCivMetaStats(ctx context.Context, rows []stats.MetaStatRow) (stats.UpsertResult, error)
	UpsertLeaderboardPlayers(ctx context.Context, players []stats.LeaderboardPlayer) (int, error)
}

// Service runs fetch, reshape and upsert for each dataset. Datasets are processed one at
// a time; a failed dataset is reported and the next one proceeds.
type Service struct {
	source  StatsSource
	store   StatsStore
	archive *Archive
	logger  *zap.Logger
	cfg     Config
	now     func() time.Time

	running stdsync.Mutex

	mu   stdsync.RWMutex
	last *Report
}

// Option customises a Service.
type Option func(*Service)

// WithArchive stores every fetched dataset in the snapshot archive.
func WithArchive(a *Archive) Option {
	return func(s *Service) { s.archive = a }
}

// WithConfig sets the run defaults.
func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

// WithClock sets the clock used for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a sync service over source and store.
func NewService(source StatsSource, store StatsStore, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		source: source,
		store:  store,
		logger: logger,
		cfg:    Config{LeaderboardCount: 50},
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type runIDKey struct{}

func withRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

func runIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey{}).(string); ok {
		return id
	}
	return ""
}

func newRunID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func ensureRunID(ctx context.Context) context.Context {
	if runIDFrom(ctx) != "" {
		return ctx
	}
	return withRunID(ctx, newRunID())
}

// SyncCivMetaStats syncs every (leaderboard, rank level) pair. Empty lists default to all
// known values. Each pair is fetched and upserted as one batch.
func (s *Service) SyncCivMetaStats(ctx context.Context, leaderboards, rankLevels []string) MetaStatsResult {
	ctx = ensureRunID(ctx)
	if len(leaderboards) == 0 {
		leaderboards = aoe4world.Leaderboards()
	}
	if len(rankLevels) == 0 {
		rankLevels = aoe4world.RankLevels()
	}

	s.logger.Info("Syncing civilization meta stats",
		zap.Strings("leaderboards", leaderboards),
		zap.Strings("rank_levels", rankLevels),
	)

	var res MetaStatsResult
	for _, lb := range leaderboards {
		for _, rank := range rankLevels {
			dataset := statsDataset(lb, rank)
			if err := ctx.Err(); err != nil {
				res.Failed = append(res.Failed, s.failure(dataset, err))
				continue
			}
			written, dropped, err := s.syncCivStatsPair(ctx, lb, rank)
			res.Dropped += dropped
			if err != nil {
				res.Failed = append(res.Failed, s.failure(dataset, err))
				continue
			}
			res.Written += written
		}
	}

	s.logger.Info("Civilization meta stats synced",
		zap.Int("written", res.Written),
		zap.Int("dropped", res.Dropped),
		zap.Int("failed", len(res.Failed)),
	)
	return res
}

// SyncCivMetaStatsQuick syncs rm_solo for all ranks combined.
func (s *Service) SyncCivMetaStatsQuick(ctx context.Context) MetaStatsResult {
	return s.SyncCivMetaStats(ctx, []string{aoe4world.LeaderboardRMSolo}, []string{aoe4world.RankAll})
}

func (s *Service) syncCivStatsPair(ctx context.Context, leaderboard, rankLevel string) (int, int, error) {
	civStats, err := s.source.GetCivStats(ctx, leaderboard, rankLevel)
	if err != nil {
		return 0, 0, fmt.Errorf("fetch civ stats: %w", err)
	}
	s.archiveDataset(ctx, statsDataset(leaderboard, rankLevel), civStats)

	rows := make([]stats.MetaStatRow, 0, len(civStats))
	for _, cs := range civStats {
		rows = append(rows, stats.MetaStatRow{
			Civ:         cs.Name(),
			Leaderboard: leaderboard,
			RankLevel:   rankLevel,
			WinRate:     cs.WinRate,
			PickRate:    cs.PickRate,
			GamesCount:  cs.GamesCount,
			Wins:        cs.Wins,
			Losses:      cs.Losses,
			AvgDuration: cs.DurationAverage,
			Patch:       string(cs.Patch),
		})
	}

	res, err := s.store.UpsertCivMetaStats(ctx, rows)
	metrics.RecordDropped(res.Dropped)
	if err != nil {
		return 0, res.Dropped, fmt.Errorf("upsert civ stats: %w", err)
	}
	metrics.RecordWritten("civ_meta_stats", res.Written)
	s.logger.Debug("Synced civ stats dataset",
		zap.String("leaderboard", leaderboard),
		zap.String("rank_level", rankLevel),
		zap.Int("written", res.Written),
		zap.Int("dropped", res.Dropped),
	)
	return res.Written, res.Dropped, nil
}

// SyncLeaderboard syncs the top count players of one leaderboard and returns the number written.
func (s *Service) SyncLeaderboard(ctx context.Context, leaderboard string, count int) (int, error) {
	ctx = ensureRunID(ctx)
	if count <= 0 {
		count = s.cfg.leaderboardCount()
	}
	s.logger.Info("Syncing leaderboard", zap.String("leaderboard", leaderboard), zap.Int("count", count))

	entries, err := s.source.GetTopPlayers(ctx, leaderboard, count)
	if err != nil {
		return 0, fmt.Errorf("fetch leaderboard %s: %w", leaderboard, err)
	}
	s.archiveDataset(ctx, leaderboardDataset(leaderboard), entries)

	players := make([]stats.LeaderboardPlayer, 0, len(entries))
	for _, e := range entries {
		players = append(players, stats.LeaderboardPlayer{
			PlayerID:    e.ProfileID,
			PlayerName:  e.Name,
			Rank:        e.Rank,
			Rating:      e.Rating,
			GamesCount:  e.GamesCount,
			Wins:        e.Wins,
			Losses:      e.Losses,
			WinRate:     e.WinRate,
			Leaderboard: leaderboard,
		})
	}

	n, err := s.store.UpsertLeaderboardPlayers(ctx, players)
	if err != nil {
		return 0, fmt.Errorf("upsert leaderboard %s: %w", leaderboard, err)
	}
	metrics.RecordWritten("leaderboard_players", n)
	s.logger.Info("Leaderboard synced", zap.String("leaderboard", leaderboard), zap.Int("players", n))
	return n, nil
}

// SyncAllLeaderboards syncs every known leaderboard. A failed leaderboard is
// left out of Counts and listed in Failed.
func (s *Service) SyncAllLeaderboards(ctx context.Context, count int) LeaderboardsResult {
	return s.syncLeaderboards(ctx, aoe4world.Leaderboards(), count)
}

func (s *Service) syncLeaderboards(ctx context.Context, leaderboards []string, count int) LeaderboardsResult {
	ctx = ensureRunID(ctx)
	res := LeaderboardsResult{Counts: make(map[string]int, len(leaderboards))}
	for _, lb := range leaderboards {
		if err := ctx.Err(); err != nil {
			res.Failed = append(res.Failed, s.failure(leaderboardDataset(lb), err))
			continue
		}
		n, err := s.SyncLeaderboard(ctx, lb, count)
		if err != nil {
			res.Failed = append(res.Failed, s.failure(leaderboardDataset(lb), err))
			continue
		}
		res.Counts[lb] = n
	}
	return res
}

// SyncAll runs the meta-stats sync followed by the leaderboards sync. Config.Leaderboards
// and Config.RankLevels narrow both when set.
func (s *Service) SyncAll(ctx context.Context) *Report {
	ctx = ensureRunID(ctx)
	report := &Report{RunID: runIDFrom(ctx), Mode: ModeFull, StartedAt: s.now()}
	s.logger.Info("Full sync started", zap.String("run_id", report.RunID))

	report.MetaStats = s.SyncCivMetaStats(ctx, s.cfg.Leaderboards, s.cfg.RankLevels)
	leaderboards := s.cfg.Leaderboards
	if len(leaderboards) == 0 {
		leaderboards = aoe4world.Leaderboards()
	}
	report.Leaderboards = s.syncLeaderboards(ctx, leaderboards, s.cfg.leaderboardCount())

	s.complete(ctx, report)
	return report
}

// SyncQuick runs the rm_solo meta-stats sync and the rm_solo leaderboard.
func (s *Service) SyncQuick(ctx context.Context) *Report {
	ctx = ensureRunID(ctx)
	report := &Report{RunID: runIDFrom(ctx), Mode: ModeQuick, StartedAt: s.now()}
	s.logger.Info("Quick sync started", zap.String("run_id", report.RunID))

	report.MetaStats = s.SyncCivMetaStatsQuick(ctx)
	report.Leaderboards = LeaderboardsResult{Counts: map[string]int{}}
	lb := aoe4world.LeaderboardRMSolo
	if n, err := s.SyncLeaderboard(ctx, lb, s.cfg.leaderboardCount()); err != nil {
		report.Leaderboards.Failed = append(report.Leaderboards.Failed, s.failure(leaderboardDataset(lb), err))
	} else {
		report.Leaderboards.Counts[lb] = n
	}

	s.complete(ctx, report)
	return report
}

// Run executes one run of mode unless another run is active.
func (s *Service) Run(ctx context.Context, mode string) (*Report, error) {
	fn, err := s.runner(mode)
	if err != nil {
		return nil, err
	}
	if !s.running.TryLock() {
		return nil, ErrRunInProgress
	}
	defer s.running.Unlock()
	return fn(ctx), nil
}

// Start launches a run in the background and returns its id.
func (s *Service) Start(mode string) (string, error) {
	fn, err := s.runner(mode)
	if err != nil {
		return "", err
	}
	if !s.running.TryLock() {
		return "", ErrRunInProgress
	}
	runID := newRunID()
	go func() {
		defer s.running.Unlock()
		fn(withRunID(context.Background(), runID))
	}()
	return runID, nil
}

func (s *Service) runner(mode string) (func(context.Context) *Report, error) {
	switch mode {
	case ModeFull, "":
		return s.SyncAll, nil
	case ModeQuick:
		return s.SyncQuick, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// LastReport returns the report of the most recent finished run, or nil.
func (s *Service) LastReport() *Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Archive returns the snapshot archive, or nil when archiving is off.
func (s *Service) Archive() *Archive {
	return s.archive
}

func (s *Service) complete(ctx context.Context, report *Report) {
	report.finish(s.now())
	metrics.ObserveSync(report.Mode, report.StartedAt)

	if s.archive != nil && s.cfg.SnapshotRetention > 0 {
		if removed, err := s.archive.Prune(ctx, s.cfg.SnapshotRetention); err != nil {
			s.logger.Warn("Snapshot pruning failed", zap.Error(err))
		} else if removed > 0 {
			s.logger.Info("Pruned snapshots", zap.Int("objects", removed))
		}
	}

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	fields := []zap.Field{
		zap.String("run_id", report.RunID),
		zap.String("mode", report.Mode),
		zap.Int("civ_meta_stats", report.MetaStats.Written),
		zap.Int("dropped", report.MetaStats.Dropped),
		zap.Int("total_players", report.TotalPlayers),
		zap.Strings("failed", report.Failed),
		zap.String("duration", report.Duration),
	}
	if report.OK() {
		s.logger.Info("Sync completed", fields...)
	} else {
		s.logger.Warn("Sync completed with failures", fields...)
	}
}

func (s *Service) failure(dataset string, err error) DatasetFailure {
	metrics.RecordFailure(dataset)
	s.logger.Error("Dataset sync failed", zap.String("dataset", dataset), zap.Error(err))
	return DatasetFailure{Dataset: dataset, Error: err.Error()}
}

func (s *Service) archiveDataset(ctx context.Context, dataset string, payload any) {
	if s.archive == nil {
		return
	}
	if err := s.archive.Put(ctx, runIDFrom(ctx), dataset, payload); err != nil {
		s.logger.Warn("Failed to archive dataset", zap.String("dataset", dataset), zap.Error(err))
	}
}
