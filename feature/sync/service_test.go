package sync_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"aoe4-sync/core/database"
	"aoe4-sync/feature/aoe4world"
	"aoe4-sync/feature/stats"
	syncer "aoe4-sync/feature/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var referenceCivs = []stats.Civilization{
	{ID: "english", Name: "English"},
	{ID: "french", Name: "French"},
	{ID: "hre", Name: "Holy Roman Empire"},
	{ID: "rus", Name: "Rus"},
	{ID: "mongols", Name: "Mongols"},
	{ID: "chinese", Name: "Chinese"},
	{ID: "delhi", Name: "Delhi Sultanate"},
	{ID: "abbasid", Name: "Abbasid Dynasty"},
}

// upstream serves /stats/{lb} and /leaderboards/{lb}; failing lists datasets answered with 500.
type upstream struct {
	civs    []string
	players int
	failing map[string]bool
	calls   []string
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.calls = append(u.calls, r.URL.Path+"?"+r.URL.RawQuery)
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}
	switch parts[0] {
	case "stats":
		if u.failing["stats:"+parts[1]+":"+r.URL.Query().Get("rank_level")] {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		rows := make([]string, len(u.civs))
		for i, c := range u.civs {
			rows[i] = fmt.Sprintf(`{"civilization": %q, "win_rate": %d, "pick_rate": 4.5, "games_count": 100, "wins": 50, "losses": 50}`, c, 40+i)
		}
		fmt.Fprintf(w, `{"civilizations": [%s]}`, strings.Join(rows, ","))
	case "leaderboards":
		if u.failing["leaderboard:"+parts[1]] {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		size, _ := strconv.Atoi(r.URL.Query().Get("count"))
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		start := (page - 1) * size
		var rows []string
		for i := start; i < start+size && i < u.players; i++ {
			rows = append(rows, fmt.Sprintf(`{"profile_id": %d, "name": "p%d", "rank": %d, "rating": %d}`, 1000+i, i, i+1, 2500-i))
		}
		fmt.Fprintf(w, `{"players": [%s]}`, strings.Join(rows, ","))
	default:
		http.NotFound(w, r)
	}
}

type harness struct {
	service  *syncer.Service
	store    *stats.Store
	upstream *upstream
	logs     *observer.ObservedLogs
}

func newHarness(t *testing.T, up *upstream, opts ...syncer.Option) *harness {
	t.Helper()
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	core, logs := observer.New(zapcore.WarnLevel)
	store := stats.NewStore(db, zap.New(core))
	require.NoError(t, store.AutoMigrate(context.Background(), true))
	require.NoError(t, db.Create(&referenceCivs).Error)

	client := aoe4world.NewClient(aoe4world.Config{BaseURL: srv.URL, TimeoutSeconds: 5}, zap.NewNop(), aoe4world.WithoutThrottle())
	return &harness{
		service:  syncer.NewService(client, store, zap.NewNop(), opts...),
		store:    store,
		upstream: up,
		logs:     logs,
	}
}

func (h *harness) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, h.store.DB().Model(model).Count(&n).Error)
	return n
}

func eightKnownOneUnknown() []string {
	return []string{"english", "french", "holy_roman_empire", "rus", "mongols", "chinese", "delhi_sultanate", "abbasid_dynasty", "byzantines"}
}

func TestSyncLeaderboard_FiftyPlayers(t *testing.T) {
	h := newHarness(t, &upstream{players: 50})

	n, err := h.service.SyncLeaderboard(context.Background(), "rm_solo", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
	assert.Equal(t, int64(50), h.count(t, &stats.LeaderboardPlayer{}))

	players, err := h.store.LeaderboardPlayers(context.Background(), "rm_solo", 1)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, int64(1000), players[0].PlayerID)
	assert.Equal(t, "rm_solo", players[0].Leaderboard)
}

func TestSyncLeaderboard_UpstreamError(t *testing.T) {
	h := newHarness(t, &upstream{players: 50, failing: map[string]bool{"leaderboard:rm_solo": true}})

	n, err := h.service.SyncLeaderboard(context.Background(), "rm_solo", 50)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, aoe4world.ErrUpstreamRequest)

	var httpErr *aoe4world.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
}

func TestSyncCivMetaStats_EightKnownOneUnknown(t *testing.T) {
	h := newHarness(t, &upstream{civs: eightKnownOneUnknown()})

	res := h.service.SyncCivMetaStats(context.Background(), []string{"rm_solo"}, []string{"all"})
	assert.Equal(t, 8, res.Written)
	assert.Equal(t, 1, res.Dropped)
	assert.Empty(t, res.Failed)
	assert.Equal(t, int64(8), h.count(t, &stats.CivMetaStat{}))
	assert.Equal(t, 1, h.logs.FilterMessage("Dropping meta stat for unknown civilization").Len())
	assert.Equal(t, []string{"/stats/rm_solo?rank_level=all"}, h.upstream.calls)
}

func TestSyncCivMetaStats_Idempotent(t *testing.T) {
	h := newHarness(t, &upstream{civs: eightKnownOneUnknown()})
	ctx := context.Background()

	first := h.service.SyncCivMetaStats(ctx, []string{"rm_solo", "rm_team"}, []string{"all", "gold"})
	second := h.service.SyncCivMetaStats(ctx, []string{"rm_solo", "rm_team"}, []string{"all", "gold"})

	assert.Equal(t, 32, first.Written)
	assert.Equal(t, first.Written, second.Written)
	assert.Equal(t, int64(32), h.count(t, &stats.CivMetaStat{}))
}

func TestSyncCivMetaStats_DefaultsToEveryPair(t *testing.T) {
	h := newHarness(t, &upstream{civs: []string{"english"}})

	res := h.service.SyncCivMetaStats(context.Background(), nil, nil)
	assert.Equal(t, len(aoe4world.Leaderboards())*len(aoe4world.RankLevels()), res.Written)
	assert.Len(t, h.upstream.calls, 42)
}

func TestSyncCivMetaStats_FailedPairDoesNotStopOthers(t *testing.T) {
	h := newHarness(t, &upstream{
		civs:    []string{"english", "french"},
		failing: map[string]bool{"stats:rm_solo:gold": true},
	})

	res := h.service.SyncCivMetaStats(context.Background(), []string{"rm_solo"}, []string{"all", "gold", "diamond"})
	assert.Equal(t, 4, res.Written)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "stats:rm_solo:gold", res.Failed[0].Dataset)
	assert.Contains(t, res.Failed[0].Error, "500")
}

func TestSyncCivMetaStatsQuick(t *testing.T) {
	h := newHarness(t, &upstream{civs: []string{"english"}})

	res := h.service.SyncCivMetaStatsQuick(context.Background())
	assert.Equal(t, 1, res.Written)
	assert.Equal(t, []string{"/stats/rm_solo?rank_level=all"}, h.upstream.calls)
}

func TestSyncAllLeaderboards_HTTPErrorDropsOnlyThatLeaderboard(t *testing.T) {
	h := newHarness(t, &upstream{players: 10, failing: map[string]bool{"leaderboard:rm_2v2": true}})

	res := h.service.SyncAllLeaderboards(context.Background(), 10)

	assert.Len(t, res.Counts, 5)
	assert.NotContains(t, res.Counts, "rm_2v2")
	for _, lb := range []string{"rm_solo", "rm_team", "rm_1v1", "rm_3v3", "rm_4v4"} {
		assert.Equal(t, 10, res.Counts[lb], lb)
	}
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "leaderboard:rm_2v2", res.Failed[0].Dataset)
	assert.Equal(t, 50, res.Total())
}

func TestSyncAllLeaderboards_IgnoresConfiguredSubset(t *testing.T) {
	h := newHarness(t, &upstream{players: 2},
		syncer.WithConfig(syncer.Config{Leaderboards: []string{"rm_solo"}}))

	res := h.service.SyncAllLeaderboards(context.Background(), 2)

	assert.Len(t, res.Counts, len(aoe4world.Leaderboards()))
	assert.Empty(t, res.Failed)
}

func TestSyncAll_Report(t *testing.T) {
	clock := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	h := newHarness(t,
		&upstream{
			civs:    []string{"english", "french", "atlanteans"},
			players: 5,
			failing: map[string]bool{"stats:rm_team:all": true, "leaderboard:rm_4v4": true},
		},
		syncer.WithConfig(syncer.Config{
			LeaderboardCount: 5,
			Leaderboards:     []string{"rm_solo", "rm_team", "rm_4v4"},
			RankLevels:       []string{"all"},
		}),
		syncer.WithClock(func() time.Time { return clock }),
	)

	assert.Nil(t, h.service.LastReport())
	report := h.service.SyncAll(context.Background())

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, syncer.ModeFull, report.Mode)
	assert.Equal(t, 4, report.MetaStats.Written)
	assert.Equal(t, 2, report.MetaStats.Dropped)
	assert.Equal(t, map[string]int{"rm_solo": 5, "rm_team": 5}, report.Leaderboards.Counts)
	assert.Equal(t, 10, report.TotalPlayers)
	assert.ElementsMatch(t, []string{"stats:rm_team:all", "leaderboard:rm_4v4"}, report.Failed)
	assert.False(t, report.OK())
	assert.Same(t, report, h.service.LastReport())
}

func TestSyncQuick_Report(t *testing.T) {
	h := newHarness(t, &upstream{civs: []string{"english"}, players: 60})

	report, err := h.service.Run(context.Background(), syncer.ModeQuick)
	require.NoError(t, err)
	assert.Equal(t, syncer.ModeQuick, report.Mode)
	assert.Equal(t, 1, report.MetaStats.Written)
	assert.Equal(t, map[string]int{"rm_solo": 50}, report.Leaderboards.Counts)
	assert.True(t, report.OK())
}

func TestRun_UnknownMode(t *testing.T) {
	h := newHarness(t, &upstream{})
	_, err := h.service.Run(context.Background(), "partial")
	assert.ErrorIs(t, err, syncer.ErrUnknownMode)

	_, err = h.service.Start("partial")
	assert.ErrorIs(t, err, syncer.ErrUnknownMode)
}

// blockingSource holds GetCivStats until release is closed.
type blockingSource struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingSource) GetCivStats(ctx context.Context, leaderboard, rankLevel string) ([]aoe4world.CivStat, error) {
	select {
	case b.started <- struct{}{}:
	default:
	}
	<-b.release
	return nil, nil
}

func (b *blockingSource) GetTopPlayers(ctx context.Context, leaderboard string, count int) ([]aoe4world.LeaderboardEntry, error) {
	return nil, nil
}

type nopStore struct{}

func (nopStore) UpsertCivMetaStats(context.Context, []stats.MetaStatRow) (stats.UpsertResult, error) {
	return stats.UpsertResult{}, nil
}

func (nopStore) UpsertLeaderboardPlayers(context.Context, []stats.LeaderboardPlayer) (int, error) {
	return 0, nil
}

func TestStart_RejectsConcurrentRun(t *testing.T) {
	src := &blockingSource{started: make(chan struct{}, 1), release: make(chan struct{})}
	svc := syncer.NewService(src, nopStore{}, zap.NewNop())

	runID, err := svc.Start(syncer.ModeQuick)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)
	<-src.started

	_, err = svc.Run(context.Background(), syncer.ModeFull)
	assert.ErrorIs(t, err, syncer.ErrRunInProgress)
	_, err = svc.Start(syncer.ModeFull)
	assert.ErrorIs(t, err, syncer.ErrRunInProgress)

	close(src.release)
	require.Eventually(t, func() bool {
		r := svc.LastReport()
		return r != nil && r.RunID == runID
	}, 2*time.Second, 10*time.Millisecond)
}

type failingStore struct {
	nopStore
	err error
}

func (f failingStore) UpsertLeaderboardPlayers(context.Context, []stats.LeaderboardPlayer) (int, error) {
	return 0, f.err
}

type staticSource struct{ players []aoe4world.LeaderboardEntry }

func (s staticSource) GetCivStats(context.Context, string, string) ([]aoe4world.CivStat, error) {
	return nil, nil
}

func (s staticSource) GetTopPlayers(context.Context, string, int) ([]aoe4world.LeaderboardEntry, error) {
	return s.players, nil
}

func TestSyncAllLeaderboards_DataAccessError(t *testing.T) {
	dae := &stats.DataAccessError{Op: "upsert leaderboard_players", Err: errors.New("connection refused")}
	svc := syncer.NewService(staticSource{players: []aoe4world.LeaderboardEntry{{ProfileID: 1}}}, failingStore{err: dae}, zap.NewNop())

	res := svc.SyncAllLeaderboards(context.Background(), 1)
	assert.Empty(t, res.Counts)
	assert.Len(t, res.Failed, 6)

	_, err := svc.SyncLeaderboard(context.Background(), "rm_solo", 1)
	assert.ErrorIs(t, err, stats.ErrDataAccess)
}

func TestSyncAll_CancelledContext(t *testing.T) {
	h := newHarness(t, &upstream{civs: []string{"english"}, players: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := h.service.SyncAll(ctx)
	assert.Len(t, report.Failed, 42+6)
	assert.Empty(t, h.upstream.calls)
}
