package stats

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultIndexTTL  = 10 * time.Minute
	defaultBatchSize = 500
)

// MetaStatRow is an upstream civilization statistic tagged with its dataset.
// Civ is the upstream name or slug; it is resolved against the reference table.
type MetaStatRow struct {
	Civ         string
	Leaderboard string
	RankLevel   string
	WinRate     float64
	PickRate    float64
	GamesCount  int
	Wins        int
	Losses      int
	AvgDuration float64
	Patch       string
}

// UpsertResult summarises a meta-stat upsert.
type UpsertResult struct {
	Written      int      `json:"written"`
	Dropped      int      `json:"dropped"`
	DroppedNames []string `json:"dropped_names,omitempty"`
}

// Store reads the reference tables and writes the live statistics tables.
type Store struct {
	db        *gorm.DB
	logger    *zap.Logger
	now       func() time.Time
	batchSize int
	civs      *civResolver
}

// StoreOption customises a Store.
type StoreOption func(*Store)

// WithClock sets the source of last_updated timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithIndexTTL sets how long the civilization index is reused. Zero rebuilds on every upsert.
func WithIndexTTL(ttl time.Duration) StoreOption {
	return func(s *Store) { s.civs.ttl = ttl }
}

// WithBatchSize sets the number of rows per INSERT statement.
func WithBatchSize(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// NewStore creates a Store on db.
func NewStore(db *gorm.DB, logger *zap.Logger, opts ...StoreOption) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		db:        db,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		batchSize: defaultBatchSize,
	}
	s.civs = newCivResolver(db, defaultIndexTTL, func() time.Time { return s.now() })
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DB returns the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// InvalidateCivilizations drops the cached civilization index.
func (s *Store) InvalidateCivilizations() {
	s.civs.invalidate()
}

// ResolveCivilization maps an upstream civilization name to its reference slug.
func (s *Store) ResolveCivilization(ctx context.Context, name string) (string, bool, error) {
	idx, err := s.civs.get(ctx)
	if err != nil {
		return "", false, err
	}
	slug, ok := idx.resolve(name)
	return slug, ok, nil
}

// UpsertCivMetaStats resolves each row's civilization, drops the unknown ones with a
// warning and upserts the rest on (civ_id, leaderboard, rank_level).
// When a key repeats within rows the last occurrence wins.
func (s *Store) UpsertCivMetaStats(ctx context.Context, rows []MetaStatRow) (UpsertResult, error) {
	var res UpsertResult
	if len(rows) == 0 {
		return res, nil
	}

	idx, err := s.civs.get(ctx)
	if err != nil {
		return res, err
	}

	now := s.now()
	type key struct{ civ, lb, rank string }
	pos := make(map[key]int, len(rows))
	records := make([]CivMetaStat, 0, len(rows))

	for _, r := range rows {
		slug, ok := idx.resolve(r.Civ)
		if !ok {
			res.Dropped++
			res.DroppedNames = append(res.DroppedNames, r.Civ)
			s.logger.Warn("Dropping meta stat for unknown civilization",
				zap.String("civilization", r.Civ),
				zap.String("leaderboard", r.Leaderboard),
				zap.String("rank_level", r.RankLevel),
			)
			continue
		}
		rec := CivMetaStat{
			CivID:       slug,
			Leaderboard: r.Leaderboard,
			RankLevel:   r.RankLevel,
			WinRate:     r.WinRate,
			PickRate:    r.PickRate,
			GamesCount:  r.GamesCount,
			Wins:        r.Wins,
			Losses:      r.Losses,
			AvgDuration: r.AvgDuration,
			Patch:       r.Patch,
			LastUpdated: now,
		}
		k := key{slug, r.Leaderboard, r.RankLevel}
		if i, seen := pos[k]; seen {
			records[i] = rec
			continue
		}
		pos[k] = len(records)
		records = append(records, rec)
	}

	if len(records) == 0 {
		return res, nil
	}

	err = s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "civ_id"}, {Name: "leaderboard"}, {Name: "rank_level"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"win_rate", "pick_rate", "games_count", "wins", "losses",
				"avg_duration", "patch", "last_updated",
			}),
		}).
		CreateInBatches(&records, s.batchSize).Error
	if err != nil {
		return res, wrapDataAccess("upsert civilization_meta_stats", err)
	}
	res.Written = len(records)
	return res, nil
}

// UpsertLeaderboardPlayers upserts players on player_id and stamps last_updated.
// When a player repeats within players the last occurrence wins.
func (s *Store) UpsertLeaderboardPlayers(ctx context.Context, players []LeaderboardPlayer) (int, error) {
	if len(players) == 0 {
		return 0, nil
	}

	now := s.now()
	pos := make(map[int64]int, len(players))
	records := make([]LeaderboardPlayer, 0, len(players))
	for _, p := range players {
		p.LastUpdated = now
		if i, seen := pos[p.PlayerID]; seen {
			records[i] = p
			continue
		}
		pos[p.PlayerID] = len(records)
		records = append(records, p)
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "player_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"player_name", "rank", "rating", "games_count", "wins", "losses",
				"win_rate", "leaderboard", "last_updated",
			}),
		}).
		CreateInBatches(&records, s.batchSize).Error
	if err != nil {
		return 0, wrapDataAccess("upsert leaderboard_players", err)
	}
	return len(records), nil
}

// Civilizations lists every civilization ordered by name.
func (s *Store) Civilizations(ctx context.Context) ([]Civilization, error) {
	var out []Civilization
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, wrapDataAccess("list civilizations", err)
	}
	return out, nil
}

// Civilization returns one civilization or ErrNotFound.
func (s *Store) Civilization(ctx context.Context, id string) (*Civilization, error) {
	var civ Civilization
	err := s.db.WithContext(ctx).Where("id = ?", strings.ToLower(id)).Take(&civ).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrapDataAccess("get civilization", err)
	}
	return &civ, nil
}

// CivMetaStats returns all rows for a leaderboard and rank bracket, best win rate first.
func (s *Store) CivMetaStats(ctx context.Context, leaderboard, rankLevel string) ([]MetaStatView, error) {
	return s.metaStats(ctx, leaderboard, rankLevel, 0)
}

// TopCivsByWinRate returns the limit best civilizations by win rate.
func (s *Store) TopCivsByWinRate(ctx context.Context, leaderboard, rankLevel string, limit int) ([]MetaStatView, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.metaStats(ctx, leaderboard, rankLevel, limit)
}

func (s *Store) metaStats(ctx context.Context, leaderboard, rankLevel string, limit int) ([]MetaStatView, error) {
	var out []MetaStatView
	q := s.db.WithContext(ctx).
		Table("civilization_meta_stats AS m").
		Select("m.civ_id, c.name AS civ_name, m.leaderboard, m.rank_level, m.win_rate, m.pick_rate, " +
			"m.games_count, m.wins, m.losses, m.avg_duration, m.patch, m.last_updated").
		Joins("JOIN civilizations c ON c.id = m.civ_id").
		Where("m.leaderboard = ? AND m.rank_level = ?", leaderboard, rankLevel).
		Order("m.win_rate DESC, m.civ_id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&out).Error; err != nil {
		return nil, wrapDataAccess("list civilization_meta_stats", err)
	}
	return out, nil
}

// LeaderboardPlayers returns up to limit players of a leaderboard ordered by rank.
func (s *Store) LeaderboardPlayers(ctx context.Context, leaderboard string, limit int) ([]LeaderboardPlayer, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []LeaderboardPlayer
	err := s.db.WithContext(ctx).
		Where("leaderboard = ?", leaderboard).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "rank"}}).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, wrapDataAccess("list leaderboard_players", err)
	}
	return out, nil
}

// AutoMigrate creates or updates the sync tables. Reference tables are included only when withReference is set.
func (s *Store) AutoMigrate(ctx context.Context, withReference bool) error {
	models := LiveModels()
	if withReference {
		models = append(ReferenceModels(), models...)
	}
	if err := s.db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return wrapDataAccess("auto migrate", err)
	}
	return nil
}
