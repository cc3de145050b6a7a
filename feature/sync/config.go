package sync

import "time"

// Config holds configuration for sync runs.
type Config struct {
	// LeaderboardCount is the number of top players synced per leaderboard.
	LeaderboardCount int `mapstructure:"leaderboard_count" default:"50"`
	// Leaderboards restricts full runs to these categories. Empty means all known.
	Leaderboards []string `mapstructure:"leaderboards" default:""`
	// RankLevels restricts full runs to these brackets. Empty means all known.
	RankLevels []string `mapstructure:"rank_levels" default:""`
	// Interval schedules full runs from the serve command. Zero disables the scheduler.
	Interval time.Duration `mapstructure:"interval" default:"0s"`
	// SnapshotRetention is the number of archived runs kept. Zero keeps all.
	SnapshotRetention int `mapstructure:"snapshot_retention" default:"0"`
}

func (c Config) leaderboardCount() int {
	if c.LeaderboardCount <= 0 {
		return 50
	}
	return c.LeaderboardCount
}
