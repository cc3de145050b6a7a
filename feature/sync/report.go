package sync

import (
	"fmt"
	"time"
)

// Run modes.
const (
	ModeFull  = "full"
	ModeQuick = "quick"
)

// DatasetFailure names a dataset that aborted and why.
type DatasetFailure struct {
	Dataset string `json:"dataset"`
	Error   string `json:"error"`
}

// MetaStatsResult summarises a civilization meta-stats sync.
type MetaStatsResult struct {
	Written int              `json:"written"`
	Dropped int              `json:"dropped"`
	Failed  []DatasetFailure `json:"failed,omitempty"`
}

// LeaderboardsResult maps each synced leaderboard to its player count.
// Failed leaderboards are absent from Counts and listed in Failed.
type LeaderboardsResult struct {
	Counts map[string]int   `json:"counts"`
	Failed []DatasetFailure `json:"failed,omitempty"`
}

// Total returns the number of players written across leaderboards.
func (r LeaderboardsResult) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// Report aggregates one run.
type Report struct {
	RunID        string             `json:"run_id"`
	Mode         string             `json:"mode"`
	StartedAt    time.Time          `json:"started_at"`
	FinishedAt   time.Time          `json:"finished_at"`
	Duration     string             `json:"duration"`
	MetaStats    MetaStatsResult    `json:"meta_stats"`
	Leaderboards LeaderboardsResult `json:"leaderboards"`
	TotalPlayers int                `json:"total_players"`
	// Failed lists every failed dataset by name.
	Failed []string `json:"failed"`
}

// OK reports whether every dataset succeeded.
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}

func (r *Report) finish(at time.Time) {
	r.FinishedAt = at
	r.Duration = at.Sub(r.StartedAt).String()
	r.TotalPlayers = r.Leaderboards.Total()
	r.Failed = []string{}
	for _, f := range r.MetaStats.Failed {
		r.Failed = append(r.Failed, f.Dataset)
	}
	for _, f := range r.Leaderboards.Failed {
		r.Failed = append(r.Failed, f.Dataset)
	}
}

func statsDataset(leaderboard, rankLevel string) string {
	return fmt.Sprintf("stats:%s:%s", leaderboard, rankLevel)
}

func leaderboardDataset(leaderboard string) string {
	return "leaderboard:" + leaderboard
}
