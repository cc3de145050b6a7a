// Package sync moves AoE4 World statistics into the stats store.
//
// Each dataset is one fetch, one reshape and one batch upsert:
//
//   - stats:<leaderboard>:<rank_level> civilization meta stats
//   - leaderboard:<leaderboard> top players
//
// Datasets run sequentially. A failing dataset is recorded in the result by name and
// the remaining datasets still run; rows already written stay committed. Nothing is
// retried. SyncAll is the entry point for schedules and returns a Report.
//
// When an Archive is configured every fetched dataset is also written to
// snapshots/<run-id>/<dataset>.json. Archive errors are logged and ignored.
package sync
