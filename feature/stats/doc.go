// Package stats is the relational store behind the sync: typed upserts into
// civilization_meta_stats and leaderboard_players, and read projections over
// the reference tables (civilizations, units, buildings, technologies).
//
// # Upserts
//
// UpsertCivMetaStats resolves upstream civilization names against the
// civilizations table before writing. Names that match neither an id nor a
// display name, after separator folding and the alias table, are dropped and
// logged at warn level; they are reported in UpsertResult and never fail the
// batch. Conflicts on (civ_id, leaderboard, rank_level) replace the measured
// columns and refresh last_updated.
//
// UpsertLeaderboardPlayers replaces the whole snapshot on player_id.
//
// Both collapse repeated keys in one call to the last occurrence.
//
// # Errors
//
// Every store failure is a *DataAccessError matching ErrDataAccess.
package stats
