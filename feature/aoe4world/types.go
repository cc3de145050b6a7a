package aoe4world

import (
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	DefaultBaseURL        = "https://aoe4world.com/api/v0"
	DefaultUserAgent      = "AoE4-Stats-Integration/1.0"
	DefaultRateLimitDelay = 500 * time.Millisecond

	// MaxPageSize is the largest page the leaderboard endpoint serves.
	MaxPageSize = 200
)

// Leaderboard categories.
const (
	LeaderboardRMSolo = "rm_solo"
	LeaderboardRMTeam = "rm_team"
	LeaderboardRM1v1  = "rm_1v1"
	LeaderboardRM2v2  = "rm_2v2"
	LeaderboardRM3v3  = "rm_3v3"
	LeaderboardRM4v4  = "rm_4v4"
)

// Rank brackets.
const (
	RankAll       = "all"
	RankBronze    = "bronze"
	RankSilver    = "silver"
	RankGold      = "gold"
	RankPlatinum  = "platinum"
	RankDiamond   = "diamond"
	RankConqueror = "conqueror"
)

// Leaderboards returns every known leaderboard category in sync order.
func Leaderboards() []string {
	return []string{LeaderboardRMSolo, LeaderboardRMTeam, LeaderboardRM1v1, LeaderboardRM2v2, LeaderboardRM3v3, LeaderboardRM4v4}
}

// RankLevels returns every known rank bracket in sync order.
func RankLevels() []string {
	return []string{RankAll, RankBronze, RankSilver, RankGold, RankPlatinum, RankDiamond, RankConqueror}
}

// IsLeaderboard reports whether lb is a known leaderboard category.
func IsLeaderboard(lb string) bool {
	for _, v := range Leaderboards() {
		if v == lb {
			return true
		}
	}
	return false
}

// IsRankLevel reports whether rank is a known rank bracket.
func IsRankLevel(rank string) bool {
	for _, v := range RankLevels() {
		if v == rank {
			return true
		}
	}
	return false
}

// Patch is a game patch identifier. Upstream sends it either as a string or a number.
type Patch string

// UnmarshalJSON accepts "12.1.214", 12.1 or null.
func (p *Patch) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == "" {
		*p = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*p = Patch(str)
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return err
	}
	*p = Patch(s)
	return nil
}

// CivStat is one civilization row of /stats/{leaderboard}.
type CivStat struct {
	CivSlug         string  `json:"civ_slug"`
	Civilization    string  `json:"civilization"`
	CivName         string  `json:"civ_name"`
	WinRate         float64 `json:"win_rate"`
	PickRate        float64 `json:"pick_rate"`
	GamesCount      int     `json:"games_count"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	DurationAverage float64 `json:"duration_average"`
	Patch           Patch   `json:"patch"`
}

// Name returns the upstream identifier of the civilization, preferring the slug.
func (s CivStat) Name() string {
	switch {
	case s.CivSlug != "":
		return s.CivSlug
	case s.Civilization != "":
		return s.Civilization
	default:
		return s.CivName
	}
}

type civStatsResponse struct {
	Civilizations []CivStat `json:"civilizations"`
	Data          []CivStat `json:"data"`
	Patch         Patch     `json:"patch"`
}

func (r civStatsResponse) rows() []CivStat {
	rows := r.Civilizations
	if len(rows) == 0 {
		rows = r.Data
	}
	if r.Patch != "" {
		for i := range rows {
			if rows[i].Patch == "" {
				rows[i].Patch = r.Patch
			}
		}
	}
	return rows
}

// LeaderboardEntry is one player row of /leaderboards/{leaderboard}.
type LeaderboardEntry struct {
	ProfileID  int64   `json:"profile_id"`
	Name       string  `json:"name"`
	Rank       int     `json:"rank"`
	Rating     int     `json:"rating"`
	GamesCount int     `json:"games_count"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinRate    float64 `json:"win_rate"`
	Country    string  `json:"country,omitempty"`
}

// LeaderboardPage is one page of a leaderboard.
type LeaderboardPage struct {
	Players    []LeaderboardEntry `json:"players"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalCount int                `json:"total_count"`
}

// PlayerMode holds a player's standing on one leaderboard.
type PlayerMode struct {
	Rating     int     `json:"rating"`
	MaxRating  int     `json:"max_rating"`
	Rank       int     `json:"rank"`
	RankLevel  string  `json:"rank_level"`
	GamesCount int     `json:"games_count"`
	Wins       int     `json:"wins_count"`
	Losses     int     `json:"losses_count"`
	WinRate    float64 `json:"win_rate"`
}

// Player is a profile from /players/{id} or /players/search.
type Player struct {
	ProfileID    int64                 `json:"profile_id"`
	Name         string                `json:"name"`
	SteamID      string                `json:"steam_id,omitempty"`
	Country      string                `json:"country,omitempty"`
	LastGameAt   *time.Time            `json:"last_game_at,omitempty"`
	Modes        map[string]PlayerMode `json:"modes,omitempty"`
	Leaderboards map[string]PlayerMode `json:"leaderboards,omitempty"`
}

type playersResponse struct {
	Players []Player `json:"players"`
}

// GamePlayer is one participant of a game.
type GamePlayer struct {
	ProfileID    int64  `json:"profile_id"`
	Name         string `json:"name"`
	Civilization string `json:"civilization"`
	Result       string `json:"result"`
	Rating       int    `json:"rating"`
	RatingDiff   int    `json:"rating_diff"`
}

// TeamSlot wraps a participant the way the games endpoints nest them.
type TeamSlot struct {
	Player GamePlayer `json:"player"`
}

// Game is a match summary from /players/{id}/games or /games/{id}.
type Game struct {
	GameID      int64        `json:"game_id"`
	StartedAt   *time.Time   `json:"started_at,omitempty"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"`
	Duration    int          `json:"duration"`
	Map         string       `json:"map"`
	Kind        string       `json:"kind"`
	Leaderboard string       `json:"leaderboard"`
	Server      string       `json:"server,omitempty"`
	Patch       Patch        `json:"patch"`
	Average     float64      `json:"average_rating,omitempty"`
	Teams       [][]TeamSlot `json:"teams"`
}

type gamesResponse struct {
	Games []Game `json:"games"`
}

// MapStat is one row of /stats/{leaderboard}/maps.
type MapStat struct {
	Map             string  `json:"map"`
	GamesCount      int     `json:"games_count"`
	PickRate        float64 `json:"pick_rate"`
	DurationAverage float64 `json:"duration_average"`
}

type mapStatsResponse struct {
	Maps []MapStat `json:"maps"`
	Data []MapStat `json:"data"`
}
