package aoe4world

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"aoe4-sync/core/metrics"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const errorBodyLimit = 512

// Client issues throttled GET requests against the AoE4 World API.
// It is safe for concurrent use; the throttle is shared by all callers.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithoutThrottle lets requests through without spacing.
func WithoutThrottle() Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Inf, 1)
	}
}

// NewClient creates a client from cfg. Zero values fall back to the defaults.
func NewClient(cfg Config, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL:    baseURL,
		userAgent:  ua,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    newLimiter(cfg.RateLimitDelay),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newLimiter allows one request per delay with no burst, so each request starts
// at least delay after the previous one started. A non-positive delay uses the default.
func newLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		delay = DefaultRateLimitDelay
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}

// GetCivStats returns civilization statistics for one leaderboard and rank bracket.
func (c *Client) GetCivStats(ctx context.Context, leaderboard, rankLevel string) ([]CivStat, error) {
	q := url.Values{}
	if rankLevel != "" {
		q.Set("rank_level", rankLevel)
	}
	var resp civStatsResponse
	if err := c.get(ctx, "stats", "/stats/"+url.PathEscape(leaderboard), q, &resp); err != nil {
		return nil, err
	}
	return resp.rows(), nil
}

// GetLeaderboard returns one page of a leaderboard. count is capped at MaxPageSize
// and page starts at 1.
func (c *Client) GetLeaderboard(ctx context.Context, leaderboard string, count, page int) (*LeaderboardPage, error) {
	count = clampPageSize(count)
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("count", strconv.Itoa(count))
	q.Set("page", strconv.Itoa(page))

	var resp LeaderboardPage
	if err := c.get(ctx, "leaderboards", "/leaderboards/"+url.PathEscape(leaderboard), q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTopPlayers walks leaderboard pages until count players were collected or
// upstream returns a short page.
func (c *Client) GetTopPlayers(ctx context.Context, leaderboard string, count int) ([]LeaderboardEntry, error) {
	if count <= 0 {
		return nil, nil
	}
	size := clampPageSize(count)
	players := make([]LeaderboardEntry, 0, count)
	for page := 1; len(players) < count; page++ {
		lp, err := c.GetLeaderboard(ctx, leaderboard, size, page)
		if err != nil {
			return nil, err
		}
		players = append(players, lp.Players...)
		if len(lp.Players) < size {
			break
		}
	}
	if len(players) > count {
		players = players[:count]
	}
	return players, nil
}

// GetPlayer returns one player profile.
func (c *Client) GetPlayer(ctx context.Context, profileID int64) (*Player, error) {
	var p Player
	if err := c.get(ctx, "players", "/players/"+strconv.FormatInt(profileID, 10), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SearchPlayers finds players by name.
func (c *Client) SearchPlayers(ctx context.Context, query string) ([]Player, error) {
	q := url.Values{}
	q.Set("query", query)
	var resp playersResponse
	if err := c.get(ctx, "player_search", "/players/search", q, &resp); err != nil {
		return nil, err
	}
	return resp.Players, nil
}

// GetPlayerGames returns one page of a player's recent games.
func (c *Client) GetPlayerGames(ctx context.Context, profileID int64, count, page int) ([]Game, error) {
	if count <= 0 {
		count = 20
	}
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("count", strconv.Itoa(count))
	q.Set("page", strconv.Itoa(page))
	var resp gamesResponse
	path := "/players/" + strconv.FormatInt(profileID, 10) + "/games"
	if err := c.get(ctx, "player_games", path, q, &resp); err != nil {
		return nil, err
	}
	return resp.Games, nil
}

// GetGame returns a single match.
func (c *Client) GetGame(ctx context.Context, gameID int64) (*Game, error) {
	var g Game
	if err := c.get(ctx, "games", "/games/"+strconv.FormatInt(gameID, 10), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// GetMapStats returns per-map statistics for a leaderboard.
func (c *Client) GetMapStats(ctx context.Context, leaderboard string) ([]MapStat, error) {
	var resp mapStatsResponse
	if err := c.get(ctx, "map_stats", "/stats/"+url.PathEscape(leaderboard)+"/maps", nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Maps) == 0 {
		return resp.Data, nil
	}
	return resp.Maps, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: throttle: %w", ErrUpstreamRequest, err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrUpstreamRequest, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstream(endpoint, metrics.OutcomeTransport)
		return fmt.Errorf("%w: GET %s: %w", ErrUpstreamRequest, u, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("upstream request",
		zap.String("endpoint", endpoint),
		zap.String("url", u),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordUpstream(endpoint, metrics.OutcomeHTTPError)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        u,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordUpstream(endpoint, metrics.OutcomeDecode)
		return fmt.Errorf("%w: decode %s: %w", ErrUpstreamRequest, u, err)
	}
	metrics.RecordUpstream(endpoint, metrics.OutcomeSuccess)
	return nil
}

func clampPageSize(count int) int {
	if count <= 0 {
		return 50
	}
	if count > MaxPageSize {
		return MaxPageSize
	}
	return count
}
