// Package aoe4world is a typed client for the public AoE4 World API.
//
// Every request passes through a shared throttle that spaces request starts by
// at least Config.RateLimitDelay. The client never retries and never caches.
// Failures wrap ErrUpstreamRequest, and non-2xx answers are *HTTPError.
//
//	client := aoe4world.NewClient(cfg.API, logger)
//	stats, err := client.GetCivStats(ctx, aoe4world.LeaderboardRMSolo, aoe4world.RankAll)
package aoe4world
