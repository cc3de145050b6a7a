package cmd

import (
	"fmt"
	"os"
	"strconv"

	"aoe4-sync/feature/aoe4world"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	lookupCount int
	lookupPage  int
)

// lookupCmd groups live AoE4 World lookups. Nothing is written to the database.
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Query the AoE4 World API directly",
}

var lookupPlayerCmd = &cobra.Command{
	Use:   "player [profile id]",
	Short: "Show a player profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		client, err := lookupClient()
		if err != nil {
			return err
		}
		player, err := client.GetPlayer(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(player)
	},
}

var lookupSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search players by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := lookupClient()
		if err != nil {
			return err
		}
		players, err := client.SearchPlayers(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(players)
	},
}

var lookupGamesCmd = &cobra.Command{
	Use:   "games [profile id]",
	Short: "List the recent games of a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		client, err := lookupClient()
		if err != nil {
			return err
		}
		games, err := client.GetPlayerGames(cmd.Context(), id, lookupCount, lookupPage)
		if err != nil {
			return err
		}
		return printJSON(games)
	},
}

var lookupMatchCmd = &cobra.Command{
	Use:   "match [game id]",
	Short: "Show one game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		client, err := lookupClient()
		if err != nil {
			return err
		}
		game, err := client.GetGame(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(game)
	},
}

var lookupMapsCmd = &cobra.Command{
	Use:   "maps [leaderboard]",
	Short: "Show map statistics of a leaderboard",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lb := aoe4world.LeaderboardRMSolo
		if len(args) == 1 {
			lb = args[0]
		}
		if !aoe4world.IsLeaderboard(lb) {
			return fmt.Errorf("unknown leaderboard %q", lb)
		}
		client, err := lookupClient()
		if err != nil {
			return err
		}
		maps, err := client.GetMapStats(cmd.Context(), lb)
		if err != nil {
			return err
		}
		return printJSON(maps)
	},
}

func init() {
	RootCmd.AddCommand(lookupCmd)
	lookupCmd.AddCommand(lookupPlayerCmd, lookupSearchCmd, lookupGamesCmd, lookupMatchCmd, lookupMapsCmd)
	lookupGamesCmd.Flags().IntVar(&lookupCount, "count", 20, "Games per page")
	lookupGamesCmd.Flags().IntVar(&lookupPage, "page", 1, "Page number")
}

func lookupClient() (*aoe4world.Client, error) {
	cfg, logg, err := bootstrap()
	if err != nil {
		return nil, err
	}
	return aoe4world.NewClient(cfg.API, logg.Named("aoe4world")), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
