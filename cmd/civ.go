package cmd

import (
	"context"
	"fmt"

	"aoe4-sync/feature/aoe4world"
	"aoe4-sync/feature/stats"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	civLeaderboard string
	civRank        string
)

// civCmd represents the civ detail command
var civCmd = &cobra.Command{
	Use:   "civ [id or name]",
	Short: "View the reference data and meta stats of a civilization",
	Long:  `Resolves a civilization by id, slug or display name and prints its unique content and current meta stats.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCivDetail(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(civCmd)
	civCmd.Flags().StringVar(&civLeaderboard, "leaderboard", aoe4world.LeaderboardRMSolo, "Leaderboard of the meta stats shown")
	civCmd.Flags().StringVar(&civRank, "rank", aoe4world.RankAll, "Rank level of the meta stats shown")
}

func runCivDetail(ctx context.Context, identifier string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	db, err := connect(cfg, logg)
	if err != nil {
		return err
	}
	store := stats.NewStore(db, logg.Named("stats"))

	civID, ok, err := store.ResolveCivilization(ctx, identifier)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("civilization %q: %w", identifier, stats.ErrNotFound)
	}
	logg.Debug("Resolved civilization", zap.String("query", identifier), zap.String("id", civID))

	civ, err := store.Civilization(ctx, civID)
	if err != nil {
		return err
	}
	units, err := store.UniqueUnitsForCiv(ctx, civID)
	if err != nil {
		return err
	}
	buildings, err := store.UniqueBuildingsForCiv(ctx, civID)
	if err != nil {
		return err
	}
	techs, err := store.UniqueTechnologiesForCiv(ctx, civID)
	if err != nil {
		return err
	}
	meta, err := store.CivMetaStats(ctx, civLeaderboard, civRank)
	if err != nil {
		return err
	}

	fmt.Println("\n--- Civilization Detail View ---")
	fmt.Printf("Query:            %s\n", identifier)
	fmt.Printf("ID:               %s\n", civ.ID)
	fmt.Printf("Name:             %s\n", civ.Name)
	fmt.Println("--------------------------------")
	fmt.Printf("Unique Units:     %d\n", len(units))
	for _, u := range units {
		fmt.Printf("  - %s (age %d)\n", u.UnitName, u.Age)
	}
	fmt.Printf("Unique Buildings: %d\n", len(buildings))
	for _, b := range buildings {
		fmt.Printf("  - %s (age %d)\n", b.BuildingName, b.Age)
	}
	fmt.Printf("Unique Techs:     %d\n", len(techs))
	for _, t := range techs {
		fmt.Printf("  - %s\n", t.TechnologyName)
	}
	fmt.Println("--------------------------------")

	found := false
	for i, m := range meta {
		if m.CivID != civID {
			continue
		}
		found = true
		fmt.Printf("Meta (%s, %s)\n", civLeaderboard, civRank)
		fmt.Printf("Win Rate Rank:    %d of %d\n", i+1, len(meta))
		fmt.Printf("Win Rate:         %.2f%%\n", m.WinRate)
		fmt.Printf("Pick Rate:        %.2f%%\n", m.PickRate)
		fmt.Printf("Games:            %d (%d W / %d L)\n", m.GamesCount, m.Wins, m.Losses)
		if m.Patch != "" {
			fmt.Printf("Patch:            %s\n", m.Patch)
		}
		fmt.Printf("Last Updated:     %s\n", m.LastUpdated.Format("2006-01-02 15:04:05"))
	}
	if !found {
		fmt.Printf("No meta stats for %s / %s. Run the sync first.\n", civLeaderboard, civRank)
	}
	fmt.Println("--------------------------------")
	return nil
}
