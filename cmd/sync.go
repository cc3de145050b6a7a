package cmd

import (
	"context"
	"fmt"
	"time"

	"aoe4-sync/core/utils"
	"aoe4-sync/feature/aoe4world"
	syncer "aoe4-sync/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	modeCivStats    = "civ-stats"
	modeLeaderboard = "leaderboard"
)

var (
	syncMode         string
	syncLeaderboard  string
	syncCount        int
	syncLeaderboards string
	syncRanks        string
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync AoE4 World statistics into the database",
	Long: `Fetches civilization meta statistics and leaderboards from AoE4 World and upserts them.

Modes:
  full         every leaderboard and rank level, then the top players of every leaderboard
  quick        rm_solo for all ranks, then the rm_solo leaderboard
  civ-stats    meta statistics only (--leaderboards, --ranks)
  leaderboard  one leaderboard only (--leaderboard, --count)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVar(&syncMode, "mode", syncer.ModeQuick, "Sync mode: quick, full, civ-stats or leaderboard")
	syncCmd.Flags().StringVar(&syncLeaderboard, "leaderboard", aoe4world.LeaderboardRMSolo, "Leaderboard for --mode leaderboard")
	syncCmd.Flags().IntVar(&syncCount, "count", 0, "Number of top players (defaults to SYNC_LEADERBOARD_COUNT)")
	syncCmd.Flags().StringVar(&syncLeaderboards, "leaderboards", "", "Comma separated leaderboards for civ-stats and full runs")
	syncCmd.Flags().StringVar(&syncRanks, "ranks", "", "Comma separated rank levels for civ-stats and full runs")
}

func runSync(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	if lbs := utils.SplitCSV(syncLeaderboards); len(lbs) > 0 {
		cfg.Sync.Leaderboards = lbs
	}
	if ranks := utils.SplitCSV(syncRanks); len(ranks) > 0 {
		cfg.Sync.RankLevels = ranks
	}
	if syncCount > 0 {
		cfg.Sync.LeaderboardCount = syncCount
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := connect(cfg, logg)
	if err != nil {
		return err
	}
	svc, err := syncer.NewFromConfig(cfg.API, cfg.Sync, cfg.Storage, db, logg)
	if err != nil {
		return err
	}

	start := time.Now()
	switch syncMode {
	case syncer.ModeFull, syncer.ModeQuick:
		report, err := svc.Run(ctx, syncMode)
		if err != nil {
			return err
		}
		printReport(report)
		if !report.OK() {
			return fmt.Errorf("%d datasets failed: %v", len(report.Failed), report.Failed)
		}

	case modeCivStats:
		res := svc.SyncCivMetaStats(ctx, cfg.Sync.Leaderboards, cfg.Sync.RankLevels)
		fmt.Println("\n=== Civilization Meta Stats ===")
		fmt.Printf("Written:        %d\n", res.Written)
		fmt.Printf("Dropped:        %d\n", res.Dropped)
		printFailures(res.Failed)
		fmt.Printf("Execution Time: %s\n", time.Since(start))
		if len(res.Failed) > 0 {
			return fmt.Errorf("%d datasets failed", len(res.Failed))
		}

	case modeLeaderboard:
		if !aoe4world.IsLeaderboard(syncLeaderboard) {
			return fmt.Errorf("unknown leaderboard %q", syncLeaderboard)
		}
		n, err := svc.SyncLeaderboard(ctx, syncLeaderboard, cfg.Sync.LeaderboardCount)
		if err != nil {
			return err
		}
		fmt.Println("\n=== Leaderboard ===")
		fmt.Printf("Leaderboard:    %s\n", syncLeaderboard)
		fmt.Printf("Players:        %d\n", n)
		fmt.Printf("Execution Time: %s\n", time.Since(start))

	default:
		return fmt.Errorf("%w: %q", syncer.ErrUnknownMode, syncMode)
	}

	logg.Info("Sync command completed", zap.String("mode", syncMode), zap.Duration("execution_time", time.Since(start)))
	return nil
}

func printReport(r *syncer.Report) {
	fmt.Println("\n=== Sync Report ===")
	fmt.Printf("Run ID:         %s\n", r.RunID)
	fmt.Printf("Mode:           %s\n", r.Mode)
	fmt.Printf("Meta Stats:     %d written, %d dropped\n", r.MetaStats.Written, r.MetaStats.Dropped)
	for _, lb := range aoe4world.Leaderboards() {
		if n, ok := r.Leaderboards.Counts[lb]; ok {
			fmt.Printf("  %-13s %d players\n", lb+":", n)
		}
	}
	fmt.Printf("Total Players:  %d\n", r.TotalPlayers)
	printFailures(append(r.MetaStats.Failed, r.Leaderboards.Failed...))
	fmt.Printf("Execution Time: %s\n", r.Duration)
}

func printFailures(failed []syncer.DatasetFailure) {
	if len(failed) == 0 {
		return
	}
	fmt.Printf("Failed:         %d\n", len(failed))
	for _, f := range failed {
		fmt.Printf("  %s: %s\n", f.Dataset, f.Error)
	}
}
