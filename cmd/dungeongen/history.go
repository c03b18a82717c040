package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/dungeonforge/internal/config"
	"github.com/lawnchairsociety/dungeonforge/internal/database"
)

var (
	historyLimit int
	historySeed  int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded generation runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to show (0 for all)")
	historyCmd.Flags().Int64Var(&historySeed, "seed", 0, "Only show runs with this seed")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}

	db, err := database.OpenWithConfig(cfg.History.Config)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	var runs []*database.Run
	if historySeed != 0 {
		runs, err = db.FindRunsBySeed(historySeed)
	} else {
		runs, err = db.ListRuns(historyLimit)
	}
	if err != nil {
		return err
	}

	total, err := db.CountRuns()
	if err != nil {
		return err
	}

	printRuns(cmd.OutOrStdout(), runs)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d runs\n", len(runs), total)
	return nil
}

func printRuns(w io.Writer, runs []*database.Run) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSEED\tMODE\tROOMS\tFLOOR\tPROPS\tENEMIES\tSKIPPED\tDURATION\tCREATED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
			r.ID, r.Seed, r.Mode, r.Rooms, r.FloorTiles, r.Props,
			r.Enemies+r.CorridorEnemies, r.Skipped, r.Duration,
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	tw.Flush()
}
