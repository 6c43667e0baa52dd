package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shining04/Kcal.txt/internal/diary"
	"github.com/Shining04/Kcal.txt/internal/render"
)

var historyDate string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show archived days",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyDate != "" {
			if _, err := time.Parse("2006-01-02", historyDate); err != nil {
				return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", historyDate)
			}
		}
		return withManager(nil, func(m *diary.Manager) error {
			history := m.Snapshot().History
			if historyDate == "" {
				fmt.Fprint(cmd.OutOrStdout(), render.HistorySummary(history))
				return nil
			}
			records, ok := history[historyDate]
			if !ok {
				return fmt.Errorf("no archived records for %s", historyDate)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.HistoryDay(historyDate, records))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historyDate, "date", "", "Show one archived day YYYY-MM-DD")
}
