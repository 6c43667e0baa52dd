package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shining04/Kcal.txt/internal/diary"
	"github.com/Shining04/Kcal.txt/internal/render"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's entries and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(nil, func(m *diary.Manager) error {
			fmt.Fprint(cmd.OutOrStdout(), render.TodayView(m.Snapshot(), m.Today()))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
