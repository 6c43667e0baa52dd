package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shining04/Kcal.txt/internal/diary"
	"github.com/Shining04/Kcal.txt/internal/model"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the daily calorie goal",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <kcal>",
	Short: fmt.Sprintf("Set the daily goal, clamped to [%d, %d]", model.MinGoal, model.MaxGoal),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseKcalArg(args[0])
		if err != nil {
			return err
		}
		return withManager(nil, func(m *diary.Manager) error {
			if err := m.SetGoal(n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daily goal set to %d kcal\n", m.Snapshot().MaxKcal)
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the daily goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(nil, func(m *diary.Manager) error {
			snap := m.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %d kcal\n", snap.MaxKcal)
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %d kcal\n", snap.DailyCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %d kcal\n", snap.MaxKcal-snap.DailyCalories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalShowCmd)
}
