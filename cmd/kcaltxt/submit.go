package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shining04/Kcal.txt/internal/diary"
	"github.com/Shining04/Kcal.txt/internal/render"
)

var submitCmd = &cobra.Command{
	Use:   "submit <text>...",
	Short: "Log a meal described in free text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return nil
		}

		analyzer, err := newAnalyzer(cmd.Context())
		if err != nil {
			return err
		}

		return withManager(analyzer, func(m *diary.Manager) error {
			m.SetInput(text)
			id := m.Submit(cmd.Context(), text)
			if id == "" {
				return nil
			}
			m.Wait()

			snap := m.Snapshot()
			for _, r := range snap.Records {
				if r.ID == id {
					fmt.Fprintln(cmd.OutOrStdout(), render.RecordCard(r))
					break
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %d / %d kcal\n", snap.DailyCalories, snap.MaxKcal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
}
