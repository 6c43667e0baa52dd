package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shining04/Kcal.txt/internal/diary"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a record from today (id prefixes accepted)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(nil, func(m *diary.Manager) error {
			id, err := m.DeleteByPrefix(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %s\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
