package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shining04/Kcal.txt/internal/diary"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the diary (today plus history) as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(nil, func(m *diary.Manager) error {
			data := diary.BuildExport(m.Snapshot(), m.Today())
			if exportOut == "" {
				return diary.WriteExport(cmd.OutOrStdout(), data)
			}
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			if err := diary.WriteExport(f, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d days to %s\n", len(data.Days), exportOut)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
}
