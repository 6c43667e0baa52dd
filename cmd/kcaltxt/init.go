package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shining04/Kcal.txt/internal/app"
	"github.com/Shining04/Kcal.txt/internal/config"
	"github.com/Shining04/Kcal.txt/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local database and default config",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDir(path); err != nil {
			return err
		}

		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized kcaltxt database at %s\n", path)

		cfgPath, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			if err := app.EnsureDir(cfgPath); err != nil {
				return err
			}
			if err := config.Save(cfgPath, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", cfgPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
