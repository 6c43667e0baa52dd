package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shining04/Kcal.txt/internal/app"
	"github.com/Shining04/Kcal.txt/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage provider settings",
}

var (
	cfgProvider string
	cfgModel    string
	cfgAPIKey   string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update provider, model, or API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if cfgProvider != "" {
			cfg.Provider = strings.ToLower(strings.TrimSpace(cfgProvider))
		}
		if cfgModel != "" {
			cfg.Model = strings.TrimSpace(cfgModel)
		}
		if cfgAPIKey != "" {
			cfg.APIKey = strings.TrimSpace(cfgAPIKey)
		}
		if err := app.EnsureDir(path); err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved config to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Provider: %s\n", cfg.Provider)
		fmt.Fprintf(cmd.OutOrStdout(), "Model: %s\n", cfg.Model)
		fmt.Fprintf(cmd.OutOrStdout(), "API key: %s\n", maskKey(cfg.ResolveAPIKey()))
		return nil
	},
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "********"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configShowCmd)

	configSetCmd.Flags().StringVar(&cfgProvider, "provider", "", "Analysis provider (gemini or openai)")
	configSetCmd.Flags().StringVar(&cfgModel, "model", "", "Model name")
	configSetCmd.Flags().StringVar(&cfgAPIKey, "api-key", "", "API key (overrides environment)")
}
