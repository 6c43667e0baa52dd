package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Shining04/Kcal.txt/internal/analyze"
	"github.com/Shining04/Kcal.txt/internal/app"
	"github.com/Shining04/Kcal.txt/internal/config"
	"github.com/Shining04/Kcal.txt/internal/db"
	"github.com/Shining04/Kcal.txt/internal/diary"
	"github.com/Shining04/Kcal.txt/internal/provider/gemini"
	"github.com/Shining04/Kcal.txt/internal/provider/openai"
	"github.com/Shining04/Kcal.txt/internal/store"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return app.DefaultConfigPath()
}

func loadConfig() (config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return config.Default(), err
	}
	return config.Load(path)
}

// withManager opens the database, runs migrations and the day
// rollover, and hands the manager to run. Commands that never analyze
// pass a nil analyzer.
func withManager(analyzer analyze.Analyzer, run func(*diary.Manager) error) error {
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

	log := newLogger()
	defer func() { _ = log.Sync() }()

	m, err := diary.Open(store.New(sqldb, log), diary.Options{
		Analyzer: analyzer,
		Logger:   log,
	})
	if err != nil {
		return err
	}
	return run(m)
}

// newAnalyzer is a var so command tests can install a fake provider.
var newAnalyzer = func(ctx context.Context) (analyze.Analyzer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	key := cfg.ResolveAPIKey()
	if key == "" {
		return nil, fmt.Errorf("no API key configured: run `kcaltxt config set --api-key ...` or set GEMINI_API_KEY / OPENAI_API_KEY")
	}
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return &openai.Client{APIKey: key, Model: cfg.Model}, nil
	default:
		return gemini.New(ctx, key, cfg.Model)
	}
}

func parseKcalArg(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid kcal value %q", value)
	}
	return n, nil
}
