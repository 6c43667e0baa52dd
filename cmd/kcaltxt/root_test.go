package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	out := runCommand(t, "--help")
	if out == "" {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "kcaltxt.db")
	cfg := filepath.Join(dir, "config.yaml")
	for i := 0; i < 2; i++ {
		runCommand(t, "--db", db, "--config", cfg, "init")
	}
}

func TestGoalSetAndShow(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "kcaltxt.db")
	cfg := filepath.Join(dir, "config.yaml")

	out := runCommand(t, "--db", db, "--config", cfg, "goal", "set", "50")
	if want := "Daily goal set to 500 kcal"; !bytes.Contains([]byte(out), []byte(want)) {
		t.Fatalf("expected %q, got %q", want, out)
	}
	out = runCommand(t, "--db", db, "--config", cfg, "goal", "show")
	if want := "Goal: 500 kcal"; !bytes.Contains([]byte(out), []byte(want)) {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestTodayOnEmptyDiary(t *testing.T) {
	dir := t.TempDir()
	out := runCommand(t, "--db", filepath.Join(dir, "kcaltxt.db"), "--config", filepath.Join(dir, "config.yaml"), "today")
	if out == "" {
		t.Fatalf("expected today output")
	}
}
