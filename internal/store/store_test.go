package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Shining04/Kcal.txt/internal/db"
	"github.com/Shining04/Kcal.txt/internal/model"
	"github.com/Shining04/Kcal.txt/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kcaltxt.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return store.New(sqldb, nil), sqldb
}

func TestDefaultsWhenSlotsAbsent(t *testing.T) {
	t.Parallel()
	st, _ := newTestStore(t)

	if records := st.Records(); len(records) != 0 {
		t.Fatalf("expected empty records, got %d", len(records))
	}
	if goal := st.Goal(); goal != model.DefaultGoal {
		t.Fatalf("expected default goal %d, got %d", model.DefaultGoal, goal)
	}
	if _, ok := st.LastActiveDate(); ok {
		t.Fatalf("expected no last active date on first run")
	}
	if history := st.History(); len(history) != 0 {
		t.Fatalf("expected empty history, got %d days", len(history))
	}
}

func TestRecordsRoundTripSkipsPlaceholders(t *testing.T) {
	t.Parallel()
	st, _ := newTestStore(t)

	records := []model.DietRecord{
		{ID: "a", RawText: "pending toast", IsAnalyzing: true},
		{
			ID:            "b",
			RawText:       "two rice balls",
			Foods:         []model.FoodItem{{Emoji: "🍙", Name: "rice ball", Calories: 200}},
			TotalCalories: 200,
			AIComment:     "well done",
		},
	}
	if err := st.SaveRecords(records); err != nil {
		t.Fatalf("save records: %v", err)
	}

	got := st.Records()
	if len(got) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(got))
	}
	if got[0].ID != "b" || got[0].TotalCalories != 200 || got[0].IsAnalyzing {
		t.Fatalf("unexpected persisted record: %+v", got[0])
	}
	if len(got[0].Foods) != 1 || got[0].Foods[0].Emoji != "🍙" {
		t.Fatalf("unexpected foods: %+v", got[0].Foods)
	}
}

func TestCorruptSlotsReadAsDefaults(t *testing.T) {
	t.Parallel()
	st, sqldb := newTestStore(t)

	for _, key := range []string{"diet_records", "max_kcal", "history_records"} {
		if _, err := sqldb.Exec(`INSERT INTO slots(key, value) VALUES(?, ?)`, key, "{not json"); err != nil {
			t.Fatalf("corrupt slot %s: %v", key, err)
		}
	}

	if records := st.Records(); len(records) != 0 {
		t.Fatalf("expected empty records from corrupt slot, got %d", len(records))
	}
	if goal := st.Goal(); goal != model.DefaultGoal {
		t.Fatalf("expected default goal from corrupt slot, got %d", goal)
	}
	if history := st.History(); len(history) != 0 {
		t.Fatalf("expected empty history from corrupt slot, got %d days", len(history))
	}
}

func TestGoalClampedOnWrite(t *testing.T) {
	t.Parallel()
	st, _ := newTestStore(t)

	if err := st.SaveGoal(50); err != nil {
		t.Fatalf("save low goal: %v", err)
	}
	if goal := st.Goal(); goal != model.MinGoal {
		t.Fatalf("expected goal clamped to %d, got %d", model.MinGoal, goal)
	}

	if err := st.SaveGoal(99999); err != nil {
		t.Fatalf("save high goal: %v", err)
	}
	if goal := st.Goal(); goal != model.MaxGoal {
		t.Fatalf("expected goal clamped to %d, got %d", model.MaxGoal, goal)
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	t.Parallel()
	st, _ := newTestStore(t)

	history := map[string][]model.DietRecord{
		"2026-02-25": {
			{ID: "x", RawText: "lunch", TotalCalories: 400},
		},
	}
	if err := st.SaveHistory(history); err != nil {
		t.Fatalf("save history: %v", err)
	}
	got := st.History()
	if len(got) != 1 || len(got["2026-02-25"]) != 1 || got["2026-02-25"][0].TotalCalories != 400 {
		t.Fatalf("unexpected history: %+v", got)
	}
}

func TestCorruptLastActiveDateTreatedAsAbsent(t *testing.T) {
	t.Parallel()
	st, sqldb := newTestStore(t)

	if _, err := sqldb.Exec(`INSERT INTO slots(key, value) VALUES('last_date', 'not-a-date')`); err != nil {
		t.Fatalf("corrupt last date slot: %v", err)
	}
	if date, ok := st.LastActiveDate(); ok {
		t.Fatalf("expected corrupt date treated as absent, got %q", date)
	}
}

func TestLastActiveDateRoundTrip(t *testing.T) {
	t.Parallel()
	st, _ := newTestStore(t)

	if err := st.SaveLastActiveDate("2026-02-26"); err != nil {
		t.Fatalf("save last active date: %v", err)
	}
	date, ok := st.LastActiveDate()
	if !ok || date != "2026-02-26" {
		t.Fatalf("expected 2026-02-26, got %q (ok=%v)", date, ok)
	}
}
