package diary_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Shining04/Kcal.txt/internal/diary"
	"github.com/Shining04/Kcal.txt/internal/model"
)

func TestBuildExportOrdersDaysNewestFirst(t *testing.T) {
	t.Parallel()

	snap := model.Snapshot{
		MaxKcal: 1800,
		Records: []model.DietRecord{
			{ID: "today", TotalCalories: 300},
			{ID: "pending", TotalCalories: 0, IsAnalyzing: true},
		},
		History: map[string][]model.DietRecord{
			"2026-02-24": {{ID: "older", TotalCalories: 100}},
			"2026-02-25": {{ID: "newer", TotalCalories: 200}},
		},
	}

	data := diary.BuildExport(snap, "2026-02-26")
	if data.MaxKcal != 1800 {
		t.Fatalf("expected goal 1800, got %d", data.MaxKcal)
	}
	if len(data.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(data.Days))
	}
	wantDates := []string{"2026-02-26", "2026-02-25", "2026-02-24"}
	for i, want := range wantDates {
		if data.Days[i].Date != want {
			t.Fatalf("day %d: expected %s, got %s", i, want, data.Days[i].Date)
		}
	}
	if len(data.Days[0].Records) != 1 || data.Days[0].TotalCalories != 300 {
		t.Fatalf("expected placeholder excluded from today's export, got %+v", data.Days[0])
	}
}

func TestWriteExportEmitsJSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	data := diary.BuildExport(model.Snapshot{MaxKcal: 2000}, "2026-02-26")
	if err := diary.WriteExport(buf, data); err != nil {
		t.Fatalf("write export: %v", err)
	}

	var decoded diary.ExportData
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round trip export: %v", err)
	}
	if decoded.MaxKcal != 2000 {
		t.Fatalf("expected goal 2000, got %d", decoded.MaxKcal)
	}
}
