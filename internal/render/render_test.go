package render_test

import (
	"strings"
	"testing"

	"github.com/Shining04/Kcal.txt/internal/model"
	"github.com/Shining04/Kcal.txt/internal/render"
)

func TestRecordCardShowsPendingState(t *testing.T) {
	t.Parallel()

	out := render.RecordCard(model.DietRecord{ID: "abcd1234efgh", RawText: "toast", IsAnalyzing: true})
	if !strings.Contains(out, "analyzing") {
		t.Fatalf("expected pending marker, got %q", out)
	}
	if !strings.Contains(out, "abcd1234") {
		t.Fatalf("expected short id, got %q", out)
	}
}

func TestTodayViewIncludesTotalsAndRecords(t *testing.T) {
	t.Parallel()

	snap := model.Snapshot{
		DailyCalories: 400,
		MaxKcal:       2000,
		Records: []model.DietRecord{
			{
				ID:            "r1",
				RawText:       "two rice balls",
				Foods:         []model.FoodItem{{Emoji: "🍙", Name: "rice ball", Calories: 200}},
				TotalCalories: 400,
				AIComment:     "well done",
			},
		},
	}
	out := render.TodayView(snap, "2026-02-26")
	for _, want := range []string{"2026-02-26", "400 / 2000 kcal", "rice ball", "well done"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in today view:\n%s", want, out)
		}
	}
}

func TestHistorySummaryNewestFirst(t *testing.T) {
	t.Parallel()

	history := map[string][]model.DietRecord{
		"2026-02-24": {{ID: "a", TotalCalories: 100}},
		"2026-02-25": {{ID: "b", TotalCalories: 200}},
	}
	out := render.HistorySummary(history)
	if strings.Index(out, "2026-02-25") > strings.Index(out, "2026-02-24") {
		t.Fatalf("expected newest day first:\n%s", out)
	}
}
