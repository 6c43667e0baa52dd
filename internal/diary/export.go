package diary

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/Shining04/Kcal.txt/internal/model"
)

type ExportDay struct {
	Date          string             `json:"date"`
	TotalCalories int                `json:"total_calories"`
	Records       []model.DietRecord `json:"records"`
}

type ExportData struct {
	ExportedAt string      `json:"exported_at"`
	MaxKcal    int         `json:"max_kcal"`
	Days       []ExportDay `json:"days"`
}

// BuildExport flattens the snapshot into a date-keyed export, today
// first, archived days in descending date order. Placeholders are
// excluded the same way persistence excludes them.
func BuildExport(snap model.Snapshot, today string) ExportData {
	out := ExportData{
		ExportedAt: time.Now().Format(time.RFC3339),
		MaxKcal:    snap.MaxKcal,
	}

	terminal := make([]model.DietRecord, 0, len(snap.Records))
	for _, r := range snap.Records {
		if !r.IsAnalyzing {
			terminal = append(terminal, r)
		}
	}
	if len(terminal) > 0 {
		out.Days = append(out.Days, ExportDay{
			Date:          today,
			TotalCalories: model.DailyTotal(terminal),
			Records:       terminal,
		})
	}

	dates := make([]string, 0, len(snap.History))
	for date := range snap.History {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	for _, date := range dates {
		out.Days = append(out.Days, ExportDay{
			Date:          date,
			TotalCalories: model.DailyTotal(snap.History[date]),
			Records:       snap.History[date],
		})
	}

	return out
}

// WriteExport encodes the export as indented JSON.
func WriteExport(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}
