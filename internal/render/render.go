// Package render draws diary state for the terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shining04/Kcal.txt/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("71"))
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("108")).Italic(true)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
)

const barWidth = 24

// TodayView renders the daily header: total vs goal, a progress bar,
// and one card per record, newest first.
func TodayView(snap model.Snapshot, date string) string {
	var b strings.Builder

	total := fmt.Sprintf("%d / %d kcal", snap.DailyCalories, snap.MaxKcal)
	if snap.DailyCalories > snap.MaxKcal {
		total = overStyle.Render(total)
	} else {
		total = accentStyle.Render(total)
	}
	b.WriteString(titleStyle.Render(date) + "  " + total + "\n")
	b.WriteString(progressBar(snap.DailyCalories, snap.MaxKcal) + "\n")

	if len(snap.Records) == 0 {
		b.WriteString(dimStyle.Render("No entries yet. Write what you ate with `kcaltxt submit`.") + "\n")
		return b.String()
	}
	for _, r := range snap.Records {
		b.WriteString(RecordCard(r) + "\n")
	}
	return b.String()
}

// RecordCard renders one record: the raw text, its foods, the total,
// and the coach comment. A still-analyzing record renders as pending.
func RecordCard(r model.DietRecord) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(r.RawText))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (%s)", shortID(r.ID))))
	b.WriteString("\n")

	if r.IsAnalyzing {
		b.WriteString(dimStyle.Render("analyzing..."))
		return cardStyle.Render(b.String())
	}

	for _, f := range r.Foods {
		b.WriteString(fmt.Sprintf("%s %s", f.Emoji, f.Name))
		if f.Calories > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %d kcal", f.Calories)))
		}
		b.WriteString("\n")
	}
	b.WriteString(accentStyle.Render(fmt.Sprintf("%d kcal", r.TotalCalories)))
	if r.AIComment != "" {
		b.WriteString("\n" + commentStyle.Render(r.AIComment))
	}
	return cardStyle.Render(b.String())
}

// HistorySummary lists archived days newest first with their totals.
func HistorySummary(history map[string][]model.DietRecord) string {
	if len(history) == 0 {
		return dimStyle.Render("No archived days yet.")
	}

	dates := make([]string, 0, len(history))
	for date := range history {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	var b strings.Builder
	for _, date := range dates {
		records := history[date]
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			titleStyle.Render(date),
			accentStyle.Render(fmt.Sprintf("%d kcal", model.DailyTotal(records))),
			dimStyle.Render(fmt.Sprintf("%d entries", len(records)))))
	}
	return b.String()
}

// HistoryDay renders every record of one archived day.
func HistoryDay(date string, records []model.DietRecord) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(date) + "  " +
		accentStyle.Render(fmt.Sprintf("%d kcal", model.DailyTotal(records))) + "\n")
	for _, r := range records {
		b.WriteString(RecordCard(r) + "\n")
	}
	return b.String()
}

func progressBar(current, max int) string {
	if max <= 0 {
		max = model.DefaultGoal
	}
	filled := current * barWidth / max
	over := false
	if filled >= barWidth {
		filled = barWidth
		over = current > max
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	if over {
		return overStyle.Render(bar)
	}
	return accentStyle.Render(bar)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
