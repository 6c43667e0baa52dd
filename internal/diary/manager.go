// Package diary owns the in-memory diary state for one session: the
// current day's records, the derived calorie total, the goal, and the
// archived history. All mutation happens under one mutex; the only
// suspending operation is the analysis call, which re-enters through a
// single keyed update when it resolves.
package diary

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Shining04/Kcal.txt/internal/analyze"
	"github.com/Shining04/Kcal.txt/internal/model"
	"github.com/Shining04/Kcal.txt/internal/store"
)

const errMessageLimit = 100

type Options struct {
	Analyzer analyze.Analyzer
	Logger   *zap.Logger
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

type Manager struct {
	store    *store.Store
	analyzer analyze.Analyzer
	log      *zap.Logger
	now      func() time.Time

	mu        sync.Mutex
	wg        sync.WaitGroup
	records   []model.DietRecord
	inputText string
	pending   int
	maxKcal   int
	history   map[string][]model.DietRecord
	today     string
}

// Open loads persisted state and runs the day rollover exactly once,
// before any other operation is possible.
func Open(st *store.Store, opts Options) (*Manager, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := &Manager{
		store:    st,
		analyzer: opts.Analyzer,
		log:      log,
		now:      now,
	}

	today := now().Format("2006-01-02")
	lastDate, hasLastDate := st.LastActiveDate()

	result := Rollover(RolloverInput{
		Today:       today,
		LastDate:    lastDate,
		HasLastDate: hasLastDate,
		Records:     st.Records(),
		History:     st.History(),
	})

	m.records = result.Records
	m.history = result.History
	m.maxKcal = st.Goal()
	m.today = today

	if result.Archived {
		log.Info("archived previous day",
			zap.String("last_date", lastDate),
			zap.String("today", today))
		if err := st.SaveRecords(result.Records); err != nil {
			return nil, fmt.Errorf("reset current day: %w", err)
		}
		if err := st.SaveHistory(result.History); err != nil {
			return nil, fmt.Errorf("archive history: %w", err)
		}
	}
	if result.WriteLastDate {
		if err := st.SaveLastActiveDate(today); err != nil {
			return nil, fmt.Errorf("record active date: %w", err)
		}
	}

	return m, nil
}

// Today returns the session's active date.
func (m *Manager) Today() string {
	return m.today
}

// SetInput updates the unsent draft text.
func (m *Manager) SetInput(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputText = text
}

// Submit creates a placeholder record for the trimmed text, dispatches
// analysis in the background, and returns the new record's id without
// blocking. Empty input is a silent no-op returning "". The caller can
// Wait for completion.
func (m *Manager) Submit(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	placeholder := model.DietRecord{
		ID:          uuid.NewString(),
		RawText:     text,
		Foods:       []model.FoodItem{},
		IsAnalyzing: true,
	}

	m.mu.Lock()
	m.records = append([]model.DietRecord{placeholder}, m.records...)
	m.inputText = ""
	m.pending++
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.runAnalysis(ctx, placeholder)
	}()

	return placeholder.ID
}

func (m *Manager) runAnalysis(ctx context.Context, placeholder model.DietRecord) {
	var result analyze.Analysis
	var err error
	if m.analyzer == nil {
		err = fmt.Errorf("no analysis provider configured")
	} else {
		result, err = m.analyzer.Analyze(ctx, placeholder.RawText)
	}

	terminal := placeholder
	terminal.IsAnalyzing = false
	if err != nil {
		m.log.Warn("analysis failed",
			zap.String("record_id", placeholder.ID),
			zap.Error(err))
		terminal.Foods = []model.FoodItem{{
			Emoji:    "⚠️",
			Name:     "AI analysis failed: " + truncate(err.Error(), errMessageLimit),
			Calories: 0,
		}}
	} else {
		terminal.Foods = result.Foods
		terminal.TotalCalories = result.TotalCalories
		terminal.AIComment = result.Comment
	}

	m.complete(terminal)
}

// complete replaces the placeholder with its terminal record by id. A
// missing id means the record was deleted mid-analysis; the update is
// dropped.
func (m *Manager) complete(terminal model.DietRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.records {
		if r.ID == terminal.ID {
			m.records[i] = terminal
			break
		}
	}
	m.pending--
	m.persistLocked()
}

// Wait blocks until every dispatched analysis has resolved.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// Delete removes the record with the given id. Absent ids are a no-op,
// so deleting twice is the same as deleting once, and deleting a
// still-analyzing record silently drops its eventual result.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.records[:0:0]
	for _, r := range m.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.records = kept
	m.persistLocked()
}

// DeleteByPrefix resolves a unique id prefix and deletes the match. It
// returns the full id, or an error when the prefix is empty, unknown,
// or ambiguous.
func (m *Manager) DeleteByPrefix(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("record id is required")
	}

	m.mu.Lock()
	match := ""
	for _, r := range m.records {
		if strings.HasPrefix(r.ID, prefix) {
			if match != "" {
				m.mu.Unlock()
				return "", fmt.Errorf("record id %q is ambiguous", prefix)
			}
			match = r.ID
		}
	}
	m.mu.Unlock()

	if match == "" {
		return "", fmt.Errorf("no record with id %q", prefix)
	}
	m.Delete(match)
	return match, nil
}

// SetGoal clamps and stores the daily goal.
func (m *Manager) SetGoal(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxKcal = model.ClampGoal(n)
	if err := m.store.SaveGoal(m.maxKcal); err != nil {
		return fmt.Errorf("persist goal: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current state. DailyCalories is
// derived from the records at every call, never stored.
func (m *Manager) Snapshot() model.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]model.DietRecord, len(m.records))
	copy(records, m.records)
	history := make(map[string][]model.DietRecord, len(m.history))
	for date, dayRecords := range m.history {
		day := make([]model.DietRecord, len(dayRecords))
		copy(day, dayRecords)
		history[date] = day
	}

	return model.Snapshot{
		Records:       records,
		DailyCalories: model.DailyTotal(records),
		InputText:     m.inputText,
		IsLoading:     m.pending > 0,
		MaxKcal:       m.maxKcal,
		History:       history,
	}
}

func (m *Manager) persistLocked() {
	if err := m.store.SaveRecords(m.records); err != nil {
		m.log.Error("persist records", zap.Error(err))
	}
	if err := m.store.SaveGoal(m.maxKcal); err != nil {
		m.log.Error("persist goal", zap.Error(err))
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
