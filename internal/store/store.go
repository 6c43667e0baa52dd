package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Shining04/Kcal.txt/internal/model"
)

// Slot keys. Every write is a whole-value overwrite of one slot; there
// is no partial update.
const (
	slotRecords  = "diet_records"
	slotGoal     = "max_kcal"
	slotLastDate = "last_date"
	slotHistory  = "history_records"
)

// Store persists diary state as JSON blobs in the slots table. A
// missing or corrupt slot reads as its documented default; corruption
// is logged and treated as absence, never returned as an error.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

func New(db *sql.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log}
}

func (s *Store) getSlot(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get slot %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) setSlot(key, value string) error {
	_, err := s.db.Exec(`
INSERT INTO slots(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set slot %q: %w", key, err)
	}
	return nil
}

// Records returns the persisted current-day records, defaulting to an
// empty list.
func (s *Store) Records() []model.DietRecord {
	raw, ok, err := s.getSlot(slotRecords)
	if err != nil {
		s.log.Warn("read records slot", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	var records []model.DietRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.Warn("corrupt records slot, using empty list", zap.Error(err))
		return nil
	}
	return records
}

// SaveRecords overwrites the current-day slot. Placeholders are never
// persisted; a record still mid-analysis at process exit is lost on
// restart.
func (s *Store) SaveRecords(records []model.DietRecord) error {
	terminal := make([]model.DietRecord, 0, len(records))
	for _, r := range records {
		if !r.IsAnalyzing {
			terminal = append(terminal, r)
		}
	}
	raw, err := json.Marshal(terminal)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	return s.setSlot(slotRecords, string(raw))
}

// Goal returns the persisted daily goal, defaulting to 2000.
func (s *Store) Goal() int {
	raw, ok, err := s.getSlot(slotGoal)
	if err != nil {
		s.log.Warn("read goal slot", zap.Error(err))
		return model.DefaultGoal
	}
	if !ok {
		return model.DefaultGoal
	}
	var goal int
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &goal); err != nil {
		s.log.Warn("corrupt goal slot, using default", zap.Error(err))
		return model.DefaultGoal
	}
	return goal
}

func (s *Store) SaveGoal(goal int) error {
	return s.setSlot(slotGoal, fmt.Sprintf("%d", model.ClampGoal(goal)))
}

// LastActiveDate returns the persisted last-active date and whether one
// was ever written.
func (s *Store) LastActiveDate() (string, bool) {
	raw, ok, err := s.getSlot(slotLastDate)
	if err != nil {
		s.log.Warn("read last date slot", zap.Error(err))
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return "", false
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		s.log.Warn("corrupt last date slot, treating as absent", zap.String("value", raw))
		return "", false
	}
	return raw, true
}

func (s *Store) SaveLastActiveDate(date string) error {
	return s.setSlot(slotLastDate, strings.TrimSpace(date))
}

// History returns the archived days, defaulting to an empty map.
func (s *Store) History() map[string][]model.DietRecord {
	raw, ok, err := s.getSlot(slotHistory)
	if err != nil {
		s.log.Warn("read history slot", zap.Error(err))
		return map[string][]model.DietRecord{}
	}
	if !ok {
		return map[string][]model.DietRecord{}
	}
	var history map[string][]model.DietRecord
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		s.log.Warn("corrupt history slot, using empty map", zap.Error(err))
		return map[string][]model.DietRecord{}
	}
	if history == nil {
		history = map[string][]model.DietRecord{}
	}
	return history
}

func (s *Store) SaveHistory(history map[string][]model.DietRecord) error {
	if history == nil {
		history = map[string][]model.DietRecord{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return s.setSlot(slotHistory, string(raw))
}
