package diary

import "github.com/Shining04/Kcal.txt/internal/model"

// RolloverInput is everything the day transition depends on, so the
// transition itself stays a pure function.
type RolloverInput struct {
	Today       string
	LastDate    string
	HasLastDate bool
	Records     []model.DietRecord
	History     map[string][]model.DietRecord
}

type RolloverResult struct {
	Records       []model.DietRecord
	DailyCalories int
	History       map[string][]model.DietRecord
	LastDate      string
	// Archived reports that the previous day's records moved into
	// history and the day was reset; the caller must persist records,
	// history, and the last-active date.
	Archived bool
	// WriteLastDate reports that the last-active date must be
	// persisted (date changed, or first run ever).
	WriteLastDate bool
}

// Rollover computes the session-start day transition. When the stored
// last-active date differs from today, the prior day's records are
// archived under that date (blind overwrite of an existing key;
// sessions separated by multi-day gaps archive only the last active
// day) and the current day starts empty. Same-day opens restore the
// stored records and recompute the derived total.
func Rollover(in RolloverInput) RolloverResult {
	lastDate := in.LastDate
	if !in.HasLastDate {
		lastDate = in.Today
	}

	history := make(map[string][]model.DietRecord, len(in.History)+1)
	for date, records := range in.History {
		history[date] = records
	}

	if lastDate != in.Today {
		if len(in.Records) > 0 {
			history[lastDate] = in.Records
		}
		return RolloverResult{
			Records:       []model.DietRecord{},
			DailyCalories: 0,
			History:       history,
			LastDate:      in.Today,
			Archived:      true,
			WriteLastDate: true,
		}
	}

	return RolloverResult{
		Records:       in.Records,
		DailyCalories: model.DailyTotal(in.Records),
		History:       history,
		LastDate:      in.Today,
		WriteLastDate: !in.HasLastDate,
	}
}
