package engine

import "github.com/amanahdev/ramadan-companion/models"

// AdjustProgress applies a signed delta to today's progress for one category.
//
// Progress is clamped at zero. Each date owns at most one history entry;
// same-day deltas accumulate into it, so ProgressToday always equals today's
// stored value. CompletedToday is recomputed after every change.
//
// The returned flag is true only on the false-to-true completion transition,
// which is the caller's cue to bump the category streak counter. The reverse
// transition reports false: streak credit, once given, stays for the day.
func AdjustProgress(rec *models.DeedProgress, delta int, today string) bool {
	if rec.ProgressToday+delta < 0 {
		delta = -rec.ProgressToday
	}

	if entry := rec.TodayEntry(today); entry != nil {
		entry.Value += delta
		rec.ProgressToday = entry.Value
	} else {
		rec.History = append(rec.History, models.HistoryEntry{Date: today, Value: delta})
		rec.ProgressToday = delta
	}

	wasCompleted := rec.CompletedToday
	rec.CompletedToday = rec.ProgressToday >= rec.Target

	return rec.CompletedToday && !wasCompleted
}

// SetTarget changes the category's daily target and recomputes the completion
// cache against it. Progress and streak credit are left alone: lowering the
// target mid-day never retroactively issues or revokes a completion credit,
// only the flag itself moves.
func SetTarget(rec *models.DeedProgress, newTarget int) error {
	if newTarget <= 0 {
		return ErrInvalidTarget
	}
	rec.Target = newTarget
	rec.CompletedToday = rec.ProgressToday >= rec.Target
	return nil
}

// Rollover resyncs one progress record with the current calendar day. Invoked
// on every load.
//
// If the latest history entry is from a prior day the daily counters reset and
// that entry stays behind as the immutable record of that day. If it is for
// today (same-day revisit) the counters are rebuilt from the stored value.
// Returns true when the record changed and needs persisting.
func Rollover(rec *models.DeedProgress, today string) bool {
	latest := rec.LatestEntry()

	if latest != nil && latest.Date == today {
		progress := latest.Value
		completed := progress >= rec.Target
		if rec.ProgressToday == progress && rec.CompletedToday == completed {
			return false
		}
		rec.ProgressToday = progress
		rec.CompletedToday = completed
		return true
	}

	if rec.ProgressToday == 0 && !rec.CompletedToday {
		return false
	}
	rec.ProgressToday = 0
	rec.CompletedToday = false
	return true
}
