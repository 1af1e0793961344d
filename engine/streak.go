// Package engine holds the pure state machines behind the tracker: the login
// streak, the per-deed daily progress, and the Ramadan window math. Engines
// never touch storage; callers load a record, apply a transition, and persist
// the result.
package engine

import "github.com/amanahdev/ramadan-companion/models"

// ClaimDaily applies one daily check-in to the streak record.
//
// The operation is idempotent per calendar day: a second claim on the same
// date returns ErrAlreadyClaimed and leaves the record untouched. The streak
// continues only when the previous claim landed exactly on yesterday;
// otherwise it restarts at 1. A first-ever claim and a claim after a missed
// day are deliberately the same case.
//
// When requireVerse is set the claim is additionally gated on verseRead, and
// a rejection there is distinct from the already-claimed case so the caller
// can tell the user which precondition failed.
func ClaimDaily(rec *models.LoginStreak, tiers []models.RewardTier, today, yesterday string, requireVerse, verseRead bool) (models.RewardTier, error) {
	if rec.HasClaimed(today) {
		return models.RewardTier{}, ErrAlreadyClaimed
	}
	if requireVerse && !verseRead {
		return models.RewardTier{}, ErrVerseNotRead
	}

	newStreak := 1
	if rec.LastLoginDate == yesterday {
		newStreak = rec.CurrentStreak + 1
	}

	tier := models.TierFor(tiers, newStreak)

	rec.CurrentStreak = newStreak
	rec.LastLoginDate = today
	rec.ClaimedDates = append(rec.ClaimedDates, today)
	rec.TotalPoints += tier.Points

	return tier, nil
}
