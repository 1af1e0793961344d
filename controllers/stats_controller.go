package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amanahdev/ramadan-companion/engine"
	"github.com/amanahdev/ramadan-companion/models"
	"github.com/amanahdev/ramadan-companion/store"
	"github.com/amanahdev/ramadan-companion/utils"
)

// StatsController aggregates the tracker's records into one dashboard view.
type StatsController struct {
	st  store.Store
	loc *time.Location
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(st store.Store, loc *time.Location) *StatsController {
	return &StatsController{st: st, loc: loc}
}

// Get returns aggregate statistics. Each record falls back to zero values on
// load failure so one bad blob never takes the whole endpoint down.
func (s *StatsController) Get(ctx *gin.Context) {
	today := engine.Today(s.loc)

	var streak models.LoginStreak
	if _, err := s.st.Load(ctx, models.KeyLoginStreak, &streak); err != nil {
		streak = models.LoginStreak{}
	}

	var progress models.DeedProgressMap
	if found, err := s.st.Load(ctx, models.KeyDeedProgress, &progress); err != nil || !found {
		progress = models.DeedProgressMap{}
	}

	var deedStreaks models.DeedStreaks
	if found, err := s.st.Load(ctx, models.KeyDeedStreaks, &deedStreaks); err != nil || !found {
		deedStreaks = models.DeedStreaks{}
	}

	completedToday := 0
	for _, rec := range progress {
		engine.Rollover(rec, today)
		if rec.CompletedToday {
			completedToday++
		}
	}

	payload := gin.H{
		"date":                  today,
		"total_points":          streak.TotalPoints,
		"current_streak":        streak.CurrentStreak,
		"days_claimed":          len(streak.ClaimedDates),
		"claimed_today":         streak.HasClaimed(today),
		"deeds_completed_today": completedToday,
		"deed_streaks":          deedStreaks,
	}

	var win models.RamadanWindow
	if found, err := s.st.Load(ctx, models.KeyRamadanWindow, &win); err == nil && found {
		currentDay, totalDays := engine.WindowDay(win, today)
		payload["ramadan_day"] = currentDay
		payload["ramadan_total_days"] = totalDays
	}

	utils.Success(ctx, payload)
}
