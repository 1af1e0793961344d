package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amanahdev/ramadan-companion/config"
	"github.com/amanahdev/ramadan-companion/engine"
	"github.com/amanahdev/ramadan-companion/models"
	"github.com/amanahdev/ramadan-companion/store"
	"github.com/amanahdev/ramadan-companion/utils"
)

// StreakController handles the daily check-in endpoints.
type StreakController struct {
	st    store.Store
	loc   *time.Location
	tiers []models.RewardTier
}

// NewStreakController creates a controller with the reward cycle taken from
// configuration (falling back to the built-in 7-day table).
func NewStreakController(st store.Store, loc *time.Location) *StreakController {
	return &StreakController{st: st, loc: loc, tiers: tiersFromConfig()}
}

func tiersFromConfig() []models.RewardTier {
	points := config.Get().RewardTierPoints
	if len(points) == 0 {
		return models.DefaultRewardTiers
	}
	tiers := make([]models.RewardTier, len(points))
	for i, p := range points {
		tiers[i] = models.RewardTier{Day: i + 1, Points: p}
	}
	// The final day of the cycle carries the badge, as day 7 always has
	tiers[len(tiers)-1].Badge = "Special Badge"
	return tiers
}

// DailyClaim records today's check-in, updating streak and points.
func (s *StreakController) DailyClaim(ctx *gin.Context) {
	var rec models.LoginStreak
	if _, err := s.st.Load(ctx, models.KeyLoginStreak, &rec); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load streak record")
		return
	}

	today := engine.Today(s.loc)
	yesterday := engine.Yesterday(s.loc)

	cfg := config.Get()
	verseRead := false
	if cfg.SigninRequireVerse {
		var vr models.VerseRead
		if _, err := s.st.Load(ctx, models.KeyVerseRead, &vr); err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load streak record")
			return
		}
		verseRead = vr.Date == today
	}

	tier, err := engine.ClaimDaily(&rec, s.tiers, today, yesterday, cfg.SigninRequireVerse, verseRead)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrAlreadyClaimed):
			utils.Error(ctx, http.StatusBadRequest, 40030, "already claimed today")
		case errors.Is(err, engine.ErrVerseNotRead):
			utils.Error(ctx, http.StatusBadRequest, 40031, "read today's verse before claiming")
		default:
			utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to record claim")
		}
		return
	}

	if err := s.st.Save(ctx, models.KeyLoginStreak, &rec); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to record claim")
		return
	}

	utils.Success(ctx, gin.H{
		"points_awarded": tier.Points,
		"badge":          tier.Badge,
		"current_streak": rec.CurrentStreak,
		"total_points":   rec.TotalPoints,
	})
}

// Status returns the streak record, today's claim flag, and the reward table.
func (s *StreakController) Status(ctx *gin.Context) {
	var rec models.LoginStreak
	if _, err := s.st.Load(ctx, models.KeyLoginStreak, &rec); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load streak record")
		return
	}

	today := engine.Today(s.loc)
	utils.Success(ctx, gin.H{
		"current_streak":  rec.CurrentStreak,
		"total_points":    rec.TotalPoints,
		"last_login_date": rec.LastLoginDate,
		"claimed_today":   rec.HasClaimed(today),
		"claimed_dates":   rec.ClaimedDates,
		"reward_tiers":    s.tiers,
	})
}
