package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amanahdev/ramadan-companion/engine"
	"github.com/amanahdev/ramadan-companion/models"
	"github.com/amanahdev/ramadan-companion/providers"
	"github.com/amanahdev/ramadan-companion/store"
	"github.com/amanahdev/ramadan-companion/utils"
)

// VerseController serves the verse of the day and owns the content-consumed
// flag that can gate the daily claim.
type VerseController struct {
	st     store.Store
	verses *providers.VerseProvider
	loc    *time.Location
}

// NewVerseController creates a new controller instance.
func NewVerseController(st store.Store, verses *providers.VerseProvider, loc *time.Location) *VerseController {
	return &VerseController{st: st, verses: verses, loc: loc}
}

// Daily returns today's verse with translations and recitation audio.
func (v *VerseController) Daily(ctx *gin.Context) {
	verse, err := v.verses.DailyVerse(ctx, engine.Today(v.loc))
	if err != nil {
		utils.Sugar.Warnf("verse provider failed: %v", err)
		utils.Error(ctx, http.StatusBadGateway, 50250, "verse service temporarily unavailable")
		return
	}
	utils.Success(ctx, verse)
}

// MarkRead records that today's verse was read.
func (v *VerseController) MarkRead(ctx *gin.Context) {
	today := engine.Today(v.loc)
	if err := v.st.Save(ctx, models.KeyVerseRead, &models.VerseRead{Date: today}); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to save read flag")
		return
	}
	utils.Success(ctx, gin.H{"date": today, "read": true})
}

// ReadStatus reports whether today's verse has been read.
func (v *VerseController) ReadStatus(ctx *gin.Context) {
	var rec models.VerseRead
	if _, err := v.st.Load(ctx, models.KeyVerseRead, &rec); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to load read flag")
		return
	}
	today := engine.Today(v.loc)
	utils.Success(ctx, gin.H{"date": today, "read": rec.Date == today})
}
