package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amanahdev/ramadan-companion/engine"
	"github.com/amanahdev/ramadan-companion/models"
	"github.com/amanahdev/ramadan-companion/store"
	"github.com/amanahdev/ramadan-companion/utils"
)

// WindowController manages the configured Ramadan start and end dates.
type WindowController struct {
	st  store.Store
	loc *time.Location
}

// NewWindowController creates a new controller instance.
func NewWindowController(st store.Store, loc *time.Location) *WindowController {
	return &WindowController{st: st, loc: loc}
}

// Get returns the configured window with the derived day index. Clients use
// the configured flag to prompt for setup on first run.
func (w *WindowController) Get(ctx *gin.Context) {
	var win models.RamadanWindow
	found, err := w.st.Load(ctx, models.KeyRamadanWindow, &win)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to load window")
		return
	}
	if !found {
		utils.Success(ctx, gin.H{"configured": false})
		return
	}

	today := engine.Today(w.loc)
	currentDay, totalDays := engine.WindowDay(win, today)
	utils.Success(ctx, gin.H{
		"configured":  true,
		"start_date":  win.StartDate,
		"end_date":    win.EndDate,
		"current_day": currentDay,
		"total_days":  totalDays,
	})
}

// Set stores a new window after validating that both dates parse and the end
// does not precede the start. Prior state is untouched on rejection.
func (w *WindowController) Set(ctx *gin.Context) {
	var win models.RamadanWindow
	if err := ctx.ShouldBindJSON(&win); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40050, "invalid request body")
		return
	}

	if err := engine.ValidateWindow(win); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40051, "invalid window: dates must be YYYY-MM-DD with end_date >= start_date")
		return
	}

	if err := w.st.Save(ctx, models.KeyRamadanWindow, &win); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to save window")
		return
	}

	today := engine.Today(w.loc)
	currentDay, totalDays := engine.WindowDay(win, today)
	utils.Success(ctx, gin.H{
		"configured":  true,
		"start_date":  win.StartDate,
		"end_date":    win.EndDate,
		"current_day": currentDay,
		"total_days":  totalDays,
	})
}
