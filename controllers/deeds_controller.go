package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amanahdev/ramadan-companion/engine"
	"github.com/amanahdev/ramadan-companion/models"
	"github.com/amanahdev/ramadan-companion/store"
	"github.com/amanahdev/ramadan-companion/utils"
)

// DeedsController handles the good-deeds tracker endpoints.
type DeedsController struct {
	st  store.Store
	loc *time.Location
}

// NewDeedsController creates a new controller instance.
func NewDeedsController(st store.Store, loc *time.Location) *DeedsController {
	return &DeedsController{st: st, loc: loc}
}

type deedState struct {
	categories []models.DeedCategory
	progress   models.DeedProgressMap
	streaks    models.DeedStreaks
}

// loadState rehydrates categories, progress, and streak counters, creating
// zeroed records on first run and backfilling progress for any category that
// gained one since the state was last written.
func (d *DeedsController) loadState(ctx *gin.Context) (*deedState, error) {
	st := &deedState{}

	if found, err := d.st.Load(ctx, models.KeyDeedCategories, &st.categories); err != nil {
		return nil, err
	} else if !found {
		st.categories = models.DefaultDeedCategories
	}

	if found, err := d.st.Load(ctx, models.KeyDeedProgress, &st.progress); err != nil {
		return nil, err
	} else if !found {
		st.progress = models.NewDefaultProgressMap(st.categories)
	}
	for _, c := range st.categories {
		if _, ok := st.progress[c.ID]; !ok {
			st.progress[c.ID] = &models.DeedProgress{Target: c.Target, History: []models.HistoryEntry{}}
		}
	}

	if found, err := d.st.Load(ctx, models.KeyDeedStreaks, &st.streaks); err != nil {
		return nil, err
	} else if !found {
		st.streaks = models.DeedStreaks{}
	}

	return st, nil
}

// rollover resyncs every progress record with today and persists when
// anything moved to a new day.
func (d *DeedsController) rollover(ctx *gin.Context, st *deedState, today string) error {
	changed := false
	for _, rec := range st.progress {
		if engine.Rollover(rec, today) {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return d.st.Save(ctx, models.KeyDeedProgress, st.progress)
}

// List returns all categories with their progress and streak counters,
// rolled over to the current day.
func (d *DeedsController) List(ctx *gin.Context) {
	st, err := d.loadState(ctx)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load deed state")
		return
	}

	today := engine.Today(d.loc)
	if err := d.rollover(ctx, st, today); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to persist deed state")
		return
	}

	utils.Success(ctx, gin.H{
		"date":       today,
		"categories": st.categories,
		"progress":   st.progress,
		"streaks":    st.streaks,
	})
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

// Adjust applies a signed delta to one category's progress for today.
func (d *DeedsController) Adjust(ctx *gin.Context) {
	id := ctx.Param("id")

	var req adjustRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid request body")
		return
	}

	st, err := d.loadState(ctx)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load deed state")
		return
	}

	rec, ok := st.progress[id]
	if !ok {
		utils.Error(ctx, http.StatusNotFound, 40440, "unknown deed category")
		return
	}

	today := engine.Today(d.loc)
	// Roll over first so a stale record from yesterday cannot absorb the delta
	if err := d.rollover(ctx, st, today); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to persist deed state")
		return
	}

	completedNow := engine.AdjustProgress(rec, req.Delta, today)
	if completedNow {
		st.streaks[id]++
		if err := d.st.Save(ctx, models.KeyDeedStreaks, st.streaks); err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to persist deed state")
			return
		}
	}

	if err := d.st.Save(ctx, models.KeyDeedProgress, st.progress); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to persist deed state")
		return
	}

	utils.Success(ctx, gin.H{
		"id":              id,
		"progress_today":  rec.ProgressToday,
		"target":          rec.Target,
		"completed_today": rec.CompletedToday,
		"completed_now":   completedNow,
		"streak":          st.streaks[id],
	})
}

type targetRequest struct {
	Target int `json:"target"`
}

// SetTarget changes one category's daily target.
func (d *DeedsController) SetTarget(ctx *gin.Context) {
	id := ctx.Param("id")

	var req targetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid request body")
		return
	}

	st, err := d.loadState(ctx)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load deed state")
		return
	}

	var cat *models.DeedCategory
	for i := range st.categories {
		if st.categories[i].ID == id {
			cat = &st.categories[i]
			break
		}
	}
	rec, ok := st.progress[id]
	if cat == nil || !ok {
		utils.Error(ctx, http.StatusNotFound, 40440, "unknown deed category")
		return
	}
	if !cat.Customizable {
		utils.Error(ctx, http.StatusBadRequest, 40041, "category target is fixed")
		return
	}

	if err := engine.SetTarget(rec, req.Target); err != nil {
		if errors.Is(err, engine.ErrInvalidTarget) {
			utils.Error(ctx, http.StatusBadRequest, 40042, "target must be a positive integer")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to persist deed state")
		return
	}
	cat.Target = req.Target

	if err := d.st.Save(ctx, models.KeyDeedCategories, st.categories); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to persist deed state")
		return
	}
	if err := d.st.Save(ctx, models.KeyDeedProgress, st.progress); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to persist deed state")
		return
	}

	utils.Success(ctx, gin.H{
		"id":              id,
		"target":          rec.Target,
		"progress_today":  rec.ProgressToday,
		"completed_today": rec.CompletedToday,
	})
}

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// Update edits a customizable category's display fields. Labels pass through
// the sanitizer before they are stored.
func (d *DeedsController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req updateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid request body")
		return
	}

	st, err := d.loadState(ctx)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load deed state")
		return
	}

	var cat *models.DeedCategory
	for i := range st.categories {
		if st.categories[i].ID == id {
			cat = &st.categories[i]
			break
		}
	}
	if cat == nil {
		utils.Error(ctx, http.StatusNotFound, 40440, "unknown deed category")
		return
	}
	if !cat.Customizable {
		utils.Error(ctx, http.StatusBadRequest, 40043, "category is not customizable")
		return
	}

	if req.Name != nil {
		name := utils.SanitizeText(*req.Name)
		if name == "" {
			utils.Error(ctx, http.StatusBadRequest, 40044, "name must not be empty")
			return
		}
		cat.Name = name
	}
	if req.Description != nil {
		cat.Description = utils.Sanitize(*req.Description)
	}
	if req.Color != nil {
		cat.Color = utils.SanitizeText(*req.Color)
	}

	if err := d.st.Save(ctx, models.KeyDeedCategories, st.categories); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to persist deed state")
		return
	}

	utils.Success(ctx, cat)
}

// History returns the per-day record for one category.
func (d *DeedsController) History(ctx *gin.Context) {
	id := ctx.Param("id")

	st, err := d.loadState(ctx)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load deed state")
		return
	}

	rec, ok := st.progress[id]
	if !ok {
		utils.Error(ctx, http.StatusNotFound, 40440, "unknown deed category")
		return
	}

	utils.Success(ctx, gin.H{
		"id":      id,
		"history": rec.History,
		"streak":  st.streaks[id],
	})
}
