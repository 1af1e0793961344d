package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amanahdev/ramadan-companion/config"
	"github.com/amanahdev/ramadan-companion/providers"
	"github.com/amanahdev/ramadan-companion/utils"
)

// PrayerController serves daily prayer times for a city/country pair.
type PrayerController struct {
	prayers *providers.PrayerProvider
	loc     *time.Location
}

// NewPrayerController creates a new controller instance.
func NewPrayerController(prayers *providers.PrayerProvider, loc *time.Location) *PrayerController {
	return &PrayerController{prayers: prayers, loc: loc}
}

// Timings returns today's six prayer times plus the next upcoming prayer.
// City and country default to the configured location.
func (p *PrayerController) Timings(ctx *gin.Context) {
	cfg := config.Get()
	city := ctx.DefaultQuery("city", cfg.PrayerCity)
	country := ctx.DefaultQuery("country", cfg.PrayerCountry)

	now := time.Now().In(p.loc)
	timings, err := p.prayers.FetchTimings(ctx, now, city, country)
	if err != nil {
		utils.Sugar.Warnf("prayer provider failed city=%s country=%s err=%v", city, country, err)
		utils.Error(ctx, http.StatusBadGateway, 50251, "prayer time service temporarily unavailable")
		return
	}

	nextName, nextAt, until := providers.NextPrayer(timings, now)
	utils.Success(ctx, gin.H{
		"city":    city,
		"country": country,
		"timings": timings,
		"next":    gin.H{
			"name":          nextName,
			"time":          nextAt,
			"until_minutes": int(until.Minutes()),
		},
	})
}
