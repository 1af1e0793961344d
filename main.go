package main

import (
	"log"
	"time"

	"github.com/amanahdev/ramadan-companion/config"
	"github.com/amanahdev/ramadan-companion/models"
	"github.com/amanahdev/ramadan-companion/providers"
	"github.com/amanahdev/ramadan-companion/routes"
	"github.com/amanahdev/ramadan-companion/store"
	"github.com/amanahdev/ramadan-companion/utils"
)

func main() {
	cfg := config.Load()
	if cfg.AccessKey != "" && cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set when ACCESS_KEY is configured")
	}

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.StateRecord{})
	st := store.NewGormStore(db)

	verses := providers.NewVerseProvider(cfg.VerseAPIBase)
	prayers := providers.NewPrayerProvider(cfg.PrayerAPIBase, cfg.PrayerMethod)

	r := routes.SetupRouter(st, verses, prayers)

	// Warm the verse-of-the-day cache shortly after each midnight (best-effort)
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	scheduler := providers.StartDailyPrefetch(verses, loc)
	defer scheduler.Stop()

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
