package providers

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/amanahdev/ramadan-companion/engine"
	"github.com/amanahdev/ramadan-companion/utils"
)

// StartDailyPrefetch warms the verse-of-the-day cache shortly after each
// midnight so the first request of the day does not pay four upstream
// round-trips. Best effort: failures are logged and the next request fetches
// on demand.
func StartDailyPrefetch(v *VerseProvider, loc *time.Location) *gocron.Scheduler {
	s := gocron.NewScheduler(loc)
	_, _ = s.Every(1).Day().At("00:05").Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := v.DailyVerse(ctx, engine.Today(loc)); err != nil {
			utils.Sugar.Warnf("daily verse prefetch failed: %v", err)
		}
	})
	s.StartAsync()
	return s
}
