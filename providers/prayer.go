package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amanahdev/ramadan-companion/utils"
)

// Timings holds the six named prayer times for one day, as HH:MM strings.
type Timings struct {
	Fajr    string `json:"fajr"`
	Sunrise string `json:"sunrise"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// PrayerProvider fetches daily prayer times by city and country.
type PrayerProvider struct {
	BaseURL string
	Method  int
}

// NewPrayerProvider creates a provider against the given API base URL using
// the configured calculation method.
func NewPrayerProvider(baseURL string, method int) *PrayerProvider {
	return &PrayerProvider{BaseURL: baseURL, Method: method}
}

// FetchTimings loads prayer times for the given date, city, and country,
// caching the result until end of day.
func (p *PrayerProvider) FetchTimings(ctx context.Context, date time.Time, city, country string) (*Timings, error) {
	day := date.Format("02-01-2006")
	cacheKey := fmt.Sprintf("prayer:%s:%s:%s", day, strings.ToLower(city), strings.ToLower(country))
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		var t Timings
		if err := json.Unmarshal(b, &t); err == nil {
			return &t, nil
		}
	}

	u := fmt.Sprintf("%s/timingsByCity/%s?city=%s&country=%s&method=%d",
		p.BaseURL, day, url.QueryEscape(city), url.QueryEscape(country), p.Method)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prayer api status %d", resp.StatusCode)
	}

	var body timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Code != http.StatusOK {
		return nil, errors.New("prayer api non-200 payload")
	}

	t := &Timings{
		Fajr:    cleanTime(body.Data.Timings["Fajr"]),
		Sunrise: cleanTime(body.Data.Timings["Sunrise"]),
		Dhuhr:   cleanTime(body.Data.Timings["Dhuhr"]),
		Asr:     cleanTime(body.Data.Timings["Asr"]),
		Maghrib: cleanTime(body.Data.Timings["Maghrib"]),
		Isha:    cleanTime(body.Data.Timings["Isha"]),
	}

	utils.CacheSetJSON(cacheKey, t, 24*time.Hour)
	return t, nil
}

// cleanTime strips timezone suffixes like " (WIB)" the API appends.
func cleanTime(s string) string {
	if i := strings.Index(s, " ("); i >= 0 {
		return s[:i]
	}
	return strings.TrimSpace(s)
}

// NextPrayer returns the first prayer after now ("HH:MM" comparison works on
// zero-padded times) and how long until it. Wraps to Fajr after Isha.
func NextPrayer(t *Timings, now time.Time) (name, at string, until time.Duration) {
	current := now.Format("15:04")
	prayers := []struct {
		name string
		time string
	}{
		{"Fajr", t.Fajr},
		{"Sunrise", t.Sunrise},
		{"Dhuhr", t.Dhuhr},
		{"Asr", t.Asr},
		{"Maghrib", t.Maghrib},
		{"Isha", t.Isha},
	}

	for _, p := range prayers {
		if p.time > current {
			return p.name, p.time, minutesUntil(current, p.time)
		}
	}
	// Tomorrow's Fajr
	return prayers[0].name, prayers[0].time, 24*time.Hour - minutesUntil(prayers[0].time, current)
}

func minutesUntil(from, to string) time.Duration {
	tf, err1 := time.Parse("15:04", from)
	tt, err2 := time.Parse("15:04", to)
	if err1 != nil || err2 != nil {
		return 0
	}
	return tt.Sub(tf)
}
