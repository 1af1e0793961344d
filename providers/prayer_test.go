package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/amanahdev/ramadan-companion/utils"
)

func TestMain(m *testing.M) {
	utils.DisableRedisForTest()
	os.Exit(m.Run())
}

func TestCleanTime(t *testing.T) {
	cases := map[string]string{
		"04:38 (WIB)": "04:38",
		"18:10 (+07)": "18:10",
		"12:07":       "12:07",
		" 05:52 ":     "05:52",
	}
	for in, want := range cases {
		if got := cleanTime(in); got != want {
			t.Errorf("cleanTime(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNextPrayer(t *testing.T) {
	timings := &Timings{
		Fajr:    "04:38",
		Sunrise: "05:52",
		Dhuhr:   "12:07",
		Asr:     "15:24",
		Maghrib: "18:10",
		Isha:    "19:21",
	}

	cases := []struct {
		clock    string
		wantName string
		wantAt   string
	}{
		{"03:00", "Fajr", "04:38"},
		{"04:38", "Sunrise", "05:52"},
		{"13:00", "Asr", "15:24"},
		{"18:10", "Isha", "19:21"},
		{"23:00", "Fajr", "04:38"},
	}
	for _, tc := range cases {
		now, err := time.Parse("15:04", tc.clock)
		if err != nil {
			t.Fatalf("parse clock %q: %v", tc.clock, err)
		}
		name, at, until := NextPrayer(timings, now)
		if name != tc.wantName || at != tc.wantAt {
			t.Errorf("NextPrayer at %s = %s %s, want %s %s", tc.clock, name, at, tc.wantName, tc.wantAt)
		}
		if until <= 0 {
			t.Errorf("NextPrayer at %s until = %v, want positive", tc.clock, until)
		}
	}
}

func TestFetchTimings(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"code":200,"data":{"timings":{
			"Fajr":"04:38 (WIB)","Sunrise":"05:52 (WIB)","Dhuhr":"12:07 (WIB)",
			"Asr":"15:24 (WIB)","Maghrib":"18:10 (WIB)","Isha":"19:21 (WIB)"}}}`)
	}))
	defer srv.Close()

	p := NewPrayerProvider(srv.URL, 20)
	date := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	timings, err := p.FetchTimings(context.Background(), date, "Jakarta", "Indonesia")
	if err != nil {
		t.Fatalf("FetchTimings: %v", err)
	}
	if gotPath != "/timingsByCity/20-02-2026" {
		t.Errorf("path = %q, want /timingsByCity/20-02-2026", gotPath)
	}
	if gotQuery != "city=Jakarta&country=Indonesia&method=20" {
		t.Errorf("query = %q", gotQuery)
	}
	if timings.Maghrib != "18:10" {
		t.Errorf("maghrib = %q, want 18:10", timings.Maghrib)
	}
}

func TestFetchTimingsBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":400,"data":{}}`)
	}))
	defer srv.Close()

	p := NewPrayerProvider(srv.URL, 20)
	if _, err := p.FetchTimings(context.Background(), time.Now(), "Jakarta", "Indonesia"); err == nil {
		t.Fatal("FetchTimings with non-200 payload code, want error")
	}
}
