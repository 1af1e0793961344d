package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/amanahdev/ramadan-companion/models"
	"github.com/amanahdev/ramadan-companion/store"
)

func newWindowRouter(st store.Store) *gin.Engine {
	c := NewWindowController(st, testLocation())
	r := gin.New()
	r.GET("/window", c.Get)
	r.PUT("/window", c.Set)
	return r
}

func TestWindowUnconfigured(t *testing.T) {
	st := store.NewMemoryStore()
	w := performRequest(newWindowRouter(st), http.MethodGet, "/window", nil)
	code, data := decodeResponse(t, w)
	if code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
	if data["configured"] != false {
		t.Errorf("configured = %v, want false", data["configured"])
	}
}

func TestWindowSetAndGet(t *testing.T) {
	st := store.NewMemoryStore()
	r := newWindowRouter(st)

	win := models.RamadanWindow{StartDate: "2026-02-18", EndDate: "2026-03-19"}
	w := performRequest(r, http.MethodPut, "/window", win)
	code, data := decodeResponse(t, w)
	if code != 0 {
		t.Fatalf("set code = %d, want 0", code)
	}
	if got := data["total_days"].(float64); got != 30 {
		t.Errorf("total_days = %v, want 30", got)
	}

	w = performRequest(r, http.MethodGet, "/window", nil)
	_, data = decodeResponse(t, w)
	if data["configured"] != true {
		t.Errorf("configured = %v, want true", data["configured"])
	}
	if data["start_date"] != "2026-02-18" {
		t.Errorf("start_date = %v", data["start_date"])
	}
}

func TestWindowRejectsInvalid(t *testing.T) {
	st := store.NewMemoryStore()
	r := newWindowRouter(st)

	// Seed a valid window, then verify a bad update leaves it alone.
	performRequest(r, http.MethodPut, "/window", models.RamadanWindow{StartDate: "2026-02-18", EndDate: "2026-03-19"})

	cases := []models.RamadanWindow{
		{StartDate: "2026-03-19", EndDate: "2026-02-18"},
		{StartDate: "18/02/2026", EndDate: "2026-03-19"},
		{StartDate: "", EndDate: "2026-03-19"},
	}
	for _, bad := range cases {
		w := performRequest(r, http.MethodPut, "/window", bad)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status for %+v = %d, want 400", bad, w.Code)
		}
		code, _ := decodeResponse(t, w)
		if code != 40051 {
			t.Errorf("code for %+v = %d, want 40051", bad, code)
		}
	}

	w := performRequest(r, http.MethodGet, "/window", nil)
	_, data := decodeResponse(t, w)
	if data["start_date"] != "2026-02-18" {
		t.Errorf("start_date after rejected updates = %v, want 2026-02-18", data["start_date"])
	}
}
