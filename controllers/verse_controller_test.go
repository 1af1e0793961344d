package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/amanahdev/ramadan-companion/engine"
	"github.com/amanahdev/ramadan-companion/providers"
	"github.com/amanahdev/ramadan-companion/store"
)

// fakeQuranAPI serves any /ayah/<ref>/<edition> request with a canned payload.
func fakeQuranAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/ayah/") {
			http.NotFound(w, r)
			return
		}
		edition := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		text := "Arabic text"
		audio := ""
		switch edition {
		case "en.asad":
			text = "English translation"
		case "id.indonesian":
			text = "Terjemahan Indonesia"
		case "ar.alafasy":
			audio = "https://cdn.example.com/recitation.mp3"
		}
		fmt.Fprintf(w, `{"code":200,"data":{"numberInSurah":3,"text":%q,"audio":%q,"surah":{"number":1,"name":"الفاتحة","englishName":"Al-Faatiha"}}}`, text, audio)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newVerseRouter(st store.Store, baseURL string) *gin.Engine {
	c := NewVerseController(st, providers.NewVerseProvider(baseURL), testLocation())
	r := gin.New()
	r.GET("/verse/daily", c.Daily)
	r.POST("/verse/read", c.MarkRead)
	r.GET("/verse/read", c.ReadStatus)
	return r
}

func TestVerseDaily(t *testing.T) {
	srv := fakeQuranAPI(t)
	r := newVerseRouter(store.NewMemoryStore(), srv.URL)

	w := performRequest(r, http.MethodGet, "/verse/daily", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	code, data := decodeResponse(t, w)
	if code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
	if data["text"] != "Arabic text" {
		t.Errorf("text = %v", data["text"])
	}
	tr := data["translation"].(map[string]interface{})
	if tr["en"] != "English translation" || tr["id"] != "Terjemahan Indonesia" {
		t.Errorf("translation = %v", tr)
	}
	if data["audio_url"] != "https://cdn.example.com/recitation.mp3" {
		t.Errorf("audio_url = %v", data["audio_url"])
	}
}

func TestVerseDailyUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	w := performRequest(newVerseRouter(store.NewMemoryStore(), srv.URL), http.MethodGet, "/verse/daily", nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	code, _ := decodeResponse(t, w)
	if code != 50250 {
		t.Errorf("code = %d, want 50250", code)
	}
}

func TestVerseMarkReadAndStatus(t *testing.T) {
	st := store.NewMemoryStore()
	r := newVerseRouter(st, "http://unused.invalid")

	w := performRequest(r, http.MethodGet, "/verse/read", nil)
	_, data := decodeResponse(t, w)
	if data["read"] != false {
		t.Fatalf("read before marking = %v, want false", data["read"])
	}

	w = performRequest(r, http.MethodPost, "/verse/read", nil)
	_, data = decodeResponse(t, w)
	if data["read"] != true || data["date"] != engine.Today(testLocation()) {
		t.Fatalf("mark read response = %v", data)
	}

	w = performRequest(r, http.MethodGet, "/verse/read", nil)
	_, data = decodeResponse(t, w)
	if data["read"] != true {
		t.Errorf("read after marking = %v, want true", data["read"])
	}
}
