// Package providers wraps the third-party content APIs the tracker displays
// next to its own state: the verse of the day (alquran.cloud) and daily
// prayer times (aladhan.com). Provider failures are transient notices for the
// user and never touch persisted tracker state.
package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/amanahdev/ramadan-companion/utils"
)

const userAgent = "RamadanCompanion/1.0 (+https://github.com/amanahdev/ramadan-companion)"

var httpClient = &http.Client{Timeout: 5 * time.Second}

// Verse is one ayah with translations, recitation audio, and surah metadata.
type Verse struct {
	SurahNumber int               `json:"surah_number"`
	VerseNumber int               `json:"verse_number"`
	Text        string            `json:"text"`
	Translation map[string]string `json:"translation"`
	AudioURL    string            `json:"audio_url"`
	Surah       SurahMeta         `json:"surah"`
}

// SurahMeta identifies the chapter a verse belongs to.
type SurahMeta struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

type ayahResponse struct {
	Code int `json:"code"`
	Data struct {
		NumberInSurah int    `json:"numberInSurah"`
		Text          string `json:"text"`
		Audio         string `json:"audio"`
		Surah         struct {
			Number      int    `json:"number"`
			Name        string `json:"name"`
			EnglishName string `json:"englishName"`
		} `json:"surah"`
	} `json:"data"`
}

// VerseProvider fetches verses with an in-memory daily memo plus a Redis
// cache layer, so one upstream round-trip serves the whole day.
type VerseProvider struct {
	BaseURL string

	mu        sync.Mutex
	dailyDate string
	daily     *Verse
}

// NewVerseProvider creates a provider against the given API base URL.
func NewVerseProvider(baseURL string) *VerseProvider {
	return &VerseProvider{BaseURL: baseURL}
}

// FetchVerse loads one ayah: arabic text, en/id translations, and recitation
// audio. Text fields are sanitized before leaving the provider.
func (p *VerseProvider) FetchVerse(ctx context.Context, surah, verse int) (*Verse, error) {
	arabic, err := p.fetchEdition(ctx, surah, verse, "quran-uthmani")
	if err != nil {
		return nil, err
	}
	english, err := p.fetchEdition(ctx, surah, verse, "en.asad")
	if err != nil {
		return nil, err
	}
	indonesian, err := p.fetchEdition(ctx, surah, verse, "id.indonesian")
	if err != nil {
		return nil, err
	}
	audio, err := p.fetchEdition(ctx, surah, verse, "ar.alafasy")
	if err != nil {
		return nil, err
	}

	return &Verse{
		SurahNumber: surah,
		VerseNumber: arabic.Data.NumberInSurah,
		Text:        utils.SanitizeText(arabic.Data.Text),
		Translation: map[string]string{
			"en": utils.SanitizeText(english.Data.Text),
			"id": utils.SanitizeText(indonesian.Data.Text),
		},
		AudioURL: audio.Data.Audio,
		Surah: SurahMeta{
			Number:      arabic.Data.Surah.Number,
			Name:        arabic.Data.Surah.Name,
			EnglishName: arabic.Data.Surah.EnglishName,
		},
	}, nil
}

// DailyVerse returns the verse of the day for the given date, picking a random
// reference the first time the date is seen and memoizing it afterwards.
func (p *VerseProvider) DailyVerse(ctx context.Context, date string) (*Verse, error) {
	p.mu.Lock()
	if p.dailyDate == date && p.daily != nil {
		v := p.daily
		p.mu.Unlock()
		return v, nil
	}
	p.mu.Unlock()

	cacheKey := "verse:daily:" + date
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		var v Verse
		if err := json.Unmarshal(b, &v); err == nil {
			p.remember(date, &v)
			return &v, nil
		}
	}

	// Same selection range the card has always used
	surah := rand.Intn(10) + 1
	verse := rand.Intn(5) + 1

	v, err := p.FetchVerse(ctx, surah, verse)
	if err != nil {
		return nil, err
	}

	utils.CacheSetJSON(cacheKey, v, 48*time.Hour)
	p.remember(date, v)
	return v, nil
}

func (p *VerseProvider) remember(date string, v *Verse) {
	p.mu.Lock()
	p.dailyDate = date
	p.daily = v
	p.mu.Unlock()
}

func (p *VerseProvider) fetchEdition(ctx context.Context, surah, verse int, edition string) (*ayahResponse, error) {
	url := fmt.Sprintf("%s/ayah/%d:%d/%s", p.BaseURL, surah, verse, edition)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
		return nil, fmt.Errorf("verse api status %d", resp.StatusCode)
	}

	var body ayahResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Code != http.StatusOK {
		return nil, errors.New("verse api non-200 payload")
	}
	return &body, nil
}
