package models

// DeedCategory describes one trackable habit with a daily numeric target.
type DeedCategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Target       int    `json:"target"`
	Unit         string `json:"unit"`
	Color        string `json:"color"`
	Customizable bool   `json:"customizable"`
}

// HistoryEntry records the value reached on a single calendar date. A date
// appears at most once per category; same-day updates overwrite the value.
type HistoryEntry struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// DeedProgress is the per-category daily progress record. CompletedToday is a
// cache of ProgressToday >= Target and is recomputed on every mutation.
type DeedProgress struct {
	Target         int            `json:"target"`
	ProgressToday  int            `json:"progress_today"`
	CompletedToday bool           `json:"completed_today"`
	History        []HistoryEntry `json:"history"`
}

// TodayEntry returns a pointer to the history entry for the given date, or nil.
func (p *DeedProgress) TodayEntry(date string) *HistoryEntry {
	for i := range p.History {
		if p.History[i].Date == date {
			return &p.History[i]
		}
	}
	return nil
}

// LatestEntry returns the most recently appended history entry, or nil when
// the history is empty.
func (p *DeedProgress) LatestEntry() *HistoryEntry {
	if len(p.History) == 0 {
		return nil
	}
	return &p.History[len(p.History)-1]
}

// DeedProgressMap holds one progress record per category id.
type DeedProgressMap map[string]*DeedProgress

// DeedStreaks counts consecutive completions per category. Counters only ever
// increment; completing a deed and then dropping back below target the same
// day does not take the credit back.
type DeedStreaks map[string]int

// DefaultDeedCategories are the five built-in Ramadan deeds.
var DefaultDeedCategories = []DeedCategory{
	{ID: "taraweeh", Name: "Taraweeh Prayer", Description: "Track your nightly Taraweeh prayers during Ramadan", Target: 20, Unit: "rakats", Color: "purple", Customizable: true},
	{ID: "fasting", Name: "Fasting", Description: "Track your daily fasting during Ramadan", Target: 1, Unit: "day", Color: "amber", Customizable: false},
	{ID: "quran", Name: "Quran Reading", Description: "Track your daily Quran reading", Target: 10, Unit: "pages", Color: "emerald", Customizable: true},
	{ID: "charity", Name: "Charity", Description: "Track your charitable acts during Ramadan", Target: 1, Unit: "act", Color: "rose", Customizable: true},
	{ID: "dhikr", Name: "Dhikr", Description: "Track your daily remembrance of Allah", Target: 100, Unit: "times", Color: "sky", Customizable: true},
}

// NewDefaultProgressMap builds zeroed progress records for the given categories.
func NewDefaultProgressMap(categories []DeedCategory) DeedProgressMap {
	m := make(DeedProgressMap, len(categories))
	for _, c := range categories {
		m[c.ID] = &DeedProgress{Target: c.Target, History: []HistoryEntry{}}
	}
	return m
}
