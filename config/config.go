package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppConfig holds environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided via config files or the environment.
type AppConfig struct {
	AppPort   string
	JWTSecret string
	// AccessKey protects mutating endpoints when set. It may be plaintext or
	// a bcrypt hash (prefixed "$2"); empty disables authentication entirely.
	AccessKey string
	// Timezone controls the calendar day boundary for streaks and rollover.
	Timezone string
	// RewardTierPoints overrides the 7-day reward cycle point values.
	RewardTierPoints []int
	// SigninRequireVerse gates the daily claim on reading the daily verse.
	SigninRequireVerse bool
	RateLimitPerMinute int
	AllowedOrigins     []string
	// Database
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	// Redis for caching provider responses
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	// Content providers
	VerseAPIBase  string
	PrayerAPIBase string
	PrayerCity    string
	PrayerCountry string
	PrayerMethod  int
	// Gin framework configuration
	GinMode string
	GinPath string
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration from config/config.json, fills in
// defaults, then applies environment variable overrides. It should be called
// once during boot.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	// Precedence: config/config.json -> defaults -> environment variable overrides
	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// ResetForTest clears the cached configuration so tests can reload it.
func ResetForTest() {
	cfg = AppConfig{}
	loaded = false
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// loadJSONConfig reads JSON file into cfg if present. Returns error only for invalid JSON.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil // silently ignore missing file
	}
	defer f.Close()

	var raw map[string]any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return err
	}

	getString := func(m map[string]any, key string) string {
		if v, ok := m[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
		return ""
	}
	getInt := func(m map[string]any, key string) int {
		if v, ok := m[key]; ok {
			switch t := v.(type) {
			case float64:
				return int(t)
			case int:
				return t
			}
		}
		return 0
	}
	getBool := func(m map[string]any, key string) bool {
		if v, ok := m[key]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
		return false
	}
	getStringSlice := func(m map[string]any, key string) []string {
		if v, ok := m[key]; ok {
			if arr, ok := v.([]any); ok {
				res := make([]string, 0, len(arr))
				for _, it := range arr {
					if s, ok := it.(string); ok {
						res = append(res, s)
					}
				}
				return res
			}
		}
		return nil
	}
	getIntSlice := func(m map[string]any, key string) []int {
		if v, ok := m[key]; ok {
			if arr, ok := v.([]any); ok {
				res := make([]int, 0, len(arr))
				for _, it := range arr {
					if f, ok := it.(float64); ok {
						res = append(res, int(f))
					}
				}
				return res
			}
		}
		return nil
	}

	if app, ok := raw["app"].(map[string]any); ok {
		out.AppPort = getString(app, "AppPort")
		out.JWTSecret = getString(app, "JWTSecret")
		out.AccessKey = getString(app, "AccessKey")
		if v := getString(app, "Timezone"); v != "" {
			out.Timezone = v
		}
		if v := getInt(app, "RateLimitPerMinute"); v != 0 {
			out.RateLimitPerMinute = v
		}
		if list := getIntSlice(app, "RewardTierPoints"); len(list) > 0 {
			out.RewardTierPoints = list
		}
		out.SigninRequireVerse = getBool(app, "SigninRequireVerse")
		if list := getStringSlice(app, "AllowedOrigins"); len(list) > 0 {
			out.AllowedOrigins = list
		}
	}

	if dbs, ok := raw["database"].(map[string]any); ok {
		out.DatabaseURI = getString(dbs, "DatabaseURI")
		out.DBHost = getString(dbs, "DBHost")
		out.DBPort = getString(dbs, "DBPort")
		out.DBUser = getString(dbs, "DBUser")
		out.DBPassword = getString(dbs, "DBPassword")
		out.DBName = getString(dbs, "DBName")
	}

	if rds, ok := raw["redis"].(map[string]any); ok {
		out.RedisHost = getString(rds, "RedisHost")
		if v := getInt(rds, "RedisPort"); v != 0 {
			out.RedisPort = v
		}
		if v := getInt(rds, "RedisDB"); v != 0 {
			out.RedisDB = v
		}
		out.RedisPassword = getString(rds, "RedisPassword")
	}

	if pv, ok := raw["providers"].(map[string]any); ok {
		out.VerseAPIBase = getString(pv, "VerseAPIBase")
		out.PrayerAPIBase = getString(pv, "PrayerAPIBase")
		out.PrayerCity = getString(pv, "PrayerCity")
		out.PrayerCountry = getString(pv, "PrayerCountry")
		if v := getInt(pv, "PrayerMethod"); v != 0 {
			out.PrayerMethod = v
		}
	}

	if lg, ok := raw["log"].(map[string]any); ok {
		if v := getString(lg, "Level"); v != "" {
			out.LogLevel = v
		}
		if v := getString(lg, "Path"); v != "" {
			out.LogPath = v
		}
		if v := getString(lg, "GinMode"); v != "" {
			out.GinMode = v
		}
		if v := getString(lg, "GinPath"); v != "" {
			out.GinPath = v
		}
		if v := getInt(lg, "MaxSizeMB"); v != 0 {
			out.LogMaxSizeMB = v
		}
		if v := getInt(lg, "MaxBackups"); v != 0 {
			out.LogMaxBackups = v
		}
		if v := getInt(lg, "MaxAgeDays"); v != 0 {
			out.LogMaxAgeDays = v
		}
		out.LogCompress = getBool(lg, "Compress")
	}

	// Also support reading flat keys directly for backward compatibility
	if v, ok := raw["AppPort"].(string); ok && out.AppPort == "" {
		out.AppPort = v
	}
	if v, ok := raw["JWTSecret"].(string); ok && out.JWTSecret == "" {
		out.JWTSecret = v
	}
	if v, ok := raw["AccessKey"].(string); ok && out.AccessKey == "" {
		out.AccessKey = v
	}
	if v, ok := raw["Timezone"].(string); ok && out.Timezone == "" {
		out.Timezone = v
	}
	if v, ok := raw["DatabaseURI"].(string); ok && out.DatabaseURI == "" {
		out.DatabaseURI = v
	}
	if v, ok := raw["RedisHost"].(string); ok && out.RedisHost == "" {
		out.RedisHost = v
	}
	if v, ok := raw["SigninRequireVerse"].(bool); ok {
		out.SigninRequireVerse = v
	}

	return nil
}

// applyDefaults sets sane defaults for zero-value fields.
func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.GinPath == "" {
		c.GinPath = "logs/go_gin.log"
	}
	if c.Timezone == "" {
		c.Timezone = "Asia/Jakarta"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 60
	}
	if len(c.RewardTierPoints) == 0 {
		c.RewardTierPoints = []int{5, 10, 15, 20, 25, 30, 50}
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.DBHost == "" {
		c.DBHost = "127.0.0.1"
	}
	if c.DBPort == "" {
		c.DBPort = "3306"
	}
	if c.DBUser == "" {
		c.DBUser = "root"
	}
	if c.DBName == "" {
		c.DBName = "ramadan"
	}
	if c.RedisHost == "" {
		c.RedisHost = "127.0.0.1"
	}
	if c.RedisPort == 0 {
		c.RedisPort = 6379
	}
	if c.VerseAPIBase == "" {
		c.VerseAPIBase = "https://api.alquran.cloud/v1"
	}
	if c.PrayerAPIBase == "" {
		c.PrayerAPIBase = "https://api.aladhan.com/v1"
	}
	if c.PrayerCity == "" {
		c.PrayerCity = "Jakarta"
	}
	if c.PrayerCountry == "" {
		c.PrayerCountry = "ID"
	}
	if c.PrayerMethod == 0 {
		c.PrayerMethod = 20
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

// applyEnvOverrides maps known environment variables onto config values when present.
func applyEnvOverrides(c *AppConfig) {
	if v := getEnv("APP_PORT", ""); v != "" {
		c.AppPort = v
	}
	if v := getEnv("JWT_SECRET", ""); v != "" {
		c.JWTSecret = v
	}
	if v := getEnv("ACCESS_KEY", ""); v != "" {
		c.AccessKey = v
	}
	if v := getEnv("TIMEZONE", ""); v != "" {
		c.Timezone = v
	}
	if v := getEnv("GIN_MODE", ""); v != "" {
		c.GinMode = v
	}
	if v := getEnv("GIN_PATH", ""); v != "" {
		c.GinPath = v
	}
	if v := getEnv("DATABASE_URI", ""); v != "" {
		c.DatabaseURI = v
	}
	if v := getEnv("DB_HOST", ""); v != "" {
		c.DBHost = v
	}
	if v := getEnv("DB_PORT", ""); v != "" {
		c.DBPort = v
	}
	if v := getEnv("DB_USER", ""); v != "" {
		c.DBUser = v
	}
	if v := getEnv("DB_PASSWORD", ""); v != "" {
		c.DBPassword = v
	}
	if v := getEnv("DB_NAME", ""); v != "" {
		c.DBName = v
	}
	if v := getEnv("REDIS_HOST", ""); v != "" {
		c.RedisHost = v
	}
	if v := getEnv("REDIS_PORT", ""); v != "" {
		c.RedisPort = mustParseInt(v)
	}
	if v := getEnv("REDIS_DB", ""); v != "" {
		c.RedisDB = mustParseInt(v)
	}
	if v := getEnv("REDIS_PASSWORD", ""); v != "" {
		c.RedisPassword = v
	}
	if v := getEnv("VERSE_API_BASE", ""); v != "" {
		c.VerseAPIBase = v
	}
	if v := getEnv("PRAYER_API_BASE", ""); v != "" {
		c.PrayerAPIBase = v
	}
	if v := getEnv("PRAYER_CITY", ""); v != "" {
		c.PrayerCity = v
	}
	if v := getEnv("PRAYER_COUNTRY", ""); v != "" {
		c.PrayerCountry = v
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		c.RateLimitPerMinute = mustParseInt(v)
	}
	if v := getEnv("SIGNIN_REQUIRE_VERSE", ""); v != "" {
		c.SigninRequireVerse = v == "1" || strings.EqualFold(v, "true")
	}
	if v := getEnv("REWARD_TIER_POINTS", ""); v != "" {
		points := make([]int, 0, 7)
		for _, s := range splitAndTrim(v) {
			points = append(points, mustParseInt(s))
		}
		if len(points) > 0 {
			c.RewardTierPoints = points
		}
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("LOG_PATH", ""); v != "" {
		c.LogPath = v
	}
}

func mustParseInt(val string) int {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0
	}
	return n
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			res = append(res, t)
		}
	}
	return res
}
