package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	cfg := Load()
	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %q, want 8080", cfg.AppPort)
	}
	if cfg.Timezone != "Asia/Jakarta" {
		t.Errorf("Timezone = %q, want Asia/Jakarta", cfg.Timezone)
	}
	if want := []int{5, 10, 15, 20, 25, 30, 50}; !reflect.DeepEqual(cfg.RewardTierPoints, want) {
		t.Errorf("RewardTierPoints = %v, want %v", cfg.RewardTierPoints, want)
	}
	if cfg.SigninRequireVerse {
		t.Errorf("SigninRequireVerse = true, want false by default")
	}
	if cfg.PrayerMethod != 20 {
		t.Errorf("PrayerMethod = %d, want 20", cfg.PrayerMethod)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("SIGNIN_REQUIRE_VERSE", "true")
	t.Setenv("REWARD_TIER_POINTS", "1,2,3")
	ResetForTest()
	defer ResetForTest()

	cfg := Load()
	if cfg.AppPort != "9090" {
		t.Errorf("AppPort = %q, want 9090", cfg.AppPort)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", cfg.Timezone)
	}
	if !cfg.SigninRequireVerse {
		t.Errorf("SigninRequireVerse = false, want true")
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(cfg.RewardTierPoints, want) {
		t.Errorf("RewardTierPoints = %v, want %v", cfg.RewardTierPoints, want)
	}
}

func TestGetCachesLoad(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	first := Get()
	second := Get()
	if first.AppPort != second.AppPort {
		t.Errorf("Get returned different configs across calls")
	}
}
