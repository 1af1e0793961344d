package utils

import "testing"

func TestCheckAccessKeyPlaintext(t *testing.T) {
	if !CheckAccessKey("open-sesame", "open-sesame") {
		t.Error("matching plaintext key rejected")
	}
	if CheckAccessKey("open-sesame", "wrong") {
		t.Error("wrong key accepted")
	}
	if CheckAccessKey("", "") {
		t.Error("empty configured key must never match")
	}
}

func TestCheckAccessKeyBcrypt(t *testing.T) {
	hash, err := HashAccessKey("open-sesame")
	if err != nil {
		t.Fatalf("HashAccessKey: %v", err)
	}
	if !CheckAccessKey(hash, "open-sesame") {
		t.Error("matching key rejected against bcrypt hash")
	}
	if CheckAccessKey(hash, "wrong") {
		t.Error("wrong key accepted against bcrypt hash")
	}
}

func TestSanitizeText(t *testing.T) {
	if got := SanitizeText(`<script>alert(1)</script>plain`); got != "plain" {
		t.Errorf("SanitizeText = %q, want scripts removed", got)
	}
	if got := SanitizeText("plain text"); got != "plain text" {
		t.Errorf("SanitizeText = %q, want unchanged", got)
	}
}
