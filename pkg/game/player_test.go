package game

import (
	"regexp"
	"testing"
)

func TestNickname(t *testing.T) {
	tests := map[string]string{
		"alice":                   "alice",
		"bob_the-builder":         "bob_the-builder",
		"../../etc/passwd":        "etcpasswd",
		"äb c!":                   "bc",
		"averyveryverylongname42": "averyveryverylon",
	}

	for in, want := range tests {
		if got := Nickname(in); got != want {
			t.Errorf("Nickname(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNicknameGenerated(t *testing.T) {
	valid := regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)

	for _, in := range []string{"", "!!!", "  "} {
		nick := Nickname(in)
		if nick == "" || len(nick) > MaxNickLength || !valid.MatchString(nick) {
			t.Errorf("Nickname(%q) = %q, want a generated name", in, nick)
		}
	}
}
