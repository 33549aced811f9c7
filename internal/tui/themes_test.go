package tui

import (
	"os"
	"testing"
)

func TestGetTheme(t *testing.T) {
	for _, name := range ValidThemes {
		t.Run(name, func(t *testing.T) {
			if !IsValidTheme(name) {
				t.Errorf("IsValidTheme(%q) = false", name)
			}
			if GetTheme(name) == nil {
				t.Errorf("GetTheme(%q) returned nil", name)
			}
		})
	}

	if IsValidTheme("sparkly") {
		t.Error("IsValidTheme(\"sparkly\") = true, want false")
	}
	if GetTheme("sparkly") != nil {
		t.Error("GetTheme(\"sparkly\") should return nil")
	}
}

func TestInCI(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"no env", map[string]string{}, false},
		{"github actions", map[string]string{"GITHUB_ACTIONS": "true"}, true},
		{"generic CI", map[string]string{"CI": "1"}, true},
		{"unrelated", map[string]string{"HOME": "/root"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			if got := InCI(getenv); got != tt.want {
				t.Errorf("InCI() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsInteractive_NotTerminal(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func(*os.File) bool { return false }

	if IsInteractive() {
		t.Error("IsInteractive() = true without a terminal")
	}
	if IsTTY() {
		t.Error("IsTTY() = true without a terminal")
	}
}
