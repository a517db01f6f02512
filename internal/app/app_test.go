package app

import (
	"testing"
)

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"scan":    false,
		"summary": false,
		"serve":   false,
		"history": false,
	}
	for _, cmd := range rootCmd.Commands() {
		name := cmd.Name()
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s subcommand not registered on rootCmd", name)
		}
	}
}

func TestSetVersion(t *testing.T) {
	defer SetVersion(appVersion)

	SetVersion("9.9.9")
	if rootCmd.Version != "9.9.9" {
		t.Errorf("expected rootCmd version 9.9.9, got %q", rootCmd.Version)
	}
	if appVersion != "9.9.9" {
		t.Errorf("expected appVersion 9.9.9, got %q", appVersion)
	}
}
