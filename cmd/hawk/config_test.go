package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hawkql/hawk"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hawk.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Separator != "," {
		t.Errorf("Separator = %q, want %q", cfg.Separator, ",")
	}
	if cfg.Header {
		t.Error("Header should default to false")
	}
	if cfg.Policy() != hawk.FailClosed {
		t.Errorf("Policy() = %v, want FailClosed", cfg.Policy())
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "separator: \";\"\nheader: true\non_error: skip\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Separator != ";" {
		t.Errorf("Separator = %q, want %q", cfg.Separator, ";")
	}
	if !cfg.Header {
		t.Error("Header = false, want true")
	}
	if cfg.Policy() != hawk.FailOpen {
		t.Errorf("Policy() = %v, want FailOpen", cfg.Policy())
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "header: true\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Separator != "," {
		t.Errorf("Separator = %q, want default %q", cfg.Separator, ",")
	}
	if cfg.OnError != "abort" {
		t.Errorf("OnError = %q, want default %q", cfg.OnError, "abort")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "Bad YAML", contents: "separator: [unclosed\n"},
		{name: "Multi-char separator", contents: "separator: \"ab\"\n"},
		{name: "Empty separator", contents: "separator: \"\"\n"},
		{name: "Unknown policy", contents: "on_error: explode\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig() expected error, got nil")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig() expected error for missing file")
	}
}
