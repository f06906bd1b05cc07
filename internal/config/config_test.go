package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HistorySize != 200 {
		t.Errorf("HistorySize = %d, want default 200", cfg.HistorySize)
	}
	if cfg.NoColor {
		t.Error("NoColor should default to false")
	}
}

func TestLoadParsesPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `no_color: true
history_size: 50
presets:
  lab:
    payload: shell/reverse_tcp
    host: 192.168.56.1
    port: "4444"
    encoder: base64
    exit_on_session: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
	if cfg.HistorySize != 50 {
		t.Errorf("HistorySize = %d, want 50", cfg.HistorySize)
	}

	preset, ok := cfg.Presets["lab"]
	if !ok {
		t.Fatal("preset lab missing")
	}
	if preset.Payload != "shell/reverse_tcp" {
		t.Errorf("preset payload = %q", preset.Payload)
	}
	if preset.Port != "4444" {
		t.Errorf("preset port = %q", preset.Port)
	}
	if !preset.ExitOnSession {
		t.Error("preset exit_on_session = false, want true")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("presets: [not a map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed yaml")
	}
}

func TestLoadNormalizesHistorySize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("history_size: -5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HistorySize != 200 {
		t.Errorf("HistorySize = %d, want default 200 for non-positive values", cfg.HistorySize)
	}
}
