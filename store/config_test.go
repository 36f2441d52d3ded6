package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tailored-agentic-units/canvas/store"
)

func TestDefaultConfig(t *testing.T) {
	cfg := store.DefaultConfig()

	if cfg.Observer != "slog" {
		t.Errorf("got Observer %q, want %q", cfg.Observer, "slog")
	}
	if cfg.InitialPageWidgetID != "0" {
		t.Errorf("got InitialPageWidgetID %q, want %q", cfg.InitialPageWidgetID, "0")
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := store.DefaultConfig()

	cfg.Merge(&store.Config{Observer: "noop", InitialPageWidgetID: "12"})

	if cfg.Observer != "noop" {
		t.Errorf("got Observer %q, want %q", cfg.Observer, "noop")
	}
	if cfg.InitialPageWidgetID != "12" {
		t.Errorf("got InitialPageWidgetID %q, want %q", cfg.InitialPageWidgetID, "12")
	}
}

func TestConfig_Merge_ZeroValuesPreserveDefaults(t *testing.T) {
	cfg := store.DefaultConfig()
	original := cfg

	cfg.Merge(&store.Config{})

	if cfg != original {
		t.Errorf("got %+v, want %+v (preserved defaults)", cfg, original)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "canvas.json",
			content: `{"observer": "noop", "initial_page_widget_id": "5"}`,
		},
		{
			name:    "toml",
			file:    "canvas.toml",
			content: "observer = \"noop\"\ninitial_page_widget_id = \"5\"\n",
		},
		{
			name:    "yaml",
			file:    "canvas.yaml",
			content: "observer: noop\ninitial_page_widget_id: \"5\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			cfg, err := store.LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}
			if cfg.Observer != "noop" {
				t.Errorf("got Observer %q, want %q", cfg.Observer, "noop")
			}
			if cfg.InitialPageWidgetID != "5" {
				t.Errorf("got InitialPageWidgetID %q, want %q", cfg.InitialPageWidgetID, "5")
			}
		})
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.json")
	if err := os.WriteFile(path, []byte(`{"observer": "noop"}`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := store.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.InitialPageWidgetID != "0" {
		t.Errorf("got InitialPageWidgetID %q, want default %q", cfg.InitialPageWidgetID, "0")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("CANVAS_OBSERVER", "noop")
	t.Setenv("CANVAS_INITIAL_PAGE_WIDGET_ID", "99")

	cfg, err := store.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Observer != "noop" {
		t.Errorf("got Observer %q, want %q", cfg.Observer, "noop")
	}
	if cfg.InitialPageWidgetID != "99" {
		t.Errorf("got InitialPageWidgetID %q, want %q", cfg.InitialPageWidgetID, "99")
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	cfg, err := store.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *cfg != store.DefaultConfig() {
		t.Errorf("got %+v, want defaults", *cfg)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	if _, err := store.LoadConfig("/nonexistent/path/canvas.json"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{invalid}"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := store.LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}
