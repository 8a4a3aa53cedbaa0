package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "language: ru\nviewport:\n  width: 1024\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Language != "ru" || cfg.Viewport.Width != 1024 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Viewport.Height != 500 || cfg.LogLevel != "info" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"config.json", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			want := Default()
			want.LogLevel = "debug"
			want.RecentFiles = []string{"sales.csv"}
			if err := Save(path, want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("Load = %+v, want %+v", got, want)
			}
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Load err = %v, want ErrUnsupportedFormat", err)
	}
	if err := Save(path, Default()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Save err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestAddRecentFile(t *testing.T) {
	cfg := Default()
	cfg.AddRecentFile("a.csv", 2)
	cfg.AddRecentFile("b.csv", 2)
	cfg.AddRecentFile("a.csv", 2)
	cfg.AddRecentFile("c.csv", 2)
	want := []string{"c.csv", "a.csv"}
	if !reflect.DeepEqual(cfg.RecentFiles, want) {
		t.Fatalf("RecentFiles = %v, want %v", cfg.RecentFiles, want)
	}
}
