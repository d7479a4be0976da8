package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrDefault_NoConfigFile(t *testing.T) {
	dir := setupHome(t)

	cfg, err := LoadOrDefault()
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.SearchLimit != DefaultSearchLimit {
		t.Errorf("SearchLimit = %d", cfg.SearchLimit)
	}
	if len(cfg.DataPaths) != 1 || cfg.DataPaths[0] != filepath.Join(dir, "docs") {
		t.Errorf("DataPaths = %v", cfg.DataPaths)
	}
	if cfg.StatePath != filepath.Join(dir, "state.json") {
		t.Errorf("StatePath = %q", cfg.StatePath)
	}
	opts := cfg.NormalizeOptions()
	if opts.ItemsPerSubtopic != 3 || !opts.GenerateIcons || opts.PreserveStructure {
		t.Errorf("unexpected normalize options: %+v", opts)
	}
}

func TestLoad_MissingFileIsError(t *testing.T) {
	setupHome(t)
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestSaveAndLoad(t *testing.T) {
	setupHome(t)
	off := false
	in := &Config{
		DataPaths:         []string{"/srv/docs"},
		ItemsPerSubtopic:  5,
		GenerateIcons:     &off,
		PreserveStructure: true,
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPaths[0] != "/srv/docs" {
		t.Errorf("DataPaths = %v", cfg.DataPaths)
	}
	if cfg.Listen != DefaultListen || cfg.DefaultSection != DefaultSection {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	opts := cfg.NormalizeOptions()
	if opts.ItemsPerSubtopic != 5 || opts.GenerateIcons || !opts.PreserveStructure {
		t.Errorf("unexpected normalize options: %+v", opts)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := setupHome(t)
	if err := os.WriteFile(filepath.Join(dir, "docnav.yaml"), []byte("data_paths: [/a]\nlisten: \":1\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOCNAV_DATA", "/x"+string(os.PathListSeparator)+"/y")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DOCNAV_LISTEN=:9999\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.DataPaths) != 2 || cfg.DataPaths[0] != "/x" || cfg.DataPaths[1] != "/y" {
		t.Errorf("DataPaths = %v", cfg.DataPaths)
	}
	if cfg.Listen != ":9999" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := ExpandPath("~/docs")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "docs") {
		t.Errorf("ExpandPath = %q", got)
	}
	if got, _ := ExpandPath("/abs"); got != "/abs" {
		t.Errorf("ExpandPath(/abs) = %q", got)
	}
}
