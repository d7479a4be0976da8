package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupHome points DOCNAV_HOME at a fresh temp dir and returns it.
func setupHome(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), ".docnav")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOCNAV_HOME", dir)
	t.Setenv("DOCNAV_DATA", "")
	t.Setenv("DOCNAV_LISTEN", "")
	return dir
}

func TestLoadDotEnv_NotExist(t *testing.T) {
	setupHome(t)

	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("expected empty map, got %v", m)
	}
}

func TestLoadDotEnv_ParsesKeyValue(t *testing.T) {
	dir := setupHome(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("# comment\nA=1\nB=\"two words\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if m["A"] != "1" || m["B"] != "two words" {
		t.Fatalf("unexpected map: %v", m)
	}
}

func TestGetConfigValue_EnvOverridesDotEnv(t *testing.T) {
	dir := setupHome(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("K=fromdotenv\nONLY=dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("K", "fromenv")

	v, err := GetConfigValue("K")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "fromenv" {
		t.Fatalf("expected env override, got %q", v)
	}
	v, err = GetConfigValue("ONLY")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "dotenv" {
		t.Fatalf("expected dotenv fallback, got %q", v)
	}
}

func TestEnsureDotEnvTemplate_DoesNotOverwrite(t *testing.T) {
	dir := setupHome(t)
	p := filepath.Join(dir, ".env")
	if err := os.WriteFile(p, []byte("DOCNAV_LISTEN=keep\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDotEnvTemplate(); err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "DOCNAV_LISTEN=keep\n" {
		t.Fatalf("template overwrote existing file: %q", string(b))
	}
}

func TestEnsureDotEnvTemplate_CreatesWhenMissing(t *testing.T) {
	dir := setupHome(t)

	if err := EnsureDotEnvTemplate(); err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "DOCNAV_DATA=") {
		t.Fatalf("unexpected template: %q", string(b))
	}
}
