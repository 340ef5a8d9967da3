package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewUsesDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, ".folio", "folio.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
	if cfg.CellWidthPx != 8 || cfg.CellHeightPx != 16 {
		t.Fatalf("unexpected cell size %dx%d", cfg.CellWidthPx, cfg.CellHeightPx)
	}
	if cfg.EmailJS.Configured() {
		t.Fatalf("emailjs must not be configured by default")
	}
}

func TestNewReadsFileAndResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	body := []byte(`
language: en
reduced_motion: true
cv_path: docs/cv.pdf
network:
  interval: 10s
emailjs:
  service_id: svc
  template_id: tpl
  public_key: key
`)
	if err := os.WriteFile(filepath.Join(dir, FileName), body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Language != "en" || !cfg.ReducedMotion {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.CVPath != filepath.Join(dir, "docs", "cv.pdf") {
		t.Fatalf("cv path not resolved: %s", cfg.CVPath)
	}
	if cfg.Network.Interval != 10*time.Second {
		t.Fatalf("expected 10s interval, got %s", cfg.Network.Interval)
	}
	if !cfg.EmailJS.Configured() {
		t.Fatalf("emailjs should be configured")
	}
	if cfg.EmailJS.Endpoint == "" {
		t.Fatalf("default endpoint lost after partial emailjs block")
	}
}

func TestApplyEnvMotionAndMouse(t *testing.T) {
	env := map[string]string{"NO_MOTION": "yes", "FOLIO_MOUSE": "false", "FOLIO_LANGUAGE": "es"}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }
	cfg := Default("/tmp")
	if err := cfg.applyEnv(lookup); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if !cfg.ReducedMotion || cfg.Mouse || cfg.Language != "es" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}

	env["FOLIO_MOUSE"] = "maybe"
	if err := cfg.applyEnv(lookup); err == nil {
		t.Fatalf("invalid FOLIO_MOUSE must fail")
	}
}

func TestNewRejectsEmptyDirAndBadFile(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatalf("empty dir must fail")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("cell_width_px: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := New(dir); err == nil {
		t.Fatalf("zero cell width must fail validation")
	}
}
