package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.HardConversion {
		t.Fatalf("expected hard conversion on by default")
	}
	if cfg.Complete != "" {
		t.Fatalf("expected no completion mode by default, got %q", cfg.Complete)
	}
	if cfg.Romanize {
		t.Fatalf("expected romanize off by default")
	}
	if cfg.Encoding != "utf-8" {
		t.Fatalf("expected utf-8 default encoding, got %q", cfg.Encoding)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadEmptyPathKeepsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadReadsSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hanbal.ini")
	contents := "[pronounce]\nhard_conversion = false\ncomplete = phonetic\n\n[output]\nromanize = true\nencoding = euc-kr\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HardConversion {
		t.Fatalf("expected hard conversion off")
	}
	if cfg.Complete != "phonetic" {
		t.Fatalf("expected phonetic completion, got %q", cfg.Complete)
	}
	if !cfg.Romanize {
		t.Fatalf("expected romanize on")
	}
	if cfg.Encoding != "euc-kr" {
		t.Fatalf("expected euc-kr encoding, got %q", cfg.Encoding)
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("expected error for directory path")
	}
}
