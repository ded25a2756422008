package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit_WithValidConfig(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	cfgContent := `
version: 1
master: pages/master.html
catalog: pages/catalog.yaml
defaults:
  format: json

output:
  dir: out
  prefix: page_
  ext: .htm
  script: probe.js
`
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	// Initialize config
	if err := Init(cfgPath); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}

	// Check version
	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}

	if cfg.Master != "pages/master.html" {
		t.Errorf("expected master 'pages/master.html', got %q", cfg.Master)
	}
	if cfg.Catalog != "pages/catalog.yaml" {
		t.Errorf("expected catalog 'pages/catalog.yaml', got %q", cfg.Catalog)
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("expected format 'json', got %q", cfg.Defaults.Format)
	}

	// Check output naming
	if cfg.Output.Dir != "out" {
		t.Errorf("expected output dir 'out', got %q", cfg.Output.Dir)
	}
	if cfg.Output.Prefix != "page_" {
		t.Errorf("expected output prefix 'page_', got %q", cfg.Output.Prefix)
	}
	if cfg.Output.Ext != ".htm" {
		t.Errorf("expected output ext '.htm', got %q", cfg.Output.Ext)
	}
	if cfg.Output.Script != "probe.js" {
		t.Errorf("expected script 'probe.js', got %q", cfg.Output.Script)
	}
}

func TestInit_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(cfgPath, []byte("version: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if err := Init(cfgPath); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg := Get()
	if cfg.Master != "master.html" {
		t.Errorf("expected default master 'master.html', got %q", cfg.Master)
	}
	if cfg.Output.Prefix != "evt_" {
		t.Errorf("expected default prefix 'evt_', got %q", cfg.Output.Prefix)
	}
	if cfg.Output.Ext != ".html" {
		t.Errorf("expected default ext '.html', got %q", cfg.Output.Ext)
	}
	if cfg.Output.Script != "evtest.js" {
		t.Errorf("expected default script 'evtest.js', got %q", cfg.Output.Script)
	}
	if cfg.Defaults.Format != "plain" {
		t.Errorf("expected default format 'plain', got %q", cfg.Defaults.Format)
	}
}
