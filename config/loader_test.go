package config

import (
	"os"
	"testing"
)

func TestLoadAppConfig_MissingFile(t *testing.T) {
	origConfig := Config
	origDir, _ := os.Getwd()
	defer func() {
		Config = origConfig
		_ = os.Chdir(origDir)
	}()

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	if err := LoadAppConfig(); err == nil {
		t.Error("loading non-existent config should return error")
	}
}

func TestLoadAppConfig_AppliesDefaults(t *testing.T) {
	origConfig := Config
	origDir, _ := os.Getwd()
	defer func() {
		Config = origConfig
		_ = os.Chdir(origDir)
	}()

	dir := t.TempDir()
	if err := os.WriteFile(dir+"/config.yml", []byte("server:\n  xmlPort: 9090\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if Config.Server.XMLPort != 9090 {
		t.Errorf("xmlPort = %d, want 9090", Config.Server.XMLPort)
	}
	if Config.Server.DocxPort != 8081 {
		t.Errorf("docxPort default = %d, want 8081", Config.Server.DocxPort)
	}
	if Config.Limits.MaxDepth != 200 {
		t.Errorf("maxDepth default = %d, want 200", Config.Limits.MaxDepth)
	}
	if Config.Convert.DefaultRootElement != "root" {
		t.Errorf("defaultRootElement = %q, want root", Config.Convert.DefaultRootElement)
	}
}

func TestLoadAppConfig_RejectsInvalidValues(t *testing.T) {
	origConfig := Config
	origDir, _ := os.Getwd()
	defer func() {
		Config = origConfig
		_ = os.Chdir(origDir)
	}()

	dir := t.TempDir()
	if err := os.WriteFile(dir+"/config.yml", []byte("server:\n  xmlPort: -1\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	if err := LoadAppConfig(); err == nil {
		t.Error("negative port should fail validation")
	}
}
