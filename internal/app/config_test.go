package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"bog/internal/app"
)

func TestResolveHome_Precedence(t *testing.T) {
	env := t.TempDir()
	t.Setenv(app.HomeEnv, env)

	got, err := app.ResolveHome("/explicit")
	if err != nil || got != "/explicit" {
		t.Fatalf("flag: got %q, %v", got, err)
	}
	got, err = app.ResolveHome("")
	if err != nil || got != env {
		t.Fatalf("env: got %q, %v", got, err)
	}

	user := t.TempDir()
	t.Setenv(app.HomeEnv, "")
	t.Setenv("HOME", user)
	got, err = app.ResolveHome("")
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if got != filepath.Join(user, ".bog") {
		t.Fatalf("default: got %q", got)
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	home := t.TempDir()
	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Home != home || cfg.Logger == nil || cfg.Logger.Environment != "production" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	home := t.TempDir()
	data := "[logger]\nenv = \"development\"\nenable_stacktrace = true\n"
	if err := os.WriteFile(filepath.Join(home, app.ConfigFile), []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Logger.Environment != "development" || !cfg.Logger.EnableStacktrace {
		t.Fatalf("logger config not applied: %+v", cfg.Logger)
	}
}

func TestLoadConfig_BadTOML(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, app.ConfigFile), []byte("[logger\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := app.LoadConfig(home); err == nil {
		t.Fatal("expected error for malformed bog.toml")
	}
}

func TestNewWire_OpensTome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "bog")
	w, err := app.NewWire(app.Config{Home: home})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Tome.Base() != home {
		t.Fatalf("tome base %q, want %q", w.Tome.Base(), home)
	}
	if _, _, err := w.Identity.Reroot(); err != nil {
		t.Fatalf("reroot: %v", err)
	}
}
