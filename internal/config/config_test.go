package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/parlsim/internal/model"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if Exists() {
		t.Fatal("Exists = true in an empty config dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Generator.MinParties != 6 || cfg.Generator.MaxParties != 8 || !cfg.General.Journal {
		t.Fatalf("Load = %+v, want defaults", cfg)
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := DefaultConfig()
	cfg.General.DefaultScale = "big"
	cfg.Generator.PartyNames = []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	cfg.Appearance.Theme = "tokyo-night"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(ConfigPath())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config mode = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DefaultScale != "big" || got.Appearance.Theme != "tokyo-night" || len(got.Generator.PartyNames) != 8 {
		t.Fatalf("Load = %+v", got)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "parlsim"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("[general\njournal = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestGeneratorOptions(t *testing.T) {
	opts, err := GeneratorConfig{}.Options()
	if err != nil || opts.MinParties != 6 || opts.MaxParties != 8 {
		t.Fatalf("zero GeneratorConfig = %+v, %v; want 6-8", opts, err)
	}

	opts, err = GeneratorConfig{
		PartyNames: []string{" A ", "B", "B", "", "C"},
		MinParties: 2,
		MaxParties: 3,
	}.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if len(opts.Names) != 3 || opts.Names[0] != "A" {
		t.Fatalf("Names = %q, want [A B C]", opts.Names)
	}

	bad := []GeneratorConfig{
		{MinParties: 5, MaxParties: 2},
		{MinParties: 0, MaxParties: 3},
		{MinParties: 1, MaxParties: 50},
		{PartyNames: []string{"A", "B"}, MinParties: 2, MaxParties: 4},
	}
	for _, g := range bad {
		if _, err := g.Options(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("Options(%+v) = %v, want ErrInvalidConfig", g, err)
		}
	}
}

func TestDefaults(t *testing.T) {
	scale, stance := GeneralConfig{DefaultScale: "BIG", DefaultStance: "coalition"}.Defaults()
	if scale != model.ScaleBig || stance != model.StanceCoalition {
		t.Fatalf("Defaults = %s/%s, want big/coalition", scale, stance)
	}
	scale, stance = GeneralConfig{DefaultScale: "huge"}.Defaults()
	if scale != model.ScaleSmall || stance != model.StanceOpposition {
		t.Fatalf("Defaults fallback = %s/%s, want small/opposition", scale, stance)
	}
}

func TestSeedFromEnv(t *testing.T) {
	t.Setenv(SeedEnv, "")
	if _, ok, err := SeedFromEnv(); ok || err != nil {
		t.Fatalf("unset: ok=%v err=%v", ok, err)
	}
	t.Setenv(SeedEnv, " 42 ")
	if seed, ok, err := SeedFromEnv(); !ok || err != nil || seed != 42 {
		t.Fatalf("SeedFromEnv = %d, %v, %v; want 42", seed, ok, err)
	}
	t.Setenv(SeedEnv, "abc")
	if _, _, err := SeedFromEnv(); err == nil {
		t.Fatal("SeedFromEnv accepted a non-number")
	}
}
