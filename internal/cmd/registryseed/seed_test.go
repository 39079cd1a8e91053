package registryseed

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed.Addr != "localhost:8095" {
		t.Fatalf("expected default addr, got %q", cfg.Seed.Addr)
	}
	if cfg.Seed.Fixtures != "fixtures/*.toml" {
		t.Fatalf("expected default fixtures glob, got %q", cfg.Seed.Fixtures)
	}
	if cfg.Seed.Verbose {
		t.Fatal("expected verbose off by default")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("ASSET_REGISTRY_ADDR", "env-registry:1")
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-fixtures", "demo.toml", "-v"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed.Addr != "env-registry:1" {
		t.Fatalf("expected env addr, got %q", cfg.Seed.Addr)
	}
	if cfg.Seed.Fixtures != "demo.toml" || !cfg.Seed.Verbose {
		t.Fatalf("unexpected config %+v", cfg.Seed)
	}

	fs = flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err = ParseConfig(fs, []string{"-addr", "flag-registry:2"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed.Addr != "flag-registry:2" {
		t.Fatalf("expected flag addr, got %q", cfg.Seed.Addr)
	}
}
