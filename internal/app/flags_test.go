package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("golcol", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "42", "-zoom", "5"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 42 || cfg.Zoom != 5 {
		t.Fatalf("config = %+v, want seed 42 zoom 5", *cfg)
	}
	if got := cfg.Scale(2); got != 10 {
		t.Fatalf("scale = %d, want 10", got)
	}
}

func TestConfigScaleClampsZoom(t *testing.T) {
	cfg := &Config{Zoom: 0}
	if got := cfg.Scale(2); got != 2 {
		t.Fatalf("scale = %d, want 2", got)
	}
}
