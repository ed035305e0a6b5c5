package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-lut/analysis"
	"github.com/cwbudde/algo-lut/field"
	"github.com/cwbudde/algo-lut/lut"
)

func TestDefaultsMatchLibraryDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got, want := lut.ApplyOptions(cfg.EngineOptions()...), lut.DefaultConfig(); got != want {
		t.Fatalf("engine config = %+v, want %+v", got, want)
	}

	fc, err := cfg.fieldConfig()
	if err != nil {
		t.Fatalf("fieldConfig: %v", err)
	}
	if fc != field.DefaultConfig() {
		t.Fatalf("field config = %+v, want %+v", fc, field.DefaultConfig())
	}

	if got := cfg.AnalysisOptions(); got != analysis.DefaultOptions() {
		t.Fatalf("analysis options = %+v, want %+v", got, analysis.DefaultOptions())
	}
	if cfg.Field.Mode != "lookup" || cfg.Display.Glyphs != field.DefaultGlyphs {
		t.Fatalf("field mode %q, glyphs %q", cfg.Field.Mode, cfg.Display.Glyphs)
	}
}

func TestUserFileOverridesOnlySetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	data := []byte("field:\n  mode: exact\nengine:\n  trig_size: 1024\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Field.Mode != "exact" || cfg.Engine.TrigSize != 1024 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Field.Radius != 7.5 || cfg.Engine.Rows != 16 || len(cfg.Field.Sources) != 2 {
		t.Fatalf("defaults lost: %+v", cfg)
	}

	e, err := cfg.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if e.Config().TrigSize != 1024 {
		t.Fatalf("engine trig size = %d", e.Config().TrigSize)
	}
	r, err := cfg.FieldRenderer(e)
	if err != nil {
		t.Fatalf("FieldRenderer: %v", err)
	}
	if err := r.Render(3); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("engine: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFieldRendererValidation(t *testing.T) {
	e := lut.MustNew()

	cfg, _ := Load("")
	cfg.Field.Sources = cfg.Field.Sources[:1]
	if _, err := cfg.FieldRenderer(e); err == nil {
		t.Fatal("expected error for one source")
	}

	cfg, _ = Load("")
	cfg.Field.Mode = "cordic"
	if _, err := cfg.FieldRenderer(e); !errors.Is(err, field.ErrUnknownMode) {
		t.Fatalf("mode err = %v", err)
	}

	cfg, _ = Load("")
	cfg.Engine.Rows = 0
	if _, err := cfg.NewEngine(); err == nil {
		t.Fatal("expected error for zero rows")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Field.Aspect = 2

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.Field.Aspect != 2 || back.Analysis.FFTSize != cfg.Analysis.FFTSize {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}
