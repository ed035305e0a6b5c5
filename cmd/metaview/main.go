//go:build ebiten

// Command metaview shows the metaball field in a window.
//
// Keys: Space pauses, Left/Right step while paused, M cycles lookup, exact
// and fast primitives, Q or Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cwbudde/algo-lut/config"
	"github.com/cwbudde/algo-lut/field"
	"github.com/cwbudde/algo-lut/lut"
)

var modes = []field.Mode{field.ModeLookup, field.ModeExact, field.ModeFast}

type viewer struct {
	engine   *lut.Engine
	fieldCfg field.Config
	renderer *field.Renderer
	mode     int

	img   *ebiten.Image
	buf   []byte
	cols  int
	rows  int
	scale int

	frame  int
	paused bool
}

func newViewer(e *lut.Engine, r *field.Renderer, mode field.Mode, scale int) *viewer {
	cols, rows := r.Size()
	v := &viewer{
		engine:   e,
		fieldCfg: r.Config(),
		renderer: r,
		img:      ebiten.NewImage(cols, rows),
		buf:      make([]byte, cols*rows*4),
		cols:     cols,
		rows:     rows,
		scale:    scale,
	}
	for i, m := range modes {
		if m == mode {
			v.mode = i
		}
	}
	return v
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if err := v.cycleMode(); err != nil {
			return err
		}
	}

	switch {
	case !v.paused:
		v.frame++
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.frame++
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft) && v.frame > 0:
		v.frame--
	}
	return v.renderer.Render(v.frame)
}

func (v *viewer) cycleMode() error {
	next := (v.mode + 1) % len(modes)
	prims, err := field.NewPrimitives(modes[next], v.engine)
	if err != nil {
		return err
	}
	r, err := field.New(v.engine, field.WithConfig(v.fieldCfg), field.WithPrimitives(prims))
	if err != nil {
		return err
	}
	v.renderer, v.mode = r, next
	slog.Info("primitives switched", "mode", modes[next])
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	field.FillRGBA(v.buf, v.renderer.Grid(), field.DefaultPalette)
	v.img.WritePixels(v.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.scale), float64(v.scale))
	screen.DrawImage(v.img, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d", modes[v.mode], v.frame))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cols * v.scale, v.rows * v.scale
}

func main() {
	configPath := flag.String("config", "", "path to config.yaml (empty = use defaults)")
	scale := flag.Int("scale", 0, "window pixels per cell (0 = use config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *scale > 0 {
		cfg.Display.Scale = *scale
	}

	mode, err := field.ParseMode(cfg.Field.Mode)
	if err != nil {
		slog.Error("invalid mode", "error", err)
		os.Exit(1)
	}
	e, err := cfg.NewEngine()
	if err != nil {
		slog.Error("failed to build engine", "error", err)
		os.Exit(1)
	}
	r, err := cfg.FieldRenderer(e)
	if err != nil {
		slog.Error("failed to build renderer", "error", err)
		os.Exit(1)
	}

	v := newViewer(e, r, mode, cfg.Display.Scale)

	ebiten.SetWindowTitle("metaview")
	ebiten.SetTPS(cfg.Display.FPS)
	ebiten.SetWindowSize(v.cols*v.scale, v.rows*v.scale)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
