// Command metaball animates the two-source metaball field in the terminal.
//
// Usage:
//
//	metaball [flags]
//
// On a terminal each frame redraws in place with one coloured glyph per cell.
// When stdout is redirected, frames are written one after another.
//
// Examples:
//
//	metaball
//	metaball -mode exact -fps 15
//	metaball -frames 4 > frames.txt
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/cwbudde/algo-lut/config"
	"github.com/cwbudde/algo-lut/field"
)

const (
	ansiHome  = "\x1b[H"
	ansiClear = "\x1b[2J"
	ansiReset = "\x1b[0m"
	hideCur   = "\x1b[?25l"
	showCur   = "\x1b[?25h"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (empty = use defaults)")
	mode := flag.String("mode", "", "primitives: lookup, exact or fast (empty = use config)")
	frames := flag.Int("frames", 0, "number of frames to draw (0 = until interrupted)")
	fps := flag.Int("fps", 0, "frames per second (0 = use config)")
	start := flag.Int("start", 0, "first frame number")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: metaball [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Animates the metaball field in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Field.Mode = *mode
	}
	if *fps > 0 {
		cfg.Display.FPS = *fps
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

	fd := int(os.Stdout.Fd())
	tty := term.IsTerminal(fd)
	if tty {
		cols, rows := r.Size()
		if w, h, err := term.GetSize(fd); err == nil && (w < cols || h < rows) {
			slog.Warn("terminal smaller than grid", "width", w, "height", h, "cols", cols, "rows", rows)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := animator{
		r:      r,
		glyphs: cfg.Display.Glyphs,
		color:  tty,
		every:  frameInterval(cfg.Display.FPS),
	}
	if err := a.run(ctx, os.Stdout, *start, *frames); err != nil {
		slog.Error("animation failed", "error", err)
		os.Exit(1)
	}
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}

type animator struct {
	r      *field.Renderer
	glyphs string
	color  bool
	every  time.Duration
}

// run draws frames start, start+1, ... until n frames are drawn (n > 0) or
// ctx is cancelled.
func (a animator) run(ctx context.Context, w io.Writer, start, n int) error {
	if a.color {
		fmt.Fprint(w, ansiClear, hideCur)
		defer fmt.Fprint(w, ansiReset, showCur)
	}

	ticker := time.NewTicker(a.every)
	defer ticker.Stop()

	for i := 0; n <= 0 || i < n; i++ {
		if err := a.r.Render(start + i); err != nil {
			return err
		}
		if err := a.draw(w, start+i); err != nil {
			return err
		}
		if n > 0 && i == n-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func (a animator) draw(w io.Writer, frame int) error {
	cols, _ := a.r.Size()
	cells := a.r.Grid()

	var sb strings.Builder
	if a.color {
		sb.WriteString(ansiHome)
		sb.WriteString(colorText(cells, cols, a.glyphs))
		fmt.Fprintf(&sb, "%sframe %d\n", ansiReset, frame)
	} else {
		fmt.Fprintf(&sb, "frame %d\n", frame)
		sb.WriteString(field.Text(cells, cols, a.glyphs))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// colorText is field.Text with a 24-bit foreground colour per level. Each
// glyph is doubled so cells come out roughly square.
func colorText(cells []uint8, cols int, glyphs string) string {
	lines := strings.Split(strings.TrimSuffix(field.Text(cells, cols, glyphs), "\n"), "\n")
	last := len(field.DefaultPalette) - 1

	var sb strings.Builder
	for y, line := range lines {
		for x, g := range []rune(line) {
			lvl := int(cells[y*cols+x])
			if lvl > last {
				lvl = last
			}
			c := field.DefaultPalette[lvl]
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm%c%c", c.R, c.G, c.B, g, g)
		}
		sb.WriteString(ansiReset)
		sb.WriteByte('\n')
	}
	return sb.String()
}
