// Command lutinfo prints the measured accuracy of the lookup engine.
//
// Usage:
//
//	lutinfo [flags]
//
// It sweeps square root and trig inputs, measures the spectral purity of a
// table-driven oscillator and diffs lookup against exact field renders.
//
// Examples:
//
//	lutinfo
//	lutinfo -trig-size 1024
//	lutinfo -config my.yaml -csv out/
//	lutinfo -json
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-lut/analysis"
	"github.com/cwbudde/algo-lut/config"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (empty = use defaults)")
	trigSize := flag.Int("trig-size", 0, "override trig table size (0 = use config)")
	csvDir := flag.String("csv", "", "directory for CSV export of every sweep")
	writeConfig := flag.String("write-config", "", "write the effective config to this path")
	jsonLogs := flag.Bool("json", false, "log as JSON instead of text")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lutinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints measured accuracy of the table-based sin/cos/sqrt engine.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lutinfo\n")
		fmt.Fprintf(os.Stderr, "  lutinfo -trig-size 1024\n")
		fmt.Fprintf(os.Stderr, "  lutinfo -config my.yaml -csv out/\n")
	}
	flag.Parse()

	setupLogger(*jsonLogs)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *trigSize > 0 {
		cfg.Engine.TrigSize = *trigSize
	}
	if *writeConfig != "" {
		if err := cfg.WriteYAML(*writeConfig); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
	}

	e, err := cfg.NewEngine()
	if err != nil {
		slog.Error("failed to build engine", "error", err)
		os.Exit(1)
	}

	rep, err := analysis.Run(e, cfg.AnalysisOptions())
	if err != nil {
		slog.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	f := cpu.DetectFeatures()
	slog.Info("engine ready",
		"arch", f.Architecture,
		"avx2", f.HasAVX2,
		"neon", f.HasNEON,
		"region_bytes", e.Region().Len(),
		"trig_size", e.Config().TrigSize,
	)

	if err := printReport(os.Stdout, rep); err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}
	slog.Debug("report", "summary", rep)

	if *csvDir != "" {
		if err := writeCSVs(*csvDir, rep); err != nil {
			slog.Error("csv export failed", "error", err)
			os.Exit(1)
		}
		slog.Info("csv written", "dir", *csvDir)
	}
}

func setupLogger(json bool) {
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		h = slog.NewTextHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(h))
}

func printReport(w io.Writer, rep analysis.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tSamples\tMean |err|\tStd |err|\tMax |err|\tMax rel err\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------\t-------\t----------\t---------\t---------\t-----------\n"); err != nil {
		return err
	}

	rows := append(append([]analysis.Summary(nil), rep.Summaries...), rep.RenderDelta)
	for _, s := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6g\t%.6g\t%.6g\t%.6g\n",
			s.Name,
			s.Count,
			s.MeanAbsError,
			s.StdAbsError,
			s.MaxAbsError,
			s.MaxRelError,
		); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sp := rep.Spectrum
	if _, err := fmt.Fprintf(w, "\nOscillator: %d samples, carrier bin %d, worst spur bin %d, SFDR %.2f dB\n",
		sp.Size, sp.CarrierBin, sp.SpurBin, sp.SFDRdB); err != nil {
		return err
	}

	var differing, cells, worst int
	for _, d := range rep.Frames {
		differing += d.Differing
		cells += d.Cells
		if d.MaxDelta > worst {
			worst = d.MaxDelta
		}
	}
	share := 0.0
	if cells > 0 {
		share = 100 * float64(differing) / float64(cells)
	}
	_, err := fmt.Fprintf(w, "Field: %d frames, %.2f%% of cells differ from exact, max level delta %d\n",
		len(rep.Frames), share, worst)
	return err
}

func writeCSVs(dir string, rep analysis.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for name, records := range map[string]any{
		"summary.csv":  append(append([]analysis.Summary(nil), rep.Summaries...), rep.RenderDelta),
		"sqrt.csv":     rep.Sqrt,
		"trig.csv":     rep.Trig,
		"spectrum.csv": []analysis.SpectrumReport{rep.Spectrum},
		"frames.csv":   rep.Frames,
	} {
		if err := writeCSV(filepath.Join(dir, name), records); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, records any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return analysis.WriteCSV(f, records)
}
