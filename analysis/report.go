package analysis

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-lut/field"
	"github.com/cwbudde/algo-lut/lut"
)

// Options selects the sweep sizes of a full report.
type Options struct {
	Decades     int
	PerDecade   int
	TrigSamples int
	FFTSize     int
	Cycles      int
	Frames      int
	FrameStride int
}

// DefaultOptions returns sweep sizes that run in well under a second.
func DefaultOptions() Options {
	return Options{
		Decades:     6,
		PerDecade:   50,
		TrigSamples: 4096,
		FFTSize:     4096,
		Cycles:      37,
		Frames:      120,
		FrameStride: 5,
	}
}

// Report gathers every characterization for one engine.
type Report struct {
	Sqrt        []SqrtRecord
	Trig        []TrigRecord
	Summaries   []Summary
	Spectrum    SpectrumReport
	Frames      []FrameDiff
	RenderDelta Summary // lookup vs exact grid levels over all frames
}

// LogValue implements slog.LogValuer for structured logging.
func (r Report) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(r.Summaries)+2)
	for _, s := range r.Summaries {
		attrs = append(attrs, slog.Any(s.Name, s))
	}
	attrs = append(attrs,
		slog.Float64("sfdr_db", r.Spectrum.SFDRdB),
		slog.Any("render", r.RenderDelta),
	)
	return slog.GroupValue(attrs...)
}

// Run builds a full report. The field comparison renders the default
// configuration with lookup and exact primitives into e's grid.
func Run(e *lut.Engine, opts Options) (Report, error) {
	var rep Report
	var err error

	if rep.Sqrt, err = SqrtSweep(e, opts.Decades, opts.PerDecade); err != nil {
		return Report{}, err
	}
	sq, err := SummarizeSqrt(rep.Sqrt)
	if err != nil {
		return Report{}, err
	}

	if rep.Trig, err = TrigSweep(e, opts.TrigSamples); err != nil {
		return Report{}, err
	}
	trig, err := SummarizeTrig(rep.Trig)
	if err != nil {
		return Report{}, err
	}
	rep.Summaries = append([]Summary{sq}, trig...)

	if rep.Spectrum, err = Spectrum(e, opts.FFTSize, opts.Cycles); err != nil {
		return Report{}, err
	}

	lookup, err := field.New(e)
	if err != nil {
		return Report{}, fmt.Errorf("lookup renderer: %w", err)
	}
	exact, err := field.New(e, field.WithPrimitives(field.Exact()))
	if err != nil {
		return Report{}, fmt.Errorf("exact renderer: %w", err)
	}
	if rep.Frames, err = CompareRenders(lookup, exact, FrameRange(0, opts.Frames, opts.FrameStride)); err != nil {
		return Report{}, err
	}
	if rep.RenderDelta, err = summarizeFrames(lookup, exact, rep.Frames); err != nil {
		return Report{}, err
	}
	return rep, nil
}

// summarizeFrames re-renders the compared frames and summarizes the level
// error of a against b over all cells.
func summarizeFrames(a, b *field.Renderer, frames []FrameDiff) (Summary, error) {
	var approx, exact []float64
	for _, fd := range frames {
		if err := a.Render(fd.Frame); err != nil {
			return Summary{}, err
		}
		for _, c := range a.Grid() {
			approx = append(approx, float64(c))
		}
		if err := b.Render(fd.Frame); err != nil {
			return Summary{}, err
		}
		for _, c := range b.Grid() {
			exact = append(exact, float64(c))
		}
	}
	return Summarize("render_level", approx, exact)
}
