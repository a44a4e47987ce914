package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/diatomic/internal/analysis"
	"github.com/san-kum/diatomic/internal/config"
	"github.com/san-kum/diatomic/internal/dynamo"
	"github.com/san-kum/diatomic/internal/elements"
	"github.com/san-kum/diatomic/internal/export"
	"github.com/san-kum/diatomic/internal/integrators"
	"github.com/san-kum/diatomic/internal/physics"
	"github.com/san-kum/diatomic/internal/sim"
	"github.com/san-kum/diatomic/internal/viz"
)

const (
	// auTimeFs is one atomic unit of time in femtoseconds.
	auTimeFs = 2.418884326585747e-2
	// speed of light in cm per atomic time unit, for wavenumbers
	cPerAuTime = 2.99792458e10 * 2.418884326585747e-17
)

// loadRun reads --input when set, otherwise simulates the resolved config.
// For an input run the returned config carries the run's parameters and the
// chart flags.
func (o *options) loadRun(cmd *cobra.Command, args []string) (*config.Config, *dynamo.Result, error) {
	if o.input == "" {
		cfg, err := o.resolveConfig(cmd, args)
		if err != nil {
			return nil, nil, err
		}
		res, err := o.simulate(cmd, cfg)
		if err != nil {
			return nil, nil, err
		}
		return cfg, res, nil
	}

	f, err := os.Open(o.input)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	run, err := export.ReadJSON(f)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", o.input, err)
	}

	p := run.Params()
	cfg := config.DefaultConfig()
	cfg.Model, cfg.Element = p.Model(), p.Element()
	cfg.Duration, cfg.Timestep, cfg.Temperature = p.Duration(), p.Timestep(), p.Temperature()
	if flags := cmd.Flags(); flags.Lookup("width") != nil {
		cfg.Chart = config.ChartConfig{Width: o.width, Height: o.height}
	}
	o.log.WithFields(logrus.Fields{"input": o.input, "samples": run.Len()}).Debug("loaded run")
	return cfg, run.Result, nil
}

func runLabel(p dynamo.Params) string {
	return fmt.Sprintf("%s %s (%s) at %gK", p.Model(), p.Element(), elements.Name(p.Element()), p.Temperature())
}

func (o *options) runSimulation(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := o.resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "running %s simulation...\n", cfg.Model)
	start := time.Now()
	res, err := o.simulate(cmd, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	p := cfg.Params()
	last := res.Len() - 1
	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "run: %s\n", runLabel(p))
	fmt.Fprintf(out, "samples: %d (dt=%g au)\n", res.Len(), p.Timestep())
	fmt.Fprintf(out, "initial displacement: %+.6f a0\n", res.Displacements[0])
	fmt.Fprintf(out, "final displacement:   %+.6f a0\n", res.Displacements[last])
	fmt.Fprintf(out, "total energy:         %.6e Eh\n", res.Total[0])

	if props, err := elements.Get(p.Element()); err == nil {
		if m, err := physics.New(p.Model(), props); err == nil {
			fmt.Fprintln(out, "\nconstants (au):")
			printMetrics(out, m.GetParams())
		}
	}

	fmt.Fprintln(out, "\nmetrics:")
	printMetrics(out, res.Metrics)
	return nil
}

// printMetrics writes a name: value listing in name order.
func printMetrics(out io.Writer, m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %.6g\n", name, m[name])
	}
}

func (o *options) plotRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, res, err := o.loadRun(cmd, args)
	if err != nil {
		return err
	}
	p := cfg.Params()

	fmt.Fprintf(out, "run: %s\n", runLabel(p))
	fmt.Fprintf(out, "samples: %d\n\n", res.Len())
	fmt.Fprintln(out, viz.PlotSeries(res.Displacements, "displacement (a0)", 80, 12))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.PlotEnergies(res, 80, 12))
	return nil
}

func (o *options) analyzeRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, res, err := o.loadRun(cmd, args)
	if err != nil {
		return err
	}
	p := cfg.Params()
	dt := p.Timestep()

	freqs, power := analysis.Spectrum(res.Displacements, dt)
	freq, err := analysis.DominantFrequency(res.Displacements, dt)
	if err != nil {
		return fmt.Errorf("frequency analysis: %w", err)
	}

	fmt.Fprintf(out, "frequency analysis: %s\n\n", runLabel(p))

	// Show the band up to three times the dominant frequency.
	cut := len(power)
	for i, f := range freqs {
		if f > 3*freq {
			cut = i
			break
		}
	}
	if cut > 2 {
		fmt.Fprintln(out, asciigraph.Plot(power[1:cut],
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (displacement)"),
		))
		fmt.Fprintln(out)
	}

	period := 1 / freq
	fmt.Fprintf(out, "dominant frequency: %.6e 1/au (%.1f cm^-1)\n", freq, freq/cPerAuTime)
	fmt.Fprintf(out, "period: %.2f au (%.3f fs)\n", period, period*auTimeFs)

	if cp, err := analysis.CrossingPeriod(res.Times, res.Displacements); err == nil {
		fmt.Fprintf(out, "crossing period: %.2f au\n", cp)
	} else {
		o.log.WithError(err).Info("no crossing period")
	}
	if cycles := (res.Times[res.Len()-1]) * freq; cycles < 3 {
		o.log.WithField("cycles", cycles).Warn("run covers few periods; frequency resolution is coarse")
	}
	return nil
}

func (o *options) renderCharts(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, res, err := o.loadRun(cmd, args)
	if err != nil {
		return err
	}
	p := cfg.Params()

	jobs := []struct {
		path   string
		title  string
		render func(io.Writer, *dynamo.Result, export.ChartOptions) error
	}{
		{o.energyOut, "Energy Over Time", export.RenderEnergy},
		{o.displOut, "Displacement Over Time", export.RenderDisplacement},
	}

	for _, job := range jobs {
		if job.path == "" {
			continue
		}
		format, err := export.ParseFormat(job.path)
		if err != nil {
			return err
		}
		opts := export.ChartOptions{
			Width:  cfg.Chart.Width,
			Height: cfg.Chart.Height,
			Format: format,
			Title:  fmt.Sprintf("%s: %s", job.title, runLabel(p)),
		}
		render := job.render
		err = writeFile(job.path, func(w io.Writer) error { return render(w, res, opts) })
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", job.path)
	}
	return nil
}

func (o *options) exportRun(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(o.format)
	if format != "json" && format != "csv" {
		return fmt.Errorf("unknown export format: %s (want json or csv)", o.format)
	}

	cfg, err := o.resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	res, err := o.simulate(cmd, cfg)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		if format == "csv" {
			return export.WriteCSV(w, res)
		}
		return export.WriteJSON(w, cfg.Params(), res)
	}

	if o.out == "" {
		err = write(cmd.OutOrStdout())
	} else {
		err = writeFile(o.out, write)
	}
	if err != nil {
		return err
	}
	o.log.WithFields(logrus.Fields{"format": format, "samples": res.Len()}).Info("exported run")
	return nil
}

// writeFile creates path and hands it to write. A failed close is reported
// since buffered output is only flushed there.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (o *options) compareModels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var cfgArgs []string
	if len(args) > 0 {
		cfgArgs = []string{config.DefaultModel, args[0]}
	}
	cfg, err := o.resolveConfig(cmd, cfgArgs)
	if err != nil {
		return err
	}
	props, err := elements.Get(cfg.Element)
	if err != nil {
		return err
	}

	var params []dynamo.Params
	for _, model := range dynamo.Models {
		if !props.Supports(model) {
			continue
		}
		c := *cfg
		c.Model = model
		params = append(params, c.Params())
	}

	results, err := sim.Sweep(cmd.Context(), params, o.simOptions(cfg)...)
	if err != nil {
		return err
	}

	rows := make([][]string, len(results))
	for i, res := range results {
		rows[i] = summaryRow(params[i].Model(), params[i], res)
	}
	fmt.Fprintf(out, "%s (%s) at %gK, %g au\n\n", cfg.Element, props.Name, cfg.Temperature, cfg.Duration)
	fmt.Fprintln(out, viz.Table(summaryHeader("model"), rows))
	return nil
}

func (o *options) sweepTemperature(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := o.resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	temps := config.TemperatureRange(o.tempFrom, o.tempTo, o.tempSteps)
	params := make([]dynamo.Params, len(temps))
	for i, t := range temps {
		params[i] = cfg.WithTemperature(t).Params()
	}

	start := time.Now()
	results, err := sim.Sweep(cmd.Context(), params, o.simOptions(cfg)...)
	if err != nil {
		return err
	}
	o.log.WithFields(logrus.Fields{"runs": len(params), "elapsed": time.Since(start)}).Info("sweep complete")

	rows := make([][]string, len(results))
	for i, res := range results {
		rows[i] = summaryRow(fmt.Sprintf("%gK", temps[i]), params[i], res)
	}
	fmt.Fprintf(out, "%s %s, %g au\n\n", cfg.Model, cfg.Element, cfg.Duration)
	fmt.Fprintln(out, viz.Table(summaryHeader("temperature"), rows))
	return nil
}

func summaryHeader(first string) []string {
	return []string{first, "r0 (a0)", "amplitude", "energy drift", "mean KE", "period (au)", "potential"}
}

func summaryRow(label string, p dynamo.Params, res *dynamo.Result) []string {
	period := "-"
	if f, err := analysis.DominantFrequency(res.Displacements, p.Timestep()); err == nil && f > 0 {
		period = fmt.Sprintf("%.1f", 1/f)
	}
	return []string{
		label,
		fmt.Sprintf("%+.5f", res.Displacements[0]),
		fmt.Sprintf("%.5f", res.Metrics["amplitude"]),
		fmt.Sprintf("%.2e", res.Metrics["energy_drift"]),
		fmt.Sprintf("%.3e", res.Metrics["mean_kinetic"]),
		period,
		viz.Sparkline(res.Potential, 16),
	}
}

func (o *options) runLive(cmd *cobra.Command, args []string) error {
	if !viz.SetTheme(o.theme) {
		return fmt.Errorf("unknown theme: %s (available: %s)", o.theme, strings.Join(viz.ThemeNames(), ", "))
	}
	cfg, res, err := o.loadRun(cmd, args)
	if err != nil {
		return err
	}
	p := cfg.Params()
	return viz.RunLive(res, runLabel(p))
}

func (o *options) benchModels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	integ := integrators.NewVerlet()

	var rows [][]string
	for _, symbol := range elements.Symbols() {
		props, _ := elements.Lookup(symbol)
		for _, model := range dynamo.Models {
			if !props.Supports(model) {
				continue
			}
			m, err := physics.New(model, props)
			if err != nil {
				return err
			}
			s, err := physics.InitialState(m, props, config.DefaultTemperature)
			if err != nil {
				return err
			}

			start := time.Now()
			for i := 0; i < o.benchSteps; i++ {
				integ.Step(m, props.MassAU, &s, 0.1)
			}
			elapsed := time.Since(start)

			rows = append(rows, []string{
				model, symbol,
				fmt.Sprintf("%d", o.benchSteps),
				elapsed.Round(time.Microsecond).String(),
				fmt.Sprintf("%.0f", float64(o.benchSteps)/elapsed.Seconds()),
			})
		}
	}

	fmt.Fprintln(out, viz.Table([]string{"model", "element", "steps", "time", "steps/sec"}, rows))
	return nil
}

func (o *options) listElements(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var rows [][]string
	for _, symbol := range elements.Symbols() {
		props, _ := elements.Lookup(symbol)
		var models []string
		for _, m := range dynamo.Models {
			if props.Supports(m) {
				models = append(models, m)
			}
		}
		rows = append(rows, []string{
			symbol, props.Name,
			fmt.Sprintf("%.6g", props.MassAU),
			fmt.Sprintf("%.6g", props.SpringConstantAU),
			strings.Join(models, ", "),
		})
	}

	fmt.Fprintln(out, viz.Table([]string{"symbol", "name", "mass (me)", "k (Eh/a0^2)", "models"}, rows))
	return nil
}

func (o *options) listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	models := dynamo.Models
	if len(args) > 0 {
		models = []string{args[0]}
	}

	found := false
	for _, model := range models {
		presets := config.ListPresets(model)
		if len(presets) == 0 {
			continue
		}
		found = true
		fmt.Fprintf(out, "presets for %s:\n", model)
		for _, name := range presets {
			p := config.GetPreset(model, name)
			fmt.Fprintf(out, "  %-18s %s at %gK, %g au (dt %g)\n", name, p.Element, p.Temperature, p.Duration, p.Timestep)
		}
	}
	if !found {
		fmt.Fprintf(out, "no presets for model: %s\n", strings.Join(models, ", "))
	}
	return nil
}
