package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/diatomic/internal/config"
	"github.com/san-kum/diatomic/internal/dynamo"
	"github.com/san-kum/diatomic/internal/metrics"
	"github.com/san-kum/diatomic/internal/sim"
	"github.com/san-kum/diatomic/internal/viz"
)

// options holds every flag value so each root command owns its own set.
type options struct {
	logLevel   string
	configFile string
	preset     string

	duration    float64
	timestep    float64
	temperature float64
	maxSamples  int

	input    string
	out      string
	progress bool
	theme    string

	format     string
	energyOut  string
	displOut   string
	width      int
	height     int
	tempFrom   float64
	tempTo     float64
	tempSteps  int
	benchSteps int

	log *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{log: logrus.New()}
	o.log.SetOutput(os.Stderr)

	rootCmd := &cobra.Command{
		Use:           "diatomic",
		Short:         "bond dynamics of a diatomic molecule",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(o.logLevel)
			if err != nil {
				return err
			}
			o.log.SetLevel(level)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [model] [element]",
		Short: "run a simulation and print a summary",
		Args:  cobra.MaximumNArgs(2),
		RunE:  o.runSimulation,
	}
	o.addRunFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [model] [element]",
		Short: "plot displacement and energies in the terminal",
		Args:  cobra.MaximumNArgs(2),
		RunE:  o.plotRun,
	}
	o.addRunFlags(plotCmd)
	o.addInputFlag(plotCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze [model] [element]",
		Short: "vibrational frequency analysis",
		Args:  cobra.MaximumNArgs(2),
		RunE:  o.analyzeRun,
	}
	o.addRunFlags(analyzeCmd)
	o.addInputFlag(analyzeCmd)

	chartCmd := &cobra.Command{
		Use:   "chart [model] [element]",
		Short: "render energy and displacement charts (png or svg)",
		Args:  cobra.MaximumNArgs(2),
		RunE:  o.renderCharts,
	}
	o.addRunFlags(chartCmd)
	o.addInputFlag(chartCmd)
	chartCmd.Flags().StringVar(&o.energyOut, "energy", "energy.png", "energy chart path")
	chartCmd.Flags().StringVar(&o.displOut, "displacement", "displacement.png", "displacement chart path")
	chartCmd.Flags().IntVar(&o.width, "width", config.DefaultChartWidth, "chart width in pixels")
	chartCmd.Flags().IntVar(&o.height, "height", config.DefaultChartHeight, "chart height in pixels")

	exportCmd := &cobra.Command{
		Use:   "export [model] [element]",
		Short: "export run data as json or csv",
		Args:  cobra.MaximumNArgs(2),
		RunE:  o.exportRun,
	}
	o.addRunFlags(exportCmd)
	exportCmd.Flags().StringVar(&o.format, "format", "json", "output format (json, csv)")
	exportCmd.Flags().StringVarP(&o.out, "out", "o", "", "output file (default stdout)")

	compareCmd := &cobra.Command{
		Use:   "compare [element]",
		Short: "compare every supported model on one element",
		Args:  cobra.MaximumNArgs(1),
		RunE:  o.compareModels,
	}
	o.addRunFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [model] [element]",
		Short: "run a temperature sweep in parallel",
		Args:  cobra.MaximumNArgs(2),
		RunE:  o.sweepTemperature,
	}
	o.addRunFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&o.tempFrom, "from", 100, "lowest temperature (K)")
	sweepCmd.Flags().Float64Var(&o.tempTo, "to", 1000, "highest temperature (K)")
	sweepCmd.Flags().IntVar(&o.tempSteps, "steps", 10, "number of temperatures")

	liveCmd := &cobra.Command{
		Use:   "live [model] [element]",
		Short: "replay a run as an animated bond",
		Args:  cobra.MaximumNArgs(2),
		RunE:  o.runLive,
	}
	o.addRunFlags(liveCmd)
	o.addInputFlag(liveCmd)
	liveCmd.Flags().StringVar(&o.theme, "theme", viz.ThemeClassic.Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark every supported model/element pair",
		Args:  cobra.NoArgs,
		RunE:  o.benchModels,
	}
	benchCmd.Flags().IntVar(&o.benchSteps, "steps", 1_000_000, "steps per pair")

	elementsCmd := &cobra.Command{
		Use:   "elements",
		Short: "list the element table",
		Args:  cobra.NoArgs,
		RunE:  o.listElements,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  o.listPresets,
	}

	rootCmd.AddCommand(runCmd, plotCmd, analyzeCmd, chartCmd, exportCmd, compareCmd, sweepCmd, liveCmd, benchCmd, elementsCmd, presetsCmd)
	return rootCmd
}

func (o *options) addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.duration, "time", config.DefaultDuration, "duration (au)")
	cmd.Flags().Float64Var(&o.timestep, "dt", config.DefaultTimestep, "timestep (au)")
	cmd.Flags().Float64Var(&o.temperature, "temp", config.DefaultTemperature, "temperature (K)")
	cmd.Flags().IntVar(&o.maxSamples, "max-samples", sim.DefaultMaxSamples, "sample limit per run")
	cmd.Flags().StringVar(&o.configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&o.preset, "preset", "", "use preset configuration")
	cmd.Flags().BoolVar(&o.progress, "progress", false, "draw a progress bar on stderr while simulating")
}

func (o *options) addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "read a run exported as json instead of simulating")
}

// resolveConfig layers defaults, preset, config file, positional args and
// explicitly set flags, in that order.
func (o *options) resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	model := cfg.Model
	if len(args) > 0 {
		model = args[0]
	}

	if o.preset != "" {
		p := config.GetPreset(model, o.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", o.preset, config.ListPresets(model))
		}
		cfg = p
	}

	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Model = args[0]
	}
	if len(args) > 1 {
		cfg.Element = args[1]
	}

	flags := cmd.Flags()
	if flags.Changed("time") {
		cfg.Duration = o.duration
	}
	if flags.Changed("dt") {
		cfg.Timestep = o.timestep
	}
	if flags.Changed("temp") {
		cfg.Temperature = o.temperature
	}
	if flags.Changed("max-samples") {
		cfg.MaxSamples = o.maxSamples
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		cfg.Chart.Width = o.width
	}
	if flags.Lookup("height") != nil && flags.Changed("height") {
		cfg.Chart.Height = o.height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o.log.WithFields(logrus.Fields{
		"model":       cfg.Model,
		"element":     cfg.Element,
		"duration":    cfg.Duration,
		"timestep":    cfg.Timestep,
		"temperature": cfg.Temperature,
	}).Debug("resolved configuration")
	return cfg, nil
}

func (o *options) simOptions(cfg *config.Config) []sim.Option {
	return []sim.Option{sim.WithMaxSamples(cfg.MaxSamples), sim.WithLogger(o.log)}
}

func (o *options) simulate(cmd *cobra.Command, cfg *config.Config) (*dynamo.Result, error) {
	s := sim.New(o.simOptions(cfg)...)
	for _, m := range metrics.Defaults() {
		s.AddMetric(m)
	}
	p := cfg.Params()
	if o.progress {
		s.AddObserver(viz.NewProgress(cmd.ErrOrStderr(), p.Steps()+1))
	}
	return s.Run(p)
}
