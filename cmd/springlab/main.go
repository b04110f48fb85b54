package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/springlab/internal/analysis"
	"github.com/san-kum/springlab/internal/config"
	"github.com/san-kum/springlab/internal/metrics"
	"github.com/san-kum/springlab/internal/oscillator"
	"github.com/san-kum/springlab/internal/storage"
	"github.com/san-kum/springlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	mass       float64
	stiffness  float64
	damping    float64
	timeScale  float64
	pos        float64
	vel        float64
)

// main registers commands and flags and launches the interactive lab when no
// subcommand is given. It exits with status 1 if command execution fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "springlab",
		Short: "interactive spring-mass oscillator lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			ctrl, err := oscillator.New(cfg.Oscillator())
			if err != nil {
				return err
			}
			return viz.Run(ctrl)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springlab", "data directory")
	addParamFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless simulation and save the trace",
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", oscillator.DefaultMaxTime, "duration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved velocity trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export trace data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&dt, "dt", oscillator.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&mass, "mass", oscillator.DefaultMass, "mass")
	cmd.Flags().Float64Var(&stiffness, "stiffness", oscillator.DefaultStiffness, "spring stiffness")
	cmd.Flags().Float64Var(&damping, "damping", oscillator.DefaultDamping, "damping coefficient")
	cmd.Flags().Float64Var(&timeScale, "speed", oscillator.DefaultTimeScale, "simulation speed factor")
	cmd.Flags().Float64Var(&pos, "pos", oscillator.DefaultPosition, "initial position")
	cmd.Flags().Float64Var(&vel, "vel", 0.0, "initial velocity")
}

// resolveConfig layers preset, config file, and explicit flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("mass") {
		cfg.Params.Mass = mass
	}
	if cmd.Flags().Changed("stiffness") {
		cfg.Params.Stiffness = stiffness
	}
	if cmd.Flags().Changed("damping") {
		cfg.Params.Damping = damping
	}
	if cmd.Flags().Changed("speed") {
		cfg.Params.TimeScale = timeScale
	}
	if cmd.Flags().Changed("pos") {
		cfg.Initial.Position = pos
	}
	if cmd.Flags().Changed("vel") {
		cfg.Initial.Velocity = vel
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctrl, err := oscillator.New(cfg.Oscillator())
	if err != nil {
		return err
	}

	collectors := metrics.Defaults()

	fmt.Println("running spring-mass simulation...")
	start := time.Now()

	var lastFrame oscillator.Frame
	steps := 0
	for ctrl.ElapsedTime() < cfg.Duration {
		frame, err := ctrl.Tick()
		if err != nil {
			return err
		}
		metrics.Collect(collectors, ctrl.State(), ctrl.Params())
		lastFrame = frame
		steps++
	}

	elapsed := time.Since(start)
	results := metrics.Report(collectors)

	runID, err := st.Save(cfg.Dt, cfg.Duration, ctrl.Params(), lastFrame.Trace, results)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", steps)
	fmt.Printf("samples recorded: %d\n", len(lastFrame.Trace))
	fmt.Println("\nmetrics:")
	for name, val := range results {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tDT\tMASS\tSTIFF\tDAMP\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2fs\t%.4fs\t%.2f\t%.1f\t%.2f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Mass,
			run.Stiffness,
			run.Damping,
			run.Samples,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(trace))

	data := make([]float64, len(trace))
	for i, s := range trace {
		data[i] = s.Velocity
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("velocity vs time"),
	)
	fmt.Println(graph)

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)

	ps, interval := analysis.TraceSpectrum(trace)
	if len(ps) == 0 {
		return fmt.Errorf("trace too short for analysis")
	}

	plotData := ps[:len(ps)/4]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (velocity)"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(ps, interval)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	natural := oscillator.NaturalFrequency(oscillator.Params{
		Mass:      meta.Mass,
		Stiffness: meta.Stiffness,
		Damping:   meta.Damping,
		TimeScale: meta.TimeScale,
	})
	fmt.Printf("undamped natural frequency: %.3f hz\n", natural)

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, trace)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, trace)
}
