package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Saramando/263F/internal/analysis"
	"github.com/Saramando/263F/internal/audio"
	"github.com/Saramando/263F/internal/config"
	"github.com/Saramando/263F/internal/dynamics"
	"github.com/Saramando/263F/internal/experiment"
	"github.com/Saramando/263F/internal/export"
	"github.com/Saramando/263F/internal/geometry"
	"github.com/Saramando/263F/internal/gui"
	"github.com/Saramando/263F/internal/optim"
	"github.com/Saramando/263F/internal/viz"
)

var (
	configFile string
	presetName string

	// physical parameters, overriding the config file when set
	initialForce float64
	simTime      float64
	timeStep     float64
	rodLength    float64
	rodArea      float64
	rodModulus   float64
	rodDamping   float64
	rodMass      float64
	numSides     int
	hubRadius    float64
	scaling      float64
	interval     float64
	integrator   string

	// render artifacts
	outDir string
	// sweep
	sweepParam  string
	sweepValues string
	// tune
	tuneParam  string
	tuneMin    float64
	tuneMax    float64
	tuneSteps  int
	tuneMetric string
	// listen
	listenSecs int
	// presets
	presetOut string
)

// main registers the rodsim commands. The bare command runs the full
// pipeline: integrate, report, then the three playback passes.
func main() {
	rootCmd := &cobra.Command{
		Use:   "rodsim",
		Short: "forced elastic rod simulation and playback",
		RunE:  runPipeline,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&presetName, "preset", "", "named preset configuration")
	pf.Float64Var(&initialForce, "force", config.DefaultInitialForce, "initial applied force (n)")
	pf.Float64Var(&simTime, "time", config.DefaultSimulationTime, "simulated window (s)")
	pf.Float64Var(&timeStep, "dt", config.DefaultDt, "timestep (s)")
	pf.Float64Var(&rodLength, "length", config.DefaultLength, "rod length (m)")
	pf.Float64Var(&rodArea, "area", config.DefaultArea, "cross-section area (m^2)")
	pf.Float64Var(&rodModulus, "modulus", config.DefaultElasticModulus, "elastic modulus (pa)")
	pf.Float64Var(&rodDamping, "damping", config.DefaultDamping, "damping coefficient (n*s/m)")
	pf.Float64Var(&rodMass, "mass", config.DefaultMass, "tip mass (kg)")
	pf.IntVar(&numSides, "sides", config.DefaultNumSides, "polygon side count")
	pf.Float64Var(&hubRadius, "radius", config.DefaultRadius, "assembly radius (m)")
	pf.Float64Var(&scaling, "scaling", config.DefaultScaling, "snapshot exaggeration factor")
	pf.Float64Var(&interval, "interval", config.DefaultSnapshotInterval, "snapshot interval (s)")
	pf.StringVar(&integrator, "integrator", config.DefaultIntegrator, "integration scheme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation and render the passes in the console",
		RunE:  runReport,
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "run and play the three passes in the terminal",
		RunE:  runView,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run and play the three passes in a window",
		RunE:  runGUI,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "run and write plot artifacts (png, svg, gif)",
		RunE:  renderArtifacts,
	}
	renderCmd.Flags().StringVar(&outDir, "out", "artifacts", "output directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of the ringdown",
		RunE:  analyzeRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase",
		Short: "displacement-velocity phase portrait",
		RunE:  phasePlot,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the same configuration",
		Args:  cobra.ArbitraryArgs,
		RunE:  compareIntegrators,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one parameter across a set of values",
		RunE:  sweepParameter,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "damping", "parameter to vary")
	sweepCmd.Flags().StringVar(&sweepValues, "values", "", "comma-separated values")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search a parameter minimizing a metric",
		RunE:  tuneParameter,
	}
	tuneCmd.Flags().StringVar(&tuneParam, "param", "damping", "parameter to search")
	tuneCmd.Flags().Float64Var(&tuneMin, "min", 0.1, "lower bound")
	tuneCmd.Flags().Float64Var(&tuneMax, "max", 10.0, "upper bound")
	tuneCmd.Flags().IntVar(&tuneSteps, "steps", 10, "grid points")
	tuneCmd.Flags().StringVar(&tuneMetric, "metric", "max_displacement", "metric to minimize")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the integrator across dt and duration",
		RunE:  benchIntegrator,
	}

	listenCmd := &cobra.Command{
		Use:   "listen",
		Short: "play the ringdown through the speakers",
		RunE:  listenRun,
	}
	listenCmd.Flags().IntVar(&listenSecs, "seconds", 5, "playback length")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "run and write the trajectory as json to stdout",
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "run and write the trajectory as csv to stdout",
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets or show one as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showPresets,
	}
	presetsCmd.Flags().StringVar(&presetOut, "out", "", "write the preset to a config file")

	rootCmd.AddCommand(runCmd, viewCmd, guiCmd, renderCmd, analyzeCmd, phaseCmd,
		compareCmd, sweepCmd, tuneCmd, benchCmd, listenCmd, exportCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig resolves the run configuration: defaults, then preset,
// then config file, then any explicitly set flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		cfg = config.GetPreset(presetName)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("force") {
		cfg.InitialForce = initialForce
	}
	if flags.Changed("time") {
		cfg.SimulationTime = simTime
	}
	if flags.Changed("dt") {
		cfg.Dt = timeStep
	}
	if flags.Changed("length") {
		cfg.Length = rodLength
	}
	if flags.Changed("area") {
		cfg.Area = rodArea
	}
	if flags.Changed("modulus") {
		cfg.ElasticModulus = rodModulus
	}
	if flags.Changed("damping") {
		cfg.Damping = rodDamping
	}
	if flags.Changed("mass") {
		cfg.Mass = rodMass
	}
	if flags.Changed("sides") {
		cfg.NumSides = numSides
	}
	if flags.Changed("radius") {
		cfg.Radius = hubRadius
	}
	if flags.Changed("scaling") {
		cfg.Scaling = scaling
	}
	if flags.Changed("interval") {
		cfg.SnapshotInterval = interval
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}

	return cfg, nil
}

// progressSteps is the run length past which runExperiment reports
// integration progress on stderr.
const progressSteps = 200000

func runExperiment(cmd *cobra.Command) (*experiment.Experiment, *dynamics.Result, time.Duration, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, 0, err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(); err != nil {
		return nil, nil, 0, err
	}

	if steps := cfg.TimeSteps(); steps >= progressSteps {
		exp.GetSimulator().AddObserver(viz.NewProgress(os.Stderr, steps))
	}

	start := time.Now()
	result, err := exp.Run(context.Background())
	if err != nil {
		return nil, nil, 0, err
	}
	return exp, result, time.Since(start), nil
}

func printReport(exp *experiment.Experiment, result *dynamics.Result, elapsed time.Duration) {
	r := exp.Rod()

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("natural frequency: %.1f hz\n", r.NaturalFrequency())
	fmt.Printf("damping ratio: %.2e\n", r.DampingRatio())
	fmt.Printf("max displacement: %.6e m\n", result.Metrics["max_displacement"])
	fmt.Printf("min displacement: %.6e m\n", result.Metrics["min_displacement"])

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6e\n", name, result.Metrics[name])
	}

	fmt.Println("\ntip displacement (cm):")
	fmt.Println(viz.SparklineChart(result.Trajectory.DisplacementCm(), 60))
}

func runPipeline(cmd *cobra.Command, args []string) error {
	fmt.Println("running simulation...")
	exp, result, elapsed, err := runExperiment(cmd)
	if err != nil {
		return err
	}

	printReport(exp, result, elapsed)

	cfg := exp.Config()
	asm := geometry.NewAssembly(cfg.NumSides, cfg.Radius)
	frames := exp.Frames(result.Trajectory)

	p := tea.NewProgram(viz.NewPlayer(asm, result.Trajectory, frames), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	fmt.Println("rendering complete.")
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	fmt.Println("running simulation...")
	exp, result, elapsed, err := runExperiment(cmd)
	if err != nil {
		return err
	}

	printReport(exp, result, elapsed)

	cfg := exp.Config()
	asm := geometry.NewAssembly(cfg.NumSides, cfg.Radius)
	camera := viz.NewCamera()
	canvas := viz.NewCanvas(80, 22)

	fmt.Println("\nstructure:")
	viz.Render3D(canvas, viz.StructureWireframe(asm), camera)
	fmt.Println(canvas.String())

	for _, f := range exp.Frames(result.Trajectory) {
		fmt.Printf("snapshot t=%.3fs:\n", f.Time)
		canvas.Clear()
		viz.Render3D(canvas, viz.FrameWireframe(asm, f), camera)
		fmt.Println(canvas.String())
	}

	graph := asciigraph.Plot(result.Trajectory.DisplacementCm(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("tip displacement (cm) vs time"),
	)
	fmt.Println(graph)

	fmt.Println("\nrendering complete.")
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	exp, result, _, err := runExperiment(cmd)
	if err != nil {
		return err
	}

	cfg := exp.Config()
	asm := geometry.NewAssembly(cfg.NumSides, cfg.Radius)
	frames := exp.Frames(result.Trajectory)

	p := tea.NewProgram(viz.NewPlayer(asm, result.Trajectory, frames), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	fmt.Println("rendering complete.")
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	exp, result, _, err := runExperiment(cmd)
	if err != nil {
		return err
	}

	cfg := exp.Config()
	asm := geometry.NewAssembly(cfg.NumSides, cfg.Radius)
	frames := exp.Frames(result.Trajectory)

	if err := gui.Run(asm, result.Trajectory, frames); err != nil {
		return err
	}
	fmt.Println("rendering complete.")
	return nil
}

func renderArtifacts(cmd *cobra.Command, args []string) error {
	fmt.Println("running simulation...")
	exp, result, _, err := runExperiment(cmd)
	if err != nil {
		return err
	}

	cfg := exp.Config()
	tr := result.Trajectory
	asm := geometry.NewAssembly(cfg.NumSides, cfg.Radius)
	frames := exp.Frames(tr)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	if err := export.DisplacementCurvePNG(filepath.Join(outDir, "displacement.png"), tr); err != nil {
		return err
	}
	if err := export.ForceProfilePNG(filepath.Join(outDir, "force.png"), exp.Forcing(), cfg.Dt); err != nil {
		return err
	}

	canvas := viz.NewCanvas(120, 40)
	camera := viz.NewCamera()
	viz.Render3D(canvas, viz.StructureWireframe(asm), camera)
	svg := export.CanvasToSVG(canvas, 4)
	if err := os.WriteFile(filepath.Join(outDir, "structure.svg"), []byte(svg), 0o644); err != nil {
		return err
	}

	curve := export.SeriesToSVG(tr.Time, tr.DisplacementCm(), 800, 400, "#00ff88")
	if err := os.WriteFile(filepath.Join(outDir, "displacement.svg"), []byte(curve), 0o644); err != nil {
		return err
	}

	if len(frames) > 0 {
		gifFrames := make([]*image.Paletted, 0, len(frames))
		for _, f := range frames {
			canvas.Clear()
			viz.Render3D(canvas, viz.FrameWireframe(asm, f), camera)
			gifFrames = append(gifFrames, export.CanvasToImage(canvas))
		}
		if err := export.SaveGIF(filepath.Join(outDir, "snapshots.gif"), gifFrames); err != nil {
			return err
		}
	}

	fmt.Printf("wrote artifacts to %s\n", outDir)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	exp, result, _, err := runExperiment(cmd)
	if err != nil {
		return err
	}
	cfg := exp.Config()

	spectrum := analysis.PowerSpectrum(result.Trajectory.Displacement, cfg.Dt)
	if len(spectrum.Power) < 4 {
		return fmt.Errorf("not enough samples for analysis")
	}

	fmt.Printf("frequency analysis (%d samples, dt=%.2e)\n\n", result.Trajectory.Len(), cfg.Dt)

	graph := asciigraph.Plot(spectrum.Power[:len(spectrum.Power)/4],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq, power := spectrum.Dominant()
	fmt.Printf("dominant frequency: %.1f hz (power %.3e)\n", freq, power)
	if freq > 0 {
		fmt.Printf("period: %.6f s\n", 1/freq)
	}
	fmt.Printf("natural frequency: %.1f hz\n", exp.Rod().NaturalFrequency())
	fmt.Printf("damping ratio: %.2e\n", exp.Rod().DampingRatio())

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	_, result, _, err := runExperiment(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("phase portrait (%d samples)\n", result.Trajectory.Len())
	fmt.Println("x: displacement (m), y: velocity (m/s)")
	fmt.Println()

	portrait := analysis.NewPhasePortrait(result.Trajectory)
	fmt.Println(portrait.ToASCII(70, 20))

	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = experiment.ListIntegrators()
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("comparing integrators (dt=%.2e, time=%.3fs)\n\n", cfg.Dt, cfg.SimulationTime)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tFINAL (M)\tMAX (M)\tPEAK ENERGY (J)\tFINAL ENERGY (J)\tTIME")

	for _, name := range names {
		runCfg := *cfg
		runCfg.Integrator = name

		exp := experiment.New(&runCfg)
		if err := exp.Setup(); err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		start := time.Now()
		result, err := exp.Run(context.Background())
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		final := result.Trajectory.Displacement[result.Trajectory.Len()-1]
		fmt.Fprintf(w, "%s\t%.6e\t%.6e\t%.6e\t%.6e\t%v\n",
			name, final, result.Metrics["max_displacement"], result.Metrics["peak_energy"],
			result.Metrics["final_energy"], elapsed)
	}

	return w.Flush()
}

func sweepParameter(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	values, err := parseValues(sweepValues)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no sweep values given (try --values \"0.05,0.1,0.2\")")
	}

	fmt.Printf("sweeping %s over %d values\n\n", sweepParam, len(values))

	points, err := experiment.Sweep(context.Background(), cfg, sweepParam, values)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tMAX (M)\tMIN (M)\tPEAK ENERGY (J)\tIMPULSE (N*S)")
	for _, p := range points {
		fmt.Fprintf(w, "%g\t%.6e\t%.6e\t%.6e\t%.6e\n",
			p.Value,
			p.Metrics["max_displacement"],
			p.Metrics["min_displacement"],
			p.Metrics["peak_energy"],
			p.Metrics["impulse"],
		)
	}
	return w.Flush()
}

func parseValues(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad sweep value %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func tuneParameter(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if tuneSteps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", tuneSteps)
	}

	axis := optim.Axis(tuneMin, tuneMax, tuneSteps)
	search := optim.NewGridSearch([]string{tuneParam}, [][]float64{axis})

	fmt.Printf("searching %s over [%g, %g] in %d steps, minimizing %s\n",
		tuneParam, tuneMin, tuneMax, tuneSteps, tuneMetric)

	start := time.Now()
	params, best, err := search.Search(context.Background(), cfg, tuneMetric)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))
	fmt.Printf("best %s: %g\n", tuneParam, params[tuneParam])
	fmt.Printf("%s: %.6e\n", tuneMetric, best)
	return nil
}

func benchIntegrator(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	durations := []float64{0.01, 0.05, 0.1}
	steps := []float64{0.000001, 0.00001, 0.0001}

	fmt.Printf("benchmarking %s integrator\n\n", cfg.Integrator)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME (S)\tDT\tSTEPS\tWALL\tSTEPS/SEC")

	for _, dur := range durations {
		for _, dt := range steps {
			runCfg := *cfg
			runCfg.SimulationTime = dur
			runCfg.Dt = dt

			exp := experiment.New(&runCfg)
			if err := exp.Setup(); err != nil {
				return err
			}

			start := time.Now()
			result, err := exp.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%.2f\t%.0e\t%d\t%v\t%.0f\n",
				dur, dt, result.StepsTaken, elapsed,
				float64(result.StepsTaken)/elapsed.Seconds())
		}
	}
	return w.Flush()
}

func listenRun(cmd *cobra.Command, args []string) error {
	fmt.Println("running simulation...")
	exp, result, _, err := runExperiment(cmd)
	if err != nil {
		return err
	}

	sonifier := audio.NewSonifier(result.Trajectory, exp.Config().Dt)
	if err := sonifier.Start(); err != nil {
		return err
	}
	defer sonifier.Stop()

	fmt.Printf("playing %.3fs of ringdown on loop (natural frequency %.1f hz)\n",
		sonifier.LoopSeconds(), exp.Rod().NaturalFrequency())
	fmt.Printf("listening for %ds...\n", listenSecs)
	time.Sleep(time.Duration(listenSecs) * time.Second)

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	_, result, _, err := runExperiment(cmd)
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, result)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, result, _, err := runExperiment(cmd)
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, result.Trajectory)
}

func showPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("available presets:")
		for _, name := range config.ListPresets() {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}

	cfg := config.GetPreset(args[0])
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}

	if presetOut != "" {
		if err := config.Save(presetOut, cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", presetOut)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
