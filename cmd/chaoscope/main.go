// Command chaoscope integrates and visualizes trajectories of classic
// chaotic attractors in the terminal.
package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/tmolnar/chaoscope/internal/analysis"
	"github.com/tmolnar/chaoscope/internal/config"
	"github.com/tmolnar/chaoscope/internal/dynamo"
	"github.com/tmolnar/chaoscope/internal/field"
	"github.com/tmolnar/chaoscope/internal/integrators"
	"github.com/tmolnar/chaoscope/internal/storage"
	"github.com/tmolnar/chaoscope/internal/trajectory"
	"github.com/tmolnar/chaoscope/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	dt         float64
	steps      int
	burnIn     int
	stride     int
	integType  string
	paramFlags []string
	initFlag   string

	themeName    string
	frameRate    int
	rotX         float64
	rotY         float64
	rotZ         float64
	zoom         float64
	perturbation float64
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "chaoscope",
		Short: "explore chaotic attractors in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live Lorenz view when no subcommand is given.
			return runLive(cmd, []string{"Lorenz"})
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chaoscope", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [attractor]",
		Short: "integrate a trajectory and save the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runIntegration,
	}
	addIntegrationFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list supported attractor systems",
		RunE:  listSystems,
	}

	describeCmd := &cobra.Command{
		Use:   "describe [attractor]",
		Short: "show equations, parameters, and tooltips",
		Args:  cobra.ExactArgs(1),
		RunE:  describeSystem,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [attractor]",
		Short: "list presets for an attractor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(strings.ToLower(args[0]))
			if len(names) == 0 {
				fmt.Printf("no presets for attractor: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot per-axis time series of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "render a static 3D phase portrait of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePortrait,
	}
	phaseCmd.Flags().IntVar(&burnIn, "burn", 0, "states to discard before rendering")
	phaseCmd.Flags().IntVar(&stride, "stride", 1, "render every nth state")
	phaseCmd.Flags().Float64Var(&rotX, "rot-x", -0.4, "camera rotation around x")
	phaseCmd.Flags().Float64Var(&rotY, "rot-y", 0.6, "camera rotation around y")
	phaseCmd.Flags().Float64Var(&rotZ, "rot-z", 0, "camera rotation around z")
	phaseCmd.Flags().Float64Var(&zoom, "zoom", 1.0, "camera zoom")

	liveCmd := &cobra.Command{
		Use:   "live [attractor]",
		Short: "animate an attractor interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addIntegrationFlags(liveCmd)
	liveCmd.Flags().StringVar(&themeName, "theme", "phosphor", "color theme")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run as CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [attractor]",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.ExactArgs(1),
		RunE:  estimateLyapunov,
	}
	addIntegrationFlags(lyapunovCmd)
	lyapunovCmd.Flags().Float64Var(&perturbation, "perturbation", 1e-8, "initial separation")

	compareCmd := &cobra.Command{
		Use:   "compare [attractor] [integrator...]",
		Short: "compare integrators on the same trajectory",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	addIntegrationFlags(compareCmd)

	rootCmd.AddCommand(runCmd, listCmd, systemsCmd, describeCmd, presetsCmd,
		plotCmd, phaseCmd, liveCmd, exportCSVCmd, exportJSONCmd, lyapunovCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addIntegrationFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of RK4 steps")
	cmd.Flags().StringVar(&integType, "integrator", "rk4", "integrator (rk4, euler)")
	cmd.Flags().StringArrayVar(&paramFlags, "param", nil, "coefficient override name=value (repeatable)")
	cmd.Flags().StringVar(&initFlag, "init", "", "initial state as x,y,z")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named preset configuration")
}

// resolveRun merges preset, config file, and flags (most specific wins)
// into the pieces one integration needs.
func resolveRun(cmd *cobra.Command, name string) (field.Definition, dynamo.Params, dynamo.State, dynamo.Stepper, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(strings.ToLower(name), preset)
		if p == nil {
			return field.Definition{}, nil, dynamo.State{}, nil,
				fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(strings.ToLower(name)))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return field.Definition{}, nil, dynamo.State{}, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if !cmd.Flags().Changed("dt") && cfg.Dt > 0 {
		dt = cfg.Dt
	}
	if !cmd.Flags().Changed("steps") && cfg.Steps > 0 {
		steps = cfg.Steps
	}
	if !cmd.Flags().Changed("integrator") && cfg.Integrator != "" {
		integType = cfg.Integrator
	}

	def, err := field.Lookup(name)
	if err != nil {
		return field.Definition{}, nil, dynamo.State{}, nil, err
	}

	params := def.MergeParams(cfg.Params)
	overrides, err := parseParamFlags(paramFlags)
	if err != nil {
		return field.Definition{}, nil, dynamo.State{}, nil, err
	}
	for k, v := range overrides {
		params[k] = v
	}
	if err := def.ValidateParams(params); err != nil {
		return field.Definition{}, nil, dynamo.State{}, nil, err
	}

	init := cfg.InitState(def)
	if initFlag != "" {
		init, err = parseInitFlag(initFlag)
		if err != nil {
			return field.Definition{}, nil, dynamo.State{}, nil, err
		}
	}

	stepper, err := integrators.New(integType)
	if err != nil {
		return field.Definition{}, nil, dynamo.State{}, nil, err
	}

	return def, params, init, stepper, nil
}

func parseParamFlags(flags []string) (dynamo.Params, error) {
	params := dynamo.Params{}
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --param %q, want name=value", f)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --param %q: %w", f, err)
		}
		params[strings.TrimSpace(name)] = v
	}
	return params, nil
}

func parseInitFlag(s string) (dynamo.State, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return dynamo.State{}, fmt.Errorf("invalid --init %q, want x,y,z", s)
	}
	var init dynamo.State
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return dynamo.State{}, fmt.Errorf("invalid --init %q: %w", s, err)
		}
		init[i] = v
	}
	return init, nil
}

func runIntegration(cmd *cobra.Command, args []string) error {
	def, params, init, stepper, err := resolveRun(cmd, args[0])
	if err != nil {
		return err
	}

	store, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	slog.Info("integrating", "attractor", def.Name, "integrator", integType, "dt", dt, "steps", steps)
	start := time.Now()
	traj := integrators.Integrate(stepper, def.Field, params, init, dt, steps)
	elapsed := time.Since(start)

	meta := storage.RunMetadata{
		Attractor:  def.Name,
		Integrator: integType,
		Dt:         dt,
		Init:       init,
		Params:     params,
	}
	runID, err := store.Save(meta, traj)
	if err != nil {
		return err
	}

	if i := trajectory.Trajectory(traj).FirstNonFinite(); i >= 0 {
		slog.Warn("trajectory diverged to non-finite values",
			"step", i, "t", float64(i+1)*dt)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(traj))
	if len(traj) > 0 {
		last := traj[len(traj)-1]
		fmt.Printf("final state: (%.6f, %.6f, %.6f)\n", last[0], last[1], last[2])
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tATTRACTOR\tCREATED\tDT\tSTEPS\tINTEG\tFINITE")
	for _, run := range runs {
		finite := "yes"
		if run.DivergedAt >= 0 {
			finite = fmt.Sprintf("diverged@%d", run.DivergedAt)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%d\t%s\t%s\n",
			run.ID,
			run.Attractor,
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			run.Dt,
			run.Steps,
			run.Integrator,
			finite,
		)
	}
	return w.Flush()
}

func listSystems(cmd *cobra.Command, args []string) error {
	for _, def := range field.All() {
		fmt.Println(def.Name)
		for _, eq := range def.Equations {
			fmt.Printf("  %s\n", eq)
		}
		fmt.Println()
	}
	return nil
}

func describeSystem(cmd *cobra.Command, args []string) error {
	def, err := field.Lookup(args[0])
	if err != nil {
		return err
	}

	fmt.Println(def.Name)
	fmt.Println()
	fmt.Println(def.Description)
	fmt.Println()
	for _, eq := range def.Equations {
		fmt.Printf("  %s\n", eq)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAM\tDEFAULT\tMEANING")
	for _, name := range def.Coefficients() {
		fmt.Fprintf(w, "%s\t%g\t%s\n", name, def.Params[name], def.Tooltips[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ndefault initial state: (%g, %g, %g)\n", def.Init[0], def.Init[1], def.Init[2])
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	traj, _, err := store.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(traj) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("attractor: %s\n", meta.Attractor)
	fmt.Printf("samples: %d\n\n", len(traj))

	for axis, name := range []string{"x", "y", "z"} {
		graph := asciigraph.Plot(traj.Component(axis),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s vs time", name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func phasePortrait(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	traj, _, err := store.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	traj = traj.BurnIn(burnIn).Stride(stride)
	if len(traj) == 0 {
		return fmt.Errorf("no data to render after burn-in")
	}
	if i := traj.FirstNonFinite(); i >= 0 {
		slog.Warn("run contains non-finite states; rendering the finite prefix", "from_step", i)
		traj = traj[:i]
	}

	cam := viz.NewCamera()
	cam.RotX, cam.RotY, cam.RotZ, cam.Zoom = rotX, rotY, rotZ, zoom

	canvas := viz.NewCanvas(100, 40)
	viz.RenderTrajectory(canvas, viz.Normalize(traj), cam)

	fmt.Printf("%s (%s, %d points)\n", meta.Attractor, meta.ID, len(traj))
	fmt.Print(canvas.String())
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	def, params, init, stepper, err := resolveRun(cmd, args[0])
	if err != nil {
		return err
	}

	m := viz.NewModel(def, stepper, params, init, dt, viz.GetTheme(themeName), frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	traj, times, err := store.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(traj) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "z"}); err != nil {
		return err
	}
	for i, s := range traj {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(s[0], 'f', 6, 64),
			strconv.FormatFloat(s[1], 'f', 6, 64),
			strconv.FormatFloat(s[2], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	traj, times, err := store.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, times, traj)
}

func estimateLyapunov(cmd *cobra.Command, args []string) error {
	def, params, init, stepper, err := resolveRun(cmd, args[0])
	if err != nil {
		return err
	}

	slog.Info("estimating largest Lyapunov exponent",
		"attractor", def.Name, "dt", dt, "steps", steps, "perturbation", perturbation)
	lambda := analysis.LargestLyapunov(def.Field, stepper, params, init, dt, steps, perturbation)

	fmt.Printf("largest Lyapunov exponent: %.6f\n", lambda)
	switch {
	case lambda > 0.01:
		fmt.Println("verdict: chaotic (exponential divergence of nearby trajectories)")
	case lambda < -0.01:
		fmt.Println("verdict: contracting (trajectories converge)")
	default:
		fmt.Println("verdict: near-neutral")
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	def, params, init, _, err := resolveRun(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("comparing integrators for %s (dt=%.4f, steps=%d)\n\n", def.Name, dt, steps)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tFINAL STATE\tFINITE\tTIME")

	for _, name := range args[1:] {
		stepper, err := integrators.New(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
			continue
		}

		start := time.Now()
		traj := integrators.Integrate(stepper, def.Field, params, init, dt, steps)
		elapsed := time.Since(start)

		finite := "yes"
		if i := trajectory.Trajectory(traj).FirstNonFinite(); i >= 0 {
			finite = fmt.Sprintf("diverged@%d", i)
		}
		final := "(empty)"
		if len(traj) > 0 {
			last := traj[len(traj)-1]
			final = fmt.Sprintf("(%.6f, %.6f, %.6f)", last[0], last[1], last[2])
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", name, final, finite, elapsed)
	}
	return w.Flush()
}
