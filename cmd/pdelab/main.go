package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pdelab/internal/analysis"
	"github.com/san-kum/pdelab/internal/batch"
	"github.com/san-kum/pdelab/internal/bench"
	"github.com/san-kum/pdelab/internal/config"
	"github.com/san-kum/pdelab/internal/export"
	"github.com/san-kum/pdelab/internal/fdm"
	"github.com/san-kum/pdelab/internal/metrics"
	"github.com/san-kum/pdelab/internal/pde"
	"github.com/san-kum/pdelab/internal/store"
	"github.com/san-kum/pdelab/internal/tui"
	"github.com/san-kum/pdelab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir      string
	equationName string
	alpha        float64
	length       float64
	initialName  string
	boundaryName string
	leftValue    float64
	rightValue   float64
	nx           int
	nt           int
	horizon      float64
	terms        int
	// Config file and preset
	configFile string
	preset     string
	noCache    bool
	// Reference grid for compare
	nxRef int
	ntRef int
	// Refinement study resolutions
	sizes string
	// Parameter sweep
	sweepParam  string
	sweepMin    float64
	sweepMax    float64
	sweepPoints int
	// Live playback
	withRef bool
	// Export target
	outFile string
	svgRows int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pdelab",
		Short: "one-dimensional pde solver lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive mode when no command given
			return tui.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pdelab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [solver]",
		Short: "solve the configured equation and save the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	addEquationFlags(solveCmd)
	addGridFlags(solveCmd)
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	solveCmd.Flags().BoolVar(&noCache, "no-cache", false, "recompute even if an identical run exists")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run both solvers and reconcile their final profiles",
		RunE:  runCompare,
	}
	addEquationFlags(compareCmd)
	addGridFlags(compareCmd)
	compareCmd.Flags().IntVar(&nxRef, "nx-ref", config.DefaultNx, "reference grid points")
	compareCmd.Flags().IntVar(&ntRef, "nt-ref", config.DefaultNt, "reference time steps")

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "grid refinement study against the series reference",
		RunE:  runConverge,
	}
	addEquationFlags(convergeCmd)
	convergeCmd.Flags().Float64Var(&horizon, "time", config.DefaultHorizon, "solve horizon")
	convergeCmd.Flags().StringVar(&sizes, "sizes", "20,40,80,160", "comma-separated spatial resolutions")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one parameter and score each run",
		RunE:  runSweep,
	}
	addEquationFlags(sweepCmd)
	addGridFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "alpha", "parameter to sweep (alpha, length, horizon)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.005, "sweep lower bound")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0.05, "sweep upper bound")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 5, "number of sweep points")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot solution profiles",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "energy and variation diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live [solver]",
		Short: "solve and play back the field in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addEquationFlags(liveCmd)
	addGridFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().BoolVar(&withRef, "reference", false, "overlay the series solution")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "output path (default <run_id>.csv)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the time evolution as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVGRun,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output path (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgRows, "rows", 8, "number of profiles to draw")

	presetsCmd := &cobra.Command{
		Use:   "presets [equation]",
		Short: "list available presets for an equation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for equation: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range names {
				p := config.GetPreset(args[0], name)
				fmt.Printf("  %-14s %s/%s, nx=%d nt=%d time=%.2fs alpha=%g\n",
					name, p.Initial, p.Boundary, p.Nx, p.Nt, p.Horizon, p.Alpha)
			}
			return nil
		},
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [solver]",
		Short: "benchmark a solver across grid sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  benchSolver,
	}
	addEquationFlags(benchCmd)
	benchCmd.Flags().Float64Var(&horizon, "time", config.DefaultHorizon, "solve horizon")
	benchCmd.Flags().IntVar(&terms, "terms", config.DefaultTerms, "series terms (analytic)")

	rootCmd.AddCommand(solveCmd, compareCmd, convergeCmd, sweepCmd, listCmd, showCmd,
		plotCmd, analyzeCmd, liveCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd,
		presetsCmd, batchCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addEquationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&equationName, "equation", "heat", "equation kind (heat, burgers)")
	cmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "diffusion coefficient (viscosity for burgers)")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "domain length")
	cmd.Flags().StringVar(&initialName, "initial", "sinusoidal", "initial profile (sinusoidal, gaussian, step)")
	cmd.Flags().StringVar(&boundaryName, "boundary", "dirichlet", "boundary policy (dirichlet, neumann, mixed)")
	cmd.Flags().Float64Var(&leftValue, "left", 0, "left boundary value (dirichlet, mixed)")
	cmd.Flags().Float64Var(&rightValue, "right", 0, "right boundary value (dirichlet)")
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&nx, "nx", config.DefaultNx, "spatial grid points")
	cmd.Flags().IntVar(&nt, "nt", config.DefaultNt, "time steps")
	cmd.Flags().Float64Var(&horizon, "time", config.DefaultHorizon, "solve horizon")
	cmd.Flags().IntVar(&terms, "terms", config.DefaultTerms, "series terms (analytic)")
}

// resolveParams folds in the preset and config file. The preset applies
// wholesale; config file values fill in only flags the user left alone.
func resolveParams(cmd *cobra.Command) error {
	if preset != "" {
		p := config.GetPreset(equationName, preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(equationName))
		}
		equationName = p.Equation
		alpha = p.Alpha
		length = p.Length
		initialName = p.Initial
		boundaryName = p.Boundary
		leftValue = p.LeftValue
		rightValue = p.RightValue
		nx = p.Nx
		nt = p.Nt
		horizon = p.Horizon
		terms = p.Terms
	}

	if configFile == "" {
		return nil
	}
	fileCfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cmd.Flags().Changed("equation") {
		equationName = fileCfg.Equation
	}
	if !cmd.Flags().Changed("alpha") {
		alpha = fileCfg.Alpha
	}
	if !cmd.Flags().Changed("length") {
		length = fileCfg.Length
	}
	if !cmd.Flags().Changed("initial") {
		initialName = fileCfg.Initial
	}
	if !cmd.Flags().Changed("boundary") {
		boundaryName = fileCfg.Boundary
	}
	if !cmd.Flags().Changed("left") {
		leftValue = fileCfg.LeftValue
	}
	if !cmd.Flags().Changed("right") {
		rightValue = fileCfg.RightValue
	}
	if !cmd.Flags().Changed("nx") {
		nx = fileCfg.Nx
	}
	if !cmd.Flags().Changed("nt") {
		nt = fileCfg.Nt
	}
	if !cmd.Flags().Changed("time") {
		horizon = fileCfg.Horizon
	}
	if !cmd.Flags().Changed("terms") {
		terms = fileCfg.Terms
	}
	return nil
}

func buildEquation() (*pde.Equation, error) {
	cfg := config.Config{
		Equation:   equationName,
		Alpha:      alpha,
		Length:     length,
		Initial:    initialName,
		Boundary:   boundaryName,
		LeftValue:  leftValue,
		RightValue: rightValue,
		Nx:         nx,
		Nt:         nt,
		Horizon:    horizon,
		Terms:      terms,
	}
	return cfg.ToEquation()
}

func runSolve(cmd *cobra.Command, args []string) error {
	solverName := args[0]

	if err := resolveParams(cmd); err != nil {
		return err
	}
	eq, err := buildEquation()
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fp := store.Fingerprint(solverName, terms, eq, nx, nt, horizon)
	if !noCache {
		meta, ok, err := st.Find(fp)
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("cached run: %s\n", meta.ID)
			fmt.Printf("solved at: %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
			fmt.Printf("wall time: %.4fs\n", meta.WallTime)
			fmt.Println("use --no-cache to recompute")
			return nil
		}
	}

	registry := bench.NewRegistry()
	solver, err := registry.Get(solverName, terms)
	if err != nil {
		return err
	}

	fmt.Printf("running %s solver...\n", solverName)
	res, err := solver.Solve(eq, nx, nt, horizon)
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		fmt.Printf("warning: %v\n", w)
	}

	runID, err := st.Save(solverName, terms, res)
	if err != nil {
		return err
	}

	printSummary(runID, res)
	return nil
}

func printSummary(runID string, res *pde.SolveResult) {
	grid := res.Grid
	final := metrics.Summarize(res.Field.Final(), grid)
	r := res.Equation.Coefficient() * grid.Dt() / (grid.Dx() * grid.Dx())

	fmt.Printf("completed in %v\n", res.WallTime)
	if runID != "" {
		fmt.Printf("run id: %s\n", runID)
	}
	fmt.Printf("grid: %d x %d (dx=%.4g, dt=%.4g)\n", grid.Nx(), grid.Nt(), grid.Dx(), grid.Dt())
	fmt.Printf("diffusion number: %.4f\n", r)
	fmt.Println("\nfinal profile:")
	fmt.Printf("  max:    %.6f\n", final.Max)
	fmt.Printf("  min:    %.6f\n", final.Min)
	fmt.Printf("  mean:   %.6f\n", final.Mean)
	fmt.Printf("  l2:     %.6f\n", final.L2)
	fmt.Printf("  energy: %.6f\n", final.Energy)
}

func runCompare(cmd *cobra.Command, args []string) error {
	eq, err := buildEquation()
	if err != nil {
		return err
	}

	fmt.Printf("comparing analytic (%dx%d) vs fdm (%dx%d) at t=%.2fs\n\n", nxRef, ntRef, nx, nt, horizon)

	pair, err := bench.RunPair(context.Background(), bench.PairConfig{
		Equation: eq,
		NxRef:    nxRef,
		NtRef:    ntRef,
		NxNum:    nx,
		NtNum:    nt,
		Horizon:  horizon,
		Terms:    terms,
	})
	if err != nil {
		return err
	}

	for _, w := range pair.Numeric.Warnings {
		fmt.Printf("warning: %v\n", w)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SOLVER\tGRID\tFINAL_MAX\tTIME")
	refFinal := metrics.Summarize(pair.Reference.Field.Final(), pair.Reference.Grid)
	numFinal := metrics.Summarize(pair.Numeric.Field.Final(), pair.Numeric.Grid)
	fmt.Fprintf(w, "analytic\t%dx%d\t%.6f\t%v\n",
		pair.Reference.Grid.Nx(), pair.Reference.Grid.Nt(), refFinal.Max, pair.Reference.WallTime)
	fmt.Fprintf(w, "fdm\t%dx%d\t%.6f\t%v\n",
		pair.Numeric.Grid.Nx(), pair.Numeric.Grid.Nt(), numFinal.Max, pair.Numeric.WallTime)
	if err := w.Flush(); err != nil {
		return err
	}

	rep := pair.Report
	fmt.Println()
	if rep.GridsMatched {
		fmt.Println("grids matched exactly, no interpolation")
	} else {
		fmt.Printf("grids reconciled on %d common points\n", len(rep.CommonGrid))
	}
	fmt.Printf("max error:  %.6e\n", rep.MaxError)
	fmt.Printf("mean error: %.6e\n", rep.MeanError)
	fmt.Printf("rmse:       %.6e\n", rep.RMSE)

	overlay := asciigraph.PlotMany(
		[][]float64{pair.Reference.Field.Final(), pair.Numeric.Field.Final()},
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("final profiles: analytic and fdm"),
	)
	fmt.Println()
	fmt.Println(overlay)

	graph := asciigraph.Plot(rep.PointwiseError,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("pointwise |error| across the domain"),
	)
	fmt.Println()
	fmt.Println(graph)

	return nil
}

func runConverge(cmd *cobra.Command, args []string) error {
	eq, err := buildEquation()
	if err != nil {
		return err
	}

	parts := strings.Split(sizes, ",")
	resolutions := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("bad resolution %q: %w", part, err)
		}
		resolutions = append(resolutions, n)
	}

	fmt.Printf("refinement study at %d resolutions (dt paced to r=%.2f)\n\n",
		len(resolutions), analysis.TargetDiffusionNumber)

	report, err := analysis.Convergence(context.Background(), eq, resolutions, horizon)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NX\tNT\tDX\tMAX_ERROR\tRMSE")
	for _, p := range report.Points {
		fmt.Fprintf(w, "%d\t%d\t%.5f\t%.3e\t%.3e\n", p.Nx, p.Nt, p.Dx, p.MaxError, p.RMSE)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nobserved order: %.2f\n", report.ObservedOrder)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{
		Equation:   equationName,
		Alpha:      alpha,
		Length:     length,
		Initial:    initialName,
		Boundary:   boundaryName,
		LeftValue:  leftValue,
		RightValue: rightValue,
		Nx:         nx,
		Nt:         nt,
		Horizon:    horizon,
		Terms:      terms,
	}

	points, err := batch.RunSweep(context.Background(), &batch.Sweep{
		Param:  sweepParam,
		Min:    sweepMin,
		Max:    sweepMax,
		Points: sweepPoints,
		Config: cfg,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(sweepParam)+"\tMAX_ERROR\tFINAL_ENERGY\tSTABLE")
	for _, p := range points {
		errStr := "-"
		if !math.IsNaN(p.MaxError) {
			errStr = fmt.Sprintf("%.3e", p.MaxError)
		}
		fmt.Fprintf(w, "%.4f\t%s\t%.6f\t%t\n", p.Value, errStr, p.FinalEnergy, p.Stable)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOLVER\tEQUATION\tTIME\tGRID\tHORIZON\tR\tSTABLE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dx%d\t%.2fs\t%.3f\t%t\n",
			run.ID,
			run.Solver,
			run.Equation,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Nx,
			run.Nt,
			run.Horizon,
			run.Diffusion,
			run.Stable,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("solver: %s\n", meta.Solver)
	fmt.Printf("equation: %s (alpha=%g, length=%g)\n", meta.Equation, meta.Alpha, meta.Length)
	fmt.Printf("initial: %s\n", meta.Initial)
	fmt.Printf("boundary: %s\n", meta.Boundary)
	fmt.Printf("grid: %d x %d, horizon %.2fs\n", meta.Nx, meta.Nt, meta.Horizon)
	if meta.Terms > 0 {
		fmt.Printf("series terms: %d\n", meta.Terms)
	}
	fmt.Printf("diffusion number: %.4f (stable: %t)\n", meta.Diffusion, meta.Stable)
	fmt.Printf("wall time: %.4fs\n", meta.WallTime)
	fmt.Printf("solved at: %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("fingerprint: %s\n", meta.Fingerprint)

	fmt.Println("\nmetrics:")
	for name, val := range meta.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

// loadRun rebuilds a full result from a saved run directory.
func loadRun(st *store.Store, runID string) (*store.RunMetadata, *pde.SolveResult, error) {
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	field, _, err := st.LoadField(runID)
	if err != nil {
		return nil, nil, err
	}

	kind, err := pde.ParseKind(meta.Equation)
	if err != nil {
		return nil, nil, err
	}
	ic, err := pde.ParseInitialCondition(meta.Initial)
	if err != nil {
		return nil, nil, err
	}
	bc, err := pde.ParseBoundaryCondition(meta.Boundary)
	if err != nil {
		return nil, nil, err
	}
	eq, err := pde.New(kind, meta.Alpha, meta.Length, ic, bc,
		pde.WithBoundaryValues(meta.LeftValue, meta.RightValue))
	if err != nil {
		return nil, nil, err
	}
	grid, err := pde.NewUniformGrid(meta.Length, meta.Horizon, meta.Nx, meta.Nt)
	if err != nil {
		return nil, nil, err
	}

	res := &pde.SolveResult{
		Field:    field,
		Grid:     grid,
		Equation: eq,
		WallTime: time.Duration(meta.WallTime * float64(time.Second)),
	}
	if !meta.Stable {
		res.Warnings = append(res.Warnings, &pde.StabilityWarning{R: meta.Diffusion, Limit: fdm.StabilityLimit})
	}
	return meta, res, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, res, err := loadRun(st, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("plotting run: %s\n", meta.ID)
	fmt.Printf("%s, %s initial profile, %s boundaries\n\n", meta.Equation, meta.Initial, meta.Boundary)

	grid := res.Grid
	rows := []int{0, (grid.Nt() - 1) / 2, grid.Nt() - 1}
	for _, i := range rows {
		graph := asciigraph.Plot(res.Field[i],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("u(x, t=%.3f)", grid.T()[i])),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, res, err := loadRun(st, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("solver: %s, %s equation\n\n", meta.Solver, meta.Equation)

	energy := metrics.EnergyHistory(res.Field, res.Grid)
	graph := asciigraph.Plot(energy,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("field energy over time"),
	)
	fmt.Println(graph)
	fmt.Println()

	variation := analysis.VariationHistory(res.Field)
	graph = asciigraph.Plot(variation,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("total variation over time"),
	)
	fmt.Println(graph)
	fmt.Println()

	ratio := analysis.OscillationRatio(res.Field)
	fmt.Printf("oscillation ratio: %.3f\n", ratio)

	frac := analysis.HighModeFraction(res.Field.Final())
	fmt.Printf("gridscale energy share: %.1f%%\n", frac*100)

	if ratio > 1 || frac > 0.5 {
		fmt.Println("variation grew during the run; check the diffusion number")
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	solverName := args[0]

	if err := resolveParams(cmd); err != nil {
		return err
	}
	eq, err := buildEquation()
	if err != nil {
		return err
	}

	registry := bench.NewRegistry()
	solver, err := registry.Get(solverName, terms)
	if err != nil {
		return err
	}
	res, err := solver.Solve(eq, nx, nt, horizon)
	if err != nil {
		return err
	}

	var reference *pde.SolveResult
	if withRef && solverName != "analytic" {
		ref, err := registry.Get("analytic", terms)
		if err != nil {
			return err
		}
		rr, err := ref.Solve(eq, nx, nt, horizon)
		if err != nil {
			fmt.Printf("reference overlay unavailable: %v\n", err)
		} else {
			reference = rr
		}
	}

	m := viz.NewModel(res, reference)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, res, err := loadRun(st, args[0])
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = meta.ID + ".csv"
	}
	if err := store.ExportCSV(path, res); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, res, err := loadRun(st, args[0])
	if err != nil {
		return err
	}

	return store.ExportJSONStdout(meta.Solver, res)
}

func exportSVGRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, res, err := loadRun(st, args[0])
	if err != nil {
		return err
	}

	svg := export.FieldToSVG(res, 800, 400, svgRows)
	if svg == "" {
		return fmt.Errorf("nothing to render for run %s", meta.ID)
	}

	path := outFile
	if path == "" {
		path = meta.ID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := batch.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	if scenario.Name != "" {
		fmt.Printf("scenario: %s\n", scenario.Name)
	}
	if scenario.Description != "" {
		fmt.Println(scenario.Description)
	}
	fmt.Println()

	results, err := batch.RunScenario(context.Background(), scenario, st)
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tGRID\tFINAL_MAX\tMAX_ERROR\tRUN_ID")
	for _, sr := range results {
		grid := sr.Result.Grid
		final := metrics.Summarize(sr.Result.Field.Final(), grid)
		errStr := "-"
		if sr.Report != nil {
			errStr = fmt.Sprintf("%.3e", sr.Report.MaxError)
		}
		id := sr.RunID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%.6f\t%s\t%s\n", sr.Name, grid.Nx(), grid.Nt(), final.Max, errStr, id)
	}
	return w.Flush()
}

func benchSolver(cmd *cobra.Command, args []string) error {
	solverName := args[0]

	eq, err := buildEquation()
	if err != nil {
		return err
	}

	registry := bench.NewRegistry()
	solver, err := registry.Get(solverName, terms)
	if err != nil {
		return err
	}

	gridSizes := []int{50, 100, 200}
	stepCounts := []int{100, 500, 1000}

	fmt.Printf("benchmarking %s\n\n", solverName)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NX\tNT\tCELLS\tTIME\tCELLS/SEC")

	for _, gridSize := range gridSizes {
		for _, stepCount := range stepCounts {
			res, err := solver.Solve(eq, gridSize, stepCount, horizon)
			if err != nil {
				return err
			}

			cells := gridSize * stepCount
			perSec := float64(cells) / res.WallTime.Seconds()

			fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n",
				gridSize, stepCount, cells, res.WallTime, perSec)
		}
	}

	return w.Flush()
}
