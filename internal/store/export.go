package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/pdelab/internal/metrics"
	"github.com/san-kum/pdelab/internal/pde"
)

type ExportData struct {
	Solver   string             `json:"solver"`
	Equation string             `json:"equation"`
	Alpha    float64            `json:"alpha"`
	Length   float64            `json:"length"`
	Initial  string             `json:"initial"`
	Boundary string             `json:"boundary"`
	Nx       int                `json:"nx"`
	Nt       int                `json:"nt"`
	Horizon  float64            `json:"horizon"`
	WallTime float64            `json:"wall_time_seconds"`
	Stable   bool               `json:"stable"`
	X        []float64          `json:"x"`
	Times    []float64          `json:"times"`
	Field    [][]float64        `json:"field"`
	Metrics  map[string]float64 `json:"metrics"`
}

func buildExport(solver string, res *pde.SolveResult) ExportData {
	eq, grid := res.Equation, res.Grid
	final := metrics.Summarize(res.Field.Final(), grid)

	return ExportData{
		Solver:   solver,
		Equation: eq.Kind().String(),
		Alpha:    eq.Coefficient(),
		Length:   eq.Length(),
		Initial:  eq.Initial().String(),
		Boundary: eq.Boundary().String(),
		Nx:       grid.Nx(),
		Nt:       grid.Nt(),
		Horizon:  grid.Horizon(),
		WallTime: res.WallTime.Seconds(),
		Stable:   res.Stability() == nil,
		X:        grid.X(),
		Times:    grid.T(),
		Field:    res.Field,
		Metrics: map[string]float64{
			"final_max":    final.Max,
			"final_min":    final.Min,
			"final_mean":   final.Mean,
			"final_l2":     final.L2,
			"final_energy": final.Energy,
		},
	}
}

func ExportJSON(path, solver string, res *pde.SolveResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, solver, res)
}

func ExportJSONStdout(solver string, res *pde.SolveResult) error {
	return writeJSON(os.Stdout, solver, res)
}

func writeJSON(w io.Writer, solver string, res *pde.SolveResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildExport(solver, res))
}

// ExportCSV writes the field in the same layout as a stored run, for
// spreadsheet use outside the store.
func ExportCSV(path string, res *pde.SolveResult) error {
	return writeFieldCSV(path, res)
}
