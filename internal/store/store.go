// Package store persists solve results as run directories under a base
// path: metadata.json for the parameters and summary metrics, field.csv
// for the space-time array. Runs are addressable by ID and by the
// fingerprint of their input parameters, which gives callers an
// explicit cache key for repeated solves.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/pdelab/internal/metrics"
	"github.com/san-kum/pdelab/internal/pde"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Solver      string             `json:"solver"`
	Equation    string             `json:"equation"`
	Alpha       float64            `json:"alpha"`
	Length      float64            `json:"length"`
	Initial     string             `json:"initial"`
	Boundary    string             `json:"boundary"`
	LeftValue   float64            `json:"left_value,omitempty"`
	RightValue  float64            `json:"right_value,omitempty"`
	Nx          int                `json:"nx"`
	Nt          int                `json:"nt"`
	Horizon     float64            `json:"horizon"`
	Terms       int                `json:"terms,omitempty"`
	Fingerprint string             `json:"fingerprint"`
	Timestamp   time.Time          `json:"timestamp"`
	WallTime    float64            `json:"wall_time_seconds"`
	Diffusion   float64            `json:"diffusion_number"`
	Stable      bool               `json:"stable"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes one run directory and returns its ID. terms records the
// series truncation for analytic runs; pass 0 for solvers without one.
func (s *Store) Save(solver string, terms int, res *pde.SolveResult) (string, error) {
	runID := fmt.Sprintf("%s_%d", solver, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	eq, grid := res.Equation, res.Grid
	r := eq.Coefficient() * grid.Dt() / (grid.Dx() * grid.Dx())
	final := metrics.Summarize(res.Field.Final(), grid)
	left, right := eq.BoundaryValues()

	meta := RunMetadata{
		ID:          runID,
		Solver:      solver,
		Equation:    eq.Kind().String(),
		Alpha:       eq.Coefficient(),
		Length:      eq.Length(),
		Initial:     eq.Initial().String(),
		Boundary:    eq.Boundary().String(),
		LeftValue:   left,
		RightValue:  right,
		Nx:          grid.Nx(),
		Nt:          grid.Nt(),
		Horizon:     grid.Horizon(),
		Terms:       terms,
		Fingerprint: Fingerprint(solver, terms, eq, grid.Nx(), grid.Nt(), grid.Horizon()),
		Timestamp:   time.Now(),
		WallTime:    res.WallTime.Seconds(),
		Diffusion:   r,
		Stable:      res.Stability() == nil,
		Metrics: map[string]float64{
			"final_max":    final.Max,
			"final_min":    final.Min,
			"final_mean":   final.Mean,
			"final_l2":     final.L2,
			"final_energy": final.Energy,
		},
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeFieldCSV(filepath.Join(runDir, "field.csv"), res); err != nil {
		return "", err
	}

	return runID, nil
}

func writeFieldCSV(path string, res *pde.SolveResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"t"}
	for j := 0; j < res.Grid.Nx(); j++ {
		header = append(header, "u"+strconv.Itoa(j))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	times := res.Grid.T()
	for i, row := range res.Field {
		record := make([]string, 0, len(row)+1)
		record = append(record, strconv.FormatFloat(times[i], 'g', -1, 64))
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadField reads a saved space-time array back, together with its time
// coordinates.
func (s *Store) LoadField(runID string) (pde.Field, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "field.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return pde.Field{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	field := make(pde.Field, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		row := make([]float64, 0, len(record)-1)
		for _, cell := range record[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			row = append(row, v)
		}
		times = append(times, t)
		field = append(field, row)
	}

	return field, times, nil
}

// Find returns the most recent run whose fingerprint matches, if any.
func (s *Store) Find(fingerprint string) (*RunMetadata, bool, error) {
	runs, err := s.List()
	if err != nil {
		return nil, false, err
	}

	var newest *RunMetadata
	for i := range runs {
		if runs[i].Fingerprint != fingerprint {
			continue
		}
		if newest == nil || runs[i].Timestamp.After(newest.Timestamp) {
			newest = &runs[i]
		}
	}
	if newest == nil {
		return nil, false, nil
	}
	return newest, true, nil
}
