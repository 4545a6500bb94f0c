// Package storage persists integration runs: per-run metadata and
// trajectory files on disk, indexed by a SQLite catalog.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tmolnar/chaoscope/internal/dynamo"
	"github.com/tmolnar/chaoscope/internal/trajectory"
)

type Store struct {
	baseDir string
	catalog *Catalog
}

// Open prepares the data directory and its run catalog.
func Open(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	catalog, err := OpenCatalog(filepath.Join(baseDir, "catalog.db"))
	if err != nil {
		return nil, err
	}
	return &Store{baseDir: baseDir, catalog: catalog}, nil
}

func (s *Store) Close() error {
	return s.catalog.Close()
}

// Catalog exposes the underlying run index.
func (s *Store) Catalog() *Catalog {
	return s.catalog
}

// RunMetadata describes one saved integration run.
type RunMetadata struct {
	ID         string        `json:"id"`
	Attractor  string        `json:"attractor"`
	Integrator string        `json:"integrator"`
	Timestamp  time.Time     `json:"timestamp"`
	Dt         float64       `json:"dt"`
	Steps      int           `json:"steps"`
	Init       dynamo.State  `json:"init"`
	Params     dynamo.Params `json:"params"`
	DivergedAt int           `json:"diverged_at"`
}

// Save writes metadata.json and trajectory.csv under a fresh run directory
// and indexes the run in the catalog. It returns the generated run ID.
func (s *Store) Save(meta RunMetadata, traj trajectory.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s-%s", strings.ToLower(meta.Attractor), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now().UTC()
	meta.Steps = len(traj)
	meta.DivergedAt = traj.FirstNonFinite()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeTrajectory(runDir, meta.Dt, traj); err != nil {
		return "", err
	}

	row := RunRow{
		ID:         runID,
		Attractor:  meta.Attractor,
		Integrator: meta.Integrator,
		Dt:         meta.Dt,
		Steps:      meta.Steps,
		DivergedAt: meta.DivergedAt,
		CreatedAt:  meta.Timestamp,
	}
	if err := s.catalog.Insert(row); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeTrajectory(runDir string, dt float64, traj trajectory.Trajectory) error {
	file, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "z"}); err != nil {
		return err
	}

	// Element i is the state after i+1 steps, so time starts at dt.
	for i, st := range traj {
		row := []string{
			strconv.FormatFloat(float64(i+1)*dt, 'f', 6, 64),
			strconv.FormatFloat(st[0], 'g', 17, 64),
			strconv.FormatFloat(st[1], 'g', 17, 64),
			strconv.FormatFloat(st[2], 'g', 17, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// List returns all saved runs, newest first.
func (s *Store) List() ([]RunRow, error) {
	return s.catalog.List()
}

// Load reads the metadata for one run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads a saved trajectory and its time column.
func (s *Store) LoadTrajectory(runID string) (trajectory.Trajectory, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return trajectory.Trajectory{}, []float64{}, nil
	}

	traj := make(trajectory.Trajectory, 0, len(records)-1)
	times := make([]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) != 4 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		var st dynamo.State
		ok := true
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				ok = false
				break
			}
			st[i] = v
		}
		if !ok {
			continue
		}
		times = append(times, t)
		traj = append(traj, st)
	}

	return traj, times, nil
}
