package storage

import (
	"encoding/json"
	"io"

	"github.com/tmolnar/chaoscope/internal/trajectory"
)

// ExportData is the JSON export shape for one run.
type ExportData struct {
	ID         string             `json:"id"`
	Attractor  string             `json:"attractor"`
	Integrator string             `json:"integrator"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	Params     map[string]float64 `json:"params"`
	DivergedAt int                `json:"diverged_at"`
	Times      []float64          `json:"times"`
	States     [][3]float64       `json:"states"`
}

// ExportJSON writes a run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, times []float64, traj trajectory.Trajectory) error {
	data := ExportData{
		ID:         meta.ID,
		Attractor:  meta.Attractor,
		Integrator: meta.Integrator,
		Dt:         meta.Dt,
		Steps:      len(traj),
		Params:     meta.Params,
		DivergedAt: meta.DivergedAt,
		Times:      times,
		States:     make([][3]float64, len(traj)),
	}
	for i, s := range traj {
		data.States[i] = s
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
