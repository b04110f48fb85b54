package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/springlab/internal/oscillator"
)

type ExportData struct {
	ID        string             `json:"id"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Mass      float64            `json:"mass"`
	Stiffness float64            `json:"stiffness"`
	Damping   float64            `json:"damping"`
	TimeScale float64            `json:"timescale"`
	Times     []float64          `json:"times"`
	Velocity  []float64          `json:"velocity"`
	Metrics   map[string]float64 `json:"metrics"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, trace []oscillator.Sample) error {
	data := ExportData{
		ID:        meta.ID,
		Dt:        meta.Dt,
		Duration:  meta.Duration,
		Mass:      meta.Mass,
		Stiffness: meta.Stiffness,
		Damping:   meta.Damping,
		TimeScale: meta.TimeScale,
		Times:     make([]float64, len(trace)),
		Velocity:  make([]float64, len(trace)),
		Metrics:   meta.Metrics,
	}
	for i, s := range trace {
		data.Times[i] = s.Time
		data.Velocity[i] = s.Velocity
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportCSV(w io.Writer, trace []oscillator.Sample) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"time", "velocity"}); err != nil {
		return err
	}
	for _, s := range trace {
		row := []string{
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.Velocity, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
