package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/Saramando/263F/internal/dynamics"
)

type trajectoryJSON struct {
	Time         []float64          `json:"time"`
	Displacement []float64          `json:"displacement"`
	Velocity     []float64          `json:"velocity"`
	Metrics      map[string]float64 `json:"metrics,omitempty"`
}

// WriteJSON streams the trajectory and metrics as indented JSON.
func WriteJSON(w io.Writer, result *dynamics.Result) error {
	out := trajectoryJSON{
		Time:         result.Trajectory.Time,
		Displacement: result.Trajectory.Displacement,
		Velocity:     result.Trajectory.Velocity,
		Metrics:      result.Metrics,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteCSV streams the trajectory as time,displacement,velocity rows
// at full float precision.
func WriteCSV(w io.Writer, tr *dynamics.Trajectory) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"time", "displacement", "velocity"}); err != nil {
		return err
	}
	for i := 0; i < tr.Len(); i++ {
		row := []string{
			strconv.FormatFloat(tr.Time[i], 'g', -1, 64),
			strconv.FormatFloat(tr.Displacement[i], 'g', -1, 64),
			strconv.FormatFloat(tr.Velocity[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
