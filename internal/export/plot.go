package export

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/Saramando/263F/internal/dynamics"
	"github.com/Saramando/263F/internal/force"
)

func limitedTicker(maxLabels int, labelFmt string) plot.Ticker {
	if maxLabels < 2 {
		maxLabels = 2
	}
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
			return nil
		}
		if min == max {
			return []plot.Tick{{Value: min, Label: fmt.Sprintf(labelFmt, min)}}
		}
		step := (max - min) / float64(maxLabels-1)
		ticks := make([]plot.Tick, 0, maxLabels)
		for i := 0; i < maxLabels; i++ {
			v := min + float64(i)*step
			ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf(labelFmt, v)})
		}
		return ticks
	})
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(18)
	p.Title.Padding = vg.Points(10)

	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Padding = vg.Points(8)
	p.Y.Label.Padding = vg.Points(8)

	p.X.Tick.Label.Font.Size = vg.Points(11)
	p.Y.Tick.Label.Font.Size = vg.Points(11)

	// %.3g keeps sub-micrometer displacements readable
	p.X.Tick.Marker = limitedTicker(8, "%.3g")
	p.Y.Tick.Marker = limitedTicker(8, "%.3g")
}

// SavePlotPNG renders the plot at 300 DPI to filename, creating parent
// directories as needed.
func SavePlotPNG(p *plot.Plot, widthIn, heightIn float64, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}
	w := vg.Length(widthIn) * vg.Inch
	h := vg.Length(heightIn) * vg.Inch

	c := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(300),
	)
	dc := draw.New(c)
	p.Draw(dc)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return nil
}

func linePlot(title, xlabel, ylabel string, xs, ys []float64) (*plot.Plot, error) {
	if len(xs) != len(ys) || len(xs) == 0 {
		return nil, fmt.Errorf("plot data invalid")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	stylePlot(p)

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2.0)
	p.Add(line)
	return p, nil
}

// DisplacementCurvePNG writes the tip displacement history in
// centimeters against time.
func DisplacementCurvePNG(filename string, tr *dynamics.Trajectory) error {
	p, err := linePlot("Rod Tip Displacement", "time (s)", "displacement (cm)", tr.Time, tr.DisplacementCm())
	if err != nil {
		return err
	}
	return SavePlotPNG(p, 8.0, 6.0, filename)
}

// ForceProfilePNG writes the applied force schedule against time.
func ForceProfilePNG(filename string, prof *force.Profile, dt float64) error {
	values := prof.Values()
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i) * dt
	}
	p, err := linePlot("Applied Force", "time (s)", "force (N)", xs, values)
	if err != nil {
		return err
	}
	return SavePlotPNG(p, 8.0, 6.0, filename)
}
