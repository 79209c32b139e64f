package viz

import (
	"fmt"
	"io"

	"github.com/Saramando/263F/internal/dynamics"
)

// Progress prints a one-line bar to w as a long run advances. It
// repaints at most once per percent so observing stays cheap next to
// the integration itself.
type Progress struct {
	w     io.Writer
	total int
	seen  int
	shown int
}

// NewProgress reports against total expected samples. A total below
// one is treated as one so the bar completes immediately.
func NewProgress(w io.Writer, total int) *Progress {
	if total < 1 {
		total = 1
	}
	return &Progress{w: w, total: total, shown: -1}
}

func (p *Progress) OnStep(x dynamics.State, u dynamics.Control, t float64) {
	p.seen++
	pct := p.seen * 100 / p.total
	if pct > 100 {
		pct = 100
	}
	if pct == p.shown {
		return
	}
	p.shown = pct

	fmt.Fprintf(p.w, "\r%s %3d%%", ProgressBar(float64(pct)/100, 28), pct)
	if pct == 100 {
		fmt.Fprintln(p.w)
	}
}
