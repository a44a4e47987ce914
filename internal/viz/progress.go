package viz

import (
	"fmt"
	"io"

	"github.com/san-kum/diatomic/internal/dynamo"
)

// Progress redraws a progress bar on w as samples are recorded. It
// implements dynamo.Observer and only redraws when the whole percentage
// changes.
type Progress struct {
	w     io.Writer
	total int
	seen  int
	shown int
}

// NewProgress reports on a run of samples recorded states.
func NewProgress(w io.Writer, samples int) *Progress {
	return &Progress{w: w, total: max(samples, 1), shown: -1}
}

func (p *Progress) OnStep(dynamo.State) {
	p.seen++
	pct := min(p.seen*100/p.total, 100)
	if pct == p.shown {
		return
	}
	p.shown = pct
	fmt.Fprintf(p.w, "\r%s %3d%%", ProgressBar(float64(pct)/100, 30), pct)
	if p.seen == p.total {
		fmt.Fprintln(p.w)
	}
}
