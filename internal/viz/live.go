package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/diatomic/internal/dynamo"
)

const (
	canvasCols    = 60
	canvasRows    = 12
	atomRadius    = 5
	energyWindow  = 120
	maxSpeed      = 1024
	frameInterval = time.Second / 30
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Live replays a finished run as two atoms joined by a spring. The bond is
// drawn at the offset distance, scaled so the longest separation in the run
// spans most of the canvas.
type Live struct {
	result  *dynamo.Result
	title   string
	head    int
	speed   int
	running bool
	canvas  *Canvas
	maxDist float64
}

func NewLive(r *dynamo.Result, title string) *Live {
	l := &Live{
		result:  r,
		title:   title,
		speed:   1,
		running: true,
		canvas:  NewCanvas(canvasCols, canvasRows),
	}
	if r.Len() > 0 {
		l.maxDist = floats.Max(r.Distances)
	}
	// Aim for a few seconds per run at 30 frames per second.
	for l.speed < maxSpeed && r.Len()/l.speed > 300 {
		l.speed *= 2
	}
	return l
}

// RunLive blocks until the user quits.
func RunLive(r *dynamo.Result, title string) error {
	_, err := tea.NewProgram(NewLive(r, title), tea.WithAltScreen()).Run()
	return err
}

func (l *Live) Init() tea.Cmd { return tick() }

func (l *Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return l, tea.Quit
		case " ":
			l.running = !l.running
		case "r":
			l.head = 0
			l.running = true
		case "+", "=":
			l.speed = min(l.speed*2, maxSpeed)
		case "-", "_":
			l.speed = max(l.speed/2, 1)
		case "[":
			l.seek(-10 * l.speed)
		case "]":
			l.seek(10 * l.speed)
		case "t":
			NextTheme()
		}
	case TickMsg:
		if l.running {
			l.seek(l.speed)
			if l.head == l.result.Len()-1 {
				l.running = false
			}
		}
		return l, tick()
	}
	return l, nil
}

func (l *Live) seek(delta int) {
	l.head = min(max(l.head+delta, 0), max(l.result.Len()-1, 0))
}

// Head is the index of the sample on screen.
func (l *Live) Head() int { return l.head }

func (l *Live) draw() {
	l.canvas.Clear()
	if l.result.Len() == 0 {
		return
	}

	w, h := l.canvas.Dots()
	cy := h / 2
	minGap := 2*atomRadius + 8
	span := w - 2*(atomRadius+2) - minGap

	gap := minGap
	if l.maxDist > 0 {
		gap += int(l.result.Distances[l.head] / l.maxDist * float64(span))
	}
	left := (w - gap) / 2
	right := left + gap

	l.canvas.Disc(left, cy, atomRadius)
	l.canvas.Disc(right, cy, atomRadius)
	l.canvas.Coil(left+atomRadius+1, right-atomRadius-1, cy, 6, 3)
}

func (l *Live) View() string {
	l.draw()
	theme := CurrentTheme
	canvas := lipgloss.NewStyle().Foreground(theme.Atom).Padding(1, 2).Render(l.canvas.String())

	var s strings.Builder
	s.WriteString(titleStyle().Render(strings.ToUpper(l.title)) + "\n")
	if l.running {
		s.WriteString(StatusRunning.Render(fmt.Sprintf("PLAYING x%d", l.speed)))
	} else {
		s.WriteString(StatusPaused.Render("PAUSED"))
	}
	s.WriteString("\n\n")

	if l.result.Len() > 0 {
		i := l.head
		row := func(label, value string) {
			s.WriteString(labelStyle().Render(label) + valueStyle().Render(value) + "\n")
		}
		row("Time", fmt.Sprintf("%.2f au", l.result.Times[i]))
		row("Displacement", fmt.Sprintf("%+.5f a0", l.result.Displacements[i]))
		row("Distance", fmt.Sprintf("%.5f a0", l.result.Distances[i]))
		row("Potential", lipgloss.NewStyle().Foreground(theme.Potential).Render(fmt.Sprintf("%.6e Eh", l.result.Potential[i])))
		row("Kinetic", lipgloss.NewStyle().Foreground(theme.Kinetic).Render(fmt.Sprintf("%.6e Eh", l.result.Kinetic[i])))
		row("Total", lipgloss.NewStyle().Foreground(theme.Total).Render(fmt.Sprintf("%.6e Eh", l.result.Total[i])))

		lo := max(0, i-energyWindow)
		if i-lo > 1 {
			graph := asciigraph.PlotMany(
				[][]float64{l.result.Potential[lo : i+1], l.result.Kinetic[lo : i+1]},
				asciigraph.Height(5),
				asciigraph.Width(36),
				asciigraph.Precision(4),
				asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			)
			s.WriteString("\n" + graph + "\n")
		}
		spark := lipgloss.NewStyle().Foreground(theme.Potential).Render(Sparkline(l.result.Potential[lo:i+1], 36))
		s.WriteString("\n" + labelStyle().Render("Energy") + spark + "\n")

		s.WriteString("\n" + ProgressBar(float64(i)/float64(max(l.result.Len()-1, 1)), 30) + "\n")
	}

	s.WriteString(Subtle.Render("\nSPACE pause  R restart  +/- speed\n[ ] seek  T theme  Q quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, Panel.Render(s.String()))
}
