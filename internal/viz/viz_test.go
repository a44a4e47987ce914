package viz

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/diatomic/internal/dynamo"
	"github.com/san-kum/diatomic/internal/sim"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	got := []rune(strings.TrimSuffix(c.String(), "\n"))
	if got[0] != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", got[0])
	}
	if got[1] != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", got[1])
	}

	c.Clear()
	if strings.TrimSuffix(c.String(), "\n") != "\u2800\u2800" {
		t.Error("Clear should blank every cell")
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Line(0, 0, 7, 0)

	for i, r := range []rune(strings.TrimSuffix(c.String(), "\n")) {
		if r != 0x2809 {
			t.Errorf("cell %d = %U, want top row set", i, r)
		}
	}
}

func TestCanvasDisc(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Disc(10, 10, 3)
	if !strings.ContainsRune(c.String(), 0x28ff) {
		t.Error("a filled disc should cover at least one whole cell")
	}
}

func TestDownsample(t *testing.T) {
	in := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got := Downsample(in, 3)
	if len(got) != 3 || got[0] != 0 || got[1] != 5 || got[2] != 10 {
		t.Errorf("Downsample(11, 3) = %v", got)
	}
	if got := Downsample(in, 20); len(got) != len(in) {
		t.Error("short series should pass through")
	}
	if got := Downsample(in, 1); len(got) != 1 || got[0] != 10 {
		t.Errorf("Downsample(11, 1) = %v", got)
	}
}

func TestSparkline(t *testing.T) {
	got := Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8)
	if got != "▁▂▃▄▅▆▇█" {
		t.Errorf("Sparkline = %q", got)
	}
	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("empty sparkline = %q", got)
	}
}

func TestTable(t *testing.T) {
	out := Table([]string{"symbol", "mass"}, [][]string{{"H", "911.44"}, {"Ar", "36410.8"}})
	for _, want := range []string{"symbol", "mass", "H", "36410.8"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestThemes(t *testing.T) {
	defer SetTheme(ThemeClassic.Name)

	if SetTheme("nonexistent") {
		t.Error("unknown theme should be rejected")
	}
	if !SetTheme("retro") || CurrentTheme.Name != "retro" {
		t.Error("SetTheme(retro) failed")
	}
	NextTheme()
	if CurrentTheme.Name != "mono" {
		t.Errorf("expected mono after retro, got %s", CurrentTheme.Name)
	}
	NextTheme()
	if CurrentTheme.Name != "classic" {
		t.Errorf("expected wrap to classic, got %s", CurrentTheme.Name)
	}
}

func TestPlotEnergies(t *testing.T) {
	r, err := sim.Simulate(dynamo.NewParams(dynamo.ModelHarmonic, "H", 500, 1, 300))
	if err != nil {
		t.Fatal(err)
	}
	out := PlotEnergies(r, 60, 8)
	if !strings.Contains(out, "energy (Eh)") || !strings.Contains(out, "kinetic") {
		t.Errorf("unexpected plot:\n%s", out)
	}
	if PlotSeries(nil, "x", 10, 5) != "" {
		t.Error("empty series should not plot")
	}
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLive(t *testing.T) {
	r, err := sim.Simulate(dynamo.NewParams(dynamo.ModelMorse, "H", 100, 1, 300))
	if err != nil {
		t.Fatal(err)
	}
	l := NewLive(r, "morse H")

	if l.Init() == nil {
		t.Error("Init should schedule a tick")
	}

	_, cmd := l.Update(TickMsg{})
	if cmd == nil {
		t.Error("ticks should keep ticking")
	}
	if l.Head() != 1 {
		t.Errorf("expected head 1 after a tick, got %d", l.Head())
	}

	l.Update(key(" "))
	l.Update(TickMsg{})
	if l.Head() != 1 {
		t.Error("paused playback should not advance")
	}
	if !strings.Contains(l.View(), "PAUSED") {
		t.Error("view should show paused state")
	}

	l.Update(key("]"))
	if l.Head() != 11 {
		t.Errorf("seek forward: head %d", l.Head())
	}
	l.Update(key("["))
	l.Update(key("["))
	if l.Head() != 0 {
		t.Errorf("seek should clamp at 0, got %d", l.Head())
	}

	l.Update(key("+"))
	l.Update(key(" "))
	l.Update(TickMsg{})
	if l.Head() != 2 {
		t.Errorf("double speed: head %d", l.Head())
	}

	for i := 0; i < 100; i++ {
		l.Update(TickMsg{})
	}
	if l.Head() != r.Len()-1 {
		t.Errorf("playback should stop at the last sample, head %d", l.Head())
	}

	view := l.View()
	for _, want := range []string{"MORSE H", "Displacement", "Total", "Energy"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	_, cmd = l.Update(key("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 200)

	for i := 0; i < 200; i++ {
		p.OnStep(dynamo.State{})
	}

	out := buf.String()
	if n := strings.Count(out, "\r"); n != 101 {
		t.Errorf("expected one redraw per percent from 0 to 100, got %d", n)
	}
	if !strings.HasSuffix(out, "100%\n") {
		t.Errorf("progress should end at 100%% on its own line: %q", out[max(len(out)-20, 0):])
	}
}
