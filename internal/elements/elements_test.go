package elements

import (
	"errors"
	"testing"

	"github.com/san-kum/diatomic/internal/dynamo"
)

func TestLookup(t *testing.T) {
	for _, sym := range []string{"H", "Hg", "Ar"} {
		p, ok := Lookup(sym)
		if !ok {
			t.Fatalf("expected %s in table", sym)
		}
		if p.MassAU <= 0 {
			t.Errorf("%s: mass should be positive, got %v", sym, p.MassAU)
		}
		if p.SpringConstantAU <= 0 || p.SpringConstantSI <= 0 {
			t.Errorf("%s: spring constants should be positive", sym)
		}
	}
}

func TestLookup_ValueStable(t *testing.T) {
	a, _ := Lookup("Ar")
	b, _ := Lookup("Ar")
	if a != b {
		t.Errorf("lookup not stable: %+v vs %+v", a, b)
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("Xe"); ok {
		t.Error("expected Xe to be absent")
	}
	if _, ok := Lookup("h"); ok {
		t.Error("lookup should be case sensitive")
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("Xe")
	if !errors.Is(err, dynamo.ErrUnknownElement) {
		t.Fatalf("expected ErrUnknownElement, got %v", err)
	}
}

func TestSymbols(t *testing.T) {
	got := Symbols()
	expected := []string{"Ar", "H", "Hg"}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Symbols()[%d] = %s, want %s", i, got[i], expected[i])
		}
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		symbol string
		model  string
		want   bool
	}{
		{"H", dynamo.ModelHarmonic, true},
		{"H", dynamo.ModelMorse, true},
		{"H", dynamo.ModelLennardJones, false},
		{"Hg", dynamo.ModelHarmonic, true},
		{"Hg", dynamo.ModelMorse, false},
		{"Hg", dynamo.ModelLennardJones, true},
		{"Ar", dynamo.ModelHarmonic, true},
		{"Ar", dynamo.ModelMorse, false},
		{"Ar", dynamo.ModelLennardJones, true},
		{"Ar", "xyz", false},
	}

	for _, tt := range tests {
		p, _ := Lookup(tt.symbol)
		if got := p.Supports(tt.model); got != tt.want {
			t.Errorf("%s.Supports(%s) = %v, want %v", tt.symbol, tt.model, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	if got := Name("Ar"); got != "argon" {
		t.Errorf("Name(Ar) = %s", got)
	}
	if got := Name("Xe"); got != "Xe" {
		t.Errorf("unknown symbols should echo back, got %s", got)
	}
}
