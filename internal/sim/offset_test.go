package sim

import (
	"testing"

	"github.com/san-kum/diatomic/internal/dynamo"
)

func TestOffsetDistances(t *testing.T) {
	tests := []struct {
		name   string
		in     []float64
		offset float64
	}{
		{"empty", nil, 0},
		{"all positive", []float64{0.5, 1.0, 2.0}, 0},
		{"touching zero", []float64{0, 1.0}, 0},
		{"negative minimum", []float64{-2.0, 1.0, 0.5}, 2.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := append([]float64(nil), tt.in...)
			got := OffsetDistances(tt.in)
			if got != tt.offset {
				t.Errorf("offset = %v, want %v", got, tt.offset)
			}
			for i := range tt.in {
				if tt.in[i] != orig[i]+tt.offset {
					t.Errorf("d[%d] = %v, want %v", i, tt.in[i], orig[i]+tt.offset)
				}
			}
		})
	}
}

func TestOffsetLaw(t *testing.T) {
	// Ar starts compressed, so the raw displacement minimum is negative.
	result, err := Simulate(dynamo.NewParams(dynamo.ModelLennardJones, "Ar", 200000, 20, 100))
	if err != nil {
		t.Fatal(err)
	}

	m := result.Displacements[0]
	for _, d := range result.Displacements {
		if d < m {
			m = d
		}
	}
	if m >= 0 {
		t.Fatalf("expected a negative minimum displacement, got %v", m)
	}

	offset := DistanceMargin * -m
	for i, d := range result.Distances {
		if d < 0 {
			t.Fatalf("distance[%d] = %v is negative", i, d)
		}
		if d != result.Displacements[i]+offset {
			t.Fatalf("distance[%d] = %v, want %v", i, d, result.Displacements[i]+offset)
		}
	}
}
