package world

import (
	"math"
	"testing"
)

func TestTrafficStep(t *testing.T) {
	cfg := testConfig()
	cfg.Lanes.MaxRoads = -1
	gen := NewGenerator(cfg, &scriptedRand{floats: []float64{0, 0.5}, ints: []int{1, 0, 0}, floatFallback: 0.9})
	w := NewWindow(gen, nil)
	w.EnsureGenerated(1) // lane 0 road heading +1; lane 1 grass (draw 0.9)

	tr := NewTraffic(12)
	for i := 0; i < 10; i++ {
		tr.Step(w, 0.02)
	}

	road, _ := w.Lane(0)
	if road.Kind != KindRoad {
		t.Fatalf("lane 0 = %s, expected road", road.Kind)
	}
	// speed 3 for 0.2s
	if x := road.Vehicles[0].X; math.Abs(x-0.6) > 1e-9 {
		t.Errorf("vehicle X = %f, expected 0.6", x)
	}

	grass, _ := w.Lane(1)
	if grass.Kind != KindGrass || len(grass.Vehicles) != 0 {
		t.Errorf("lane 1 = %+v, expected empty grass", grass)
	}
}

func TestTrafficWraps(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		x         float64
		expected  float64
	}{
		{"rightbound leaves right edge", 1, 11.9, -12},
		{"leftbound leaves left edge", -1, -11.9, 12},
		{"rightbound inside bounds", 1, 5, 5.2},
		{"leftbound inside bounds", -1, -5, -5.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWindow(NewGenerator(testConfig(), &scriptedRand{}), nil)
			w.lanes[0] = &Lane{
				Index: 0,
				Kind:  KindRoad,
				Vehicles: []Vehicle{
					{X: tc.x, Direction: tc.direction, Speed: 2},
				},
			}
			w.next = 1

			NewTraffic(12).Step(w, 0.1)

			if got := w.lanes[0].Vehicles[0].X; math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("X = %f, expected %f", got, tc.expected)
			}
		})
	}
}
