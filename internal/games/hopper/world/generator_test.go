package world

import (
	"math"
	"math/rand"
	"testing"
)

func TestGeneratedLanesAlwaysBlockBoundaries(t *testing.T) {
	cfg := testConfig()
	cfg.Lanes.MaxRoads = -1
	g := NewGenerator(cfg, rand.New(rand.NewSource(7)))

	for i := 0; i < 500; i++ {
		lane := g.Generate(i)
		if !lane.IsOccupied(cfg.Lanes.LeftBoundary) || !lane.IsOccupied(cfg.Lanes.RightBoundary) {
			t.Fatalf("lane %d (%s) missing boundary columns: %v", i, lane.Kind, lane.Occupied)
		}
	}
}

func TestRoadCapForcesGrass(t *testing.T) {
	cfg := testConfig()
	cfg.Lanes.MaxRoads = 1

	// Every draw says "road"; only the cap can stop it
	g := NewGenerator(cfg, &scriptedRand{floatFallback: 0})

	roads, grass := 0, 0
	for i := 0; i < 5; i++ {
		switch g.Generate(i).Kind {
		case KindRoad:
			roads++
		case KindGrass:
			grass++
		}
	}

	if roads != 1 || grass != 4 {
		t.Errorf("got %d roads and %d grass, expected 1 and 4", roads, grass)
	}
	if g.Roads() != 1 {
		t.Errorf("Roads() = %d, expected 1", g.Roads())
	}

	g.Reset()
	if g.Roads() != 0 {
		t.Errorf("Roads() after Reset = %d, expected 0", g.Roads())
	}
	if g.Generate(5).Kind != KindRoad {
		t.Error("Reset should lift the road cap")
	}
}

func TestRoadCapNeverExceeded(t *testing.T) {
	cfg := testConfig()
	g := NewGenerator(cfg, rand.New(rand.NewSource(99)))

	roads := 0
	for i := 0; i < 300; i++ {
		if g.Generate(i).Kind == KindRoad {
			roads++
		}
	}
	if roads > cfg.Lanes.MaxRoads {
		t.Errorf("generated %d roads, cap is %d", roads, cfg.Lanes.MaxRoads)
	}
}

func TestUncappedRoads(t *testing.T) {
	cfg := testConfig()
	cfg.Lanes.MaxRoads = -1
	g := NewGenerator(cfg, &scriptedRand{floatFallback: 0})

	for i := 0; i < 20; i++ {
		if g.Generate(i).Kind != KindRoad {
			t.Fatalf("lane %d should be a road when uncapped", i)
		}
	}
}

func TestRoadProbabilityRampsWithIndex(t *testing.T) {
	cfg := testConfig()
	cfg.Lanes.MaxRoads = -1

	tests := []struct {
		index    int
		draw     float64
		expected Kind
	}{
		{0, 0.49, KindRoad},
		{0, 0.6, KindGrass},
		{250, 0.6, KindRoad},
		{250, 0.95, KindGrass},
		{2000, 0.89, KindRoad},
	}

	for _, tc := range tests {
		g := NewGenerator(cfg, &scriptedRand{floats: []float64{tc.draw}, floatFallback: 0.5})
		if got := g.Generate(tc.index).Kind; got != tc.expected {
			t.Errorf("Generate(%d) with draw %.2f = %s, expected %s", tc.index, tc.draw, got, tc.expected)
		}
	}
}

func TestGrassTrees(t *testing.T) {
	cfg := testConfig()
	g := NewGenerator(cfg, rand.New(rand.NewSource(3)))
	g.roads = cfg.Lanes.MaxRoads // force grass

	for i := 0; i < 200; i++ {
		lane := g.Generate(i)
		if lane.Kind != KindGrass {
			t.Fatalf("lane %d should be grass at the cap", i)
		}
		if lane.Height != 0.2 {
			t.Errorf("grass height = %f, expected 0.2", lane.Height)
		}
		if len(lane.Trees) < 1 || len(lane.Trees) > 4 {
			t.Errorf("lane %d has %d trees, expected 1..4", i, len(lane.Trees))
		}
		for _, c := range lane.Trees {
			if c <= cfg.Lanes.LeftBoundary || c >= cfg.Lanes.RightBoundary {
				t.Errorf("tree at column %d outside playable range", c)
			}
			if !lane.IsOccupied(c) {
				t.Errorf("tree column %d not occupied", c)
			}
		}
		// Occupied = boundaries plus distinct tree columns
		distinct := map[int]bool{}
		for _, c := range lane.Trees {
			distinct[c] = true
		}
		if len(lane.Occupied) != len(distinct)+2 {
			t.Errorf("lane %d occupied %v, trees %v", i, lane.Occupied, lane.Trees)
		}
	}
}

func TestRoadConvoyLayout(t *testing.T) {
	cfg := testConfig()
	rng := &scriptedRand{
		floats: []float64{0.0, 0.5, 0.25}, // road, speed, gap
		ints:   []int{1, 2, 2},            // direction +1, bus, 3 vehicles
	}
	g := NewGenerator(cfg, rng)

	lane := g.Generate(0)
	if lane.Kind != KindRoad {
		t.Fatalf("expected road, got %s", lane.Kind)
	}
	if lane.Height != 0.1 {
		t.Errorf("road height = %f, expected 0.1", lane.Height)
	}
	if len(lane.Occupied) != 2 {
		t.Errorf("road occupied = %v, expected only boundaries", lane.Occupied)
	}

	c := lane.Convoy
	if c.Direction != 1 || c.Count != 3 || c.Archetype.Name != "bus" {
		t.Errorf("convoy = %+v, expected 3 buses heading +1", c)
	}
	if math.Abs(c.Speed-3) > 1e-12 {
		t.Errorf("speed = %f, expected 3 (midpoint of [1, 5])", c.Speed)
	}
	if math.Abs(c.Gap-3) > 1e-12 {
		t.Errorf("gap = %f, expected 3", c.Gap)
	}

	expected := []float64{0, -3, -6}
	for i, v := range lane.Vehicles {
		if math.Abs(v.X-expected[i]) > 1e-12 {
			t.Errorf("vehicle %d at X=%f, expected %f", i, v.X, expected[i])
		}
		if v.Direction != 1 || v.Speed != c.Speed {
			t.Errorf("vehicle %d = %+v, should share the convoy motion", i, v)
		}
	}
}

func TestRoadSpeedRangeGrowsWithIndex(t *testing.T) {
	cfg := testConfig()
	cfg.Lanes.MaxRoads = -1
	g := NewGenerator(cfg, rand.New(rand.NewSource(11)))

	for _, index := range []int{0, 250, 500, 1000} {
		lo := cfg.Traffic.MinSpeed.At(index)
		hi := cfg.Traffic.MaxSpeed.At(index)
		for n := 0; n < 50; n++ {
			lane := g.road(index)
			if s := lane.Convoy.Speed; s < lo || s > hi {
				t.Errorf("lane %d speed %f outside [%f, %f]", index, s, lo, hi)
			}
			if d := lane.Convoy.Direction; d != 1 && d != -1 {
				t.Errorf("direction = %d, expected +/-1", d)
			}
			if count := lane.Convoy.Count; count < 1 || count > 4 {
				t.Errorf("count = %d, expected 1..4", count)
			}
		}
	}

	if cfg.Traffic.MinSpeed.At(500) != 5 || cfg.Traffic.MaxSpeed.At(500) != 10 {
		t.Error("speed range at lane 500 should be [5, 10]")
	}
}
