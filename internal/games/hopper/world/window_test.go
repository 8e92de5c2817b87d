package world

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestWindow(seed int64) (*Window, *recordingSpawner) {
	sp := newRecordingSpawner()
	gen := NewGenerator(testConfig(), rand.New(rand.NewSource(seed)))
	return NewWindow(gen, sp), sp
}

func TestEnsureGenerated(t *testing.T) {
	w, sp := newTestWindow(1)

	if n := w.EnsureGenerated(19); n != 20 {
		t.Errorf("EnsureGenerated(19) = %d, expected 20", n)
	}
	if n := w.EnsureGenerated(10); n != 0 {
		t.Errorf("EnsureGenerated below next = %d, expected 0", n)
	}
	if lo, hi := w.Bounds(); lo != 0 || hi != 20 {
		t.Errorf("Bounds() = [%d, %d), expected [0, 20)", lo, hi)
	}
	if len(sp.alive) != 20 {
		t.Errorf("spawned %d presentation objects, expected 20", len(sp.alive))
	}
	if err := w.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestWindowStaysContiguous(t *testing.T) {
	w, sp := newTestWindow(5)
	ops := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		_, hi := w.Bounds()
		if ops.Intn(2) == 0 {
			w.EnsureGenerated(hi + ops.Intn(5))
		} else {
			w.EvictBefore(hi - ops.Intn(25))
		}

		if err := w.Validate(); err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
		lo, hi := w.Bounds()
		if w.Len() != hi-lo {
			t.Fatalf("op %d: Len() = %d for [%d, %d)", i, w.Len(), lo, hi)
		}
		if len(sp.alive) != w.Len() {
			t.Fatalf("op %d: %d presentation objects alive for %d lanes", i, len(sp.alive), w.Len())
		}
	}
}

func TestEvictBefore(t *testing.T) {
	w, sp := newTestWindow(2)
	w.EnsureGenerated(19)

	if n := w.EvictBefore(5); n != 5 {
		t.Errorf("EvictBefore(5) = %d, expected 5", n)
	}
	if n := w.EvictBefore(5); n != 0 {
		t.Errorf("repeated EvictBefore(5) = %d, expected 0", n)
	}
	if n := w.EvictBefore(3); n != 0 {
		t.Errorf("EvictBefore below lo = %d, expected 0", n)
	}

	expected := []int{0, 1, 2, 3, 4}
	if len(sp.destroyed) != len(expected) {
		t.Fatalf("destroyed lanes %v, expected %v", sp.destroyed, expected)
	}
	for i, idx := range expected {
		if sp.destroyed[i] != idx {
			t.Errorf("destroyed[%d] = %d, expected %d", i, sp.destroyed[i], idx)
		}
	}

	// Evicting past next stops at next
	if n := w.EvictBefore(100); n != 15 {
		t.Errorf("EvictBefore(100) = %d, expected 15", n)
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", w.Len())
	}
	w.EnsureGenerated(21)
	if lo, hi := w.Bounds(); lo != 20 || hi != 22 {
		t.Errorf("Bounds() = [%d, %d), expected [20, 22)", lo, hi)
	}
}

func TestOutOfRangeQueries(t *testing.T) {
	w, _ := newTestWindow(3)
	w.EnsureGenerated(9)
	w.EvictBefore(2)

	for _, lane := range []int{-1, 0, 1, 10, 50} {
		_, err := w.IsOccupied(lane, 0)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("IsOccupied(%d) error = %v, expected ErrOutOfRange", lane, err)
		}
		_, err = w.HeightAt(lane)
		var oor *OutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("HeightAt(%d) error = %v, expected *OutOfRangeError", lane, err)
		}
		if oor.Lane != lane || oor.Lo != 2 || oor.Hi != 10 {
			t.Errorf("OutOfRangeError = %+v", oor)
		}
		if _, ok := w.Lane(lane); ok {
			t.Errorf("Lane(%d) should not be found", lane)
		}
	}

	for lane := 2; lane < 10; lane++ {
		if _, err := w.HeightAt(lane); err != nil {
			t.Errorf("HeightAt(%d) = %v, expected no error", lane, err)
		}
	}
}

func TestWindowQueriesMatchLanes(t *testing.T) {
	w, _ := newTestWindow(4)
	w.EnsureGenerated(29)
	cfg := testConfig()

	for _, view := range w.Views() {
		h, err := w.HeightAt(view.Index)
		if err != nil {
			t.Fatal(err)
		}
		switch view.Kind {
		case KindGrass:
			if h != cfg.Lanes.GrassHeight {
				t.Errorf("grass lane %d height = %f", view.Index, h)
			}
		case KindRoad:
			if h != cfg.Lanes.RoadHeight {
				t.Errorf("road lane %d height = %f", view.Index, h)
			}
		}

		blocked := map[int]bool{}
		for _, c := range view.Occupied {
			blocked[c] = true
		}
		for col := cfg.Lanes.LeftBoundary - 2; col <= cfg.Lanes.RightBoundary+2; col++ {
			occ, err := w.IsOccupied(view.Index, col)
			if err != nil {
				t.Fatal(err)
			}
			if occ != blocked[col] {
				t.Errorf("IsOccupied(%d, %d) = %v, expected %v", view.Index, col, occ, blocked[col])
			}
		}
	}
}

func TestViewsAreCopies(t *testing.T) {
	cfg := testConfig()
	cfg.Lanes.MaxRoads = -1
	gen := NewGenerator(cfg, &scriptedRand{floatFallback: 0})
	w := NewWindow(gen, nil)
	w.EnsureGenerated(0)

	view, ok := w.Lane(0)
	if !ok || view.Kind != KindRoad {
		t.Fatalf("Lane(0) = %+v, %v", view, ok)
	}
	view.Vehicles[0].X = 99
	view.Occupied[0] = 3

	again, _ := w.Lane(0)
	if again.Vehicles[0].X == 99 {
		t.Error("mutating a view changed the lane's vehicles")
	}
	if occ, _ := w.IsOccupied(0, 3); occ {
		t.Error("mutating a view changed the lane's occupancy")
	}
}

func TestWindowReset(t *testing.T) {
	cfg := testConfig()
	cfg.Lanes.MaxRoads = 2
	sp := newRecordingSpawner()
	gen := NewGenerator(cfg, &scriptedRand{floatFallback: 0})
	w := NewWindow(gen, sp)

	w.EnsureGenerated(9)
	w.EvictBefore(3)
	if w.Roads() != 2 {
		t.Fatalf("Roads() = %d, expected 2", w.Roads())
	}

	w.Reset()

	if len(sp.alive) != 0 {
		t.Errorf("%d presentation objects leaked after Reset", len(sp.alive))
	}
	if w.Len() != 0 || w.Generated() != 0 || w.Roads() != 0 {
		t.Errorf("after Reset: Len=%d Generated=%d Roads=%d", w.Len(), w.Generated(), w.Roads())
	}

	w.EnsureGenerated(0)
	view, ok := w.Lane(0)
	if !ok {
		t.Fatal("lane 0 should exist after regenerating")
	}
	if view.Kind != KindRoad {
		t.Error("first lane after Reset should be a road again under an always-road draw")
	}
}

func TestGenerateTwicePanics(t *testing.T) {
	w, _ := newTestWindow(6)
	w.EnsureGenerated(3)
	w.next = 2 // corrupt the bookkeeping

	defer func() {
		r := recover()
		var inv *InvariantError
		err, ok := r.(error)
		if !ok || !errors.As(err, &inv) {
			t.Errorf("recover() = %v, expected *InvariantError", r)
		}
	}()
	w.generate()
}
