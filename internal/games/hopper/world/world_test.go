package world

import (
	"github.com/vovakirdan/hopper/internal/config"
)

// scriptedRand replays fixed draws. Once a script runs out it keeps
// returning the fallback value.
type scriptedRand struct {
	floats        []float64
	ints          []int
	floatFallback float64
	intFallback   int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.floatFallback
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	v := r.intFallback
	if len(r.ints) > 0 {
		v = r.ints[0]
		r.ints = r.ints[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}

// recordingSpawner counts presentation objects alive at any time.
type recordingSpawner struct {
	nextID    int
	alive     map[int]LaneView
	destroyed []int
}

func newRecordingSpawner() *recordingSpawner {
	return &recordingSpawner{alive: make(map[int]LaneView)}
}

func (s *recordingSpawner) SpawnLane(desc LaneView) Handle {
	s.nextID++
	s.alive[s.nextID] = desc
	return s.nextID
}

func (s *recordingSpawner) DestroyLane(h Handle) {
	id := h.(int)
	s.destroyed = append(s.destroyed, s.alive[id].Index)
	delete(s.alive, id)
}

func testConfig() config.HopperConfig {
	return config.DefaultHopperConfig()
}
