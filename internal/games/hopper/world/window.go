package world

import (
	"fmt"
)

// Window is the sliding buffer of generated lanes. It owns every lane in
// [lo, next) and, through them, their vehicles.
type Window struct {
	gen     *Generator
	spawner Spawner
	lanes   map[int]*Lane
	lo      int // Lowest retained lane
	next    int // Next lane index to generate
}

// NewWindow creates an empty window. A nil spawner disables presentation.
func NewWindow(gen *Generator, spawner Spawner) *Window {
	if spawner == nil {
		spawner = nopSpawner{}
	}
	return &Window{
		gen:     gen,
		spawner: spawner,
		lanes:   make(map[int]*Lane),
	}
}

// EnsureGenerated generates every lane from the next index up to and
// including upto. Returns the number of lanes generated.
func (w *Window) EnsureGenerated(upto int) int {
	n := 0
	for w.next <= upto {
		w.generate()
		n++
	}
	return n
}

// generate appends exactly one lane.
func (w *Window) generate() {
	index := w.next
	if _, exists := w.lanes[index]; exists {
		panic(&InvariantError{Reason: fmt.Sprintf("lane %d generated twice", index)})
	}

	lane := w.gen.Generate(index)
	lane.Handle = w.spawner.SpawnLane(lane.View())
	w.lanes[index] = lane
	w.next++
}

// EvictBefore destroys every retained lane with an index below index.
// Repeated calls are no-ops. Returns the number of lanes evicted.
func (w *Window) EvictBefore(index int) int {
	stop := min(index, w.next)
	n := 0
	for ; w.lo < stop; w.lo++ {
		lane, ok := w.lanes[w.lo]
		if !ok {
			panic(&InvariantError{Reason: fmt.Sprintf("lane %d missing inside window", w.lo)})
		}
		w.spawner.DestroyLane(lane.Handle)
		lane.release()
		delete(w.lanes, w.lo)
		n++
	}
	return n
}

// Reset evicts every lane and restarts generation at index 0 with a fresh
// road counter.
func (w *Window) Reset() {
	w.EvictBefore(w.next)
	w.lo = 0
	w.next = 0
	w.gen.Reset()
}

// lane returns the retained lane at index or an *OutOfRangeError.
func (w *Window) lane(index int) (*Lane, error) {
	if index < w.lo || index >= w.next {
		return nil, &OutOfRangeError{Lane: index, Lo: w.lo, Hi: w.next}
	}
	return w.lanes[index], nil
}

// IsOccupied reports whether col is blocked on the lane at index.
func (w *Window) IsOccupied(index, col int) (bool, error) {
	l, err := w.lane(index)
	if err != nil {
		return false, err
	}
	return l.IsOccupied(col), nil
}

// HeightAt returns the terrain height of the lane at index.
func (w *Window) HeightAt(index int) (float64, error) {
	l, err := w.lane(index)
	if err != nil {
		return 0, err
	}
	return l.Height, nil
}

// Lane returns a snapshot of the lane at index.
func (w *Window) Lane(index int) (LaneView, bool) {
	l, err := w.lane(index)
	if err != nil {
		return LaneView{}, false
	}
	return l.View(), true
}

// Views returns snapshots of every retained lane, lowest index first.
func (w *Window) Views() []LaneView {
	views := make([]LaneView, 0, len(w.lanes))
	for i := w.lo; i < w.next; i++ {
		views = append(views, w.lanes[i].View())
	}
	return views
}

// Bounds returns the retained range [lo, hi).
func (w *Window) Bounds() (lo, hi int) {
	return w.lo, w.next
}

// Len returns the number of retained lanes.
func (w *Window) Len() int {
	return len(w.lanes)
}

// Generated returns how many lanes were generated since the last Reset.
func (w *Window) Generated() int {
	return w.next
}

// Roads returns how many road lanes were generated since the last Reset.
func (w *Window) Roads() int {
	return w.gen.Roads()
}

// Validate checks the window bookkeeping: exactly the lanes in [lo, next)
// are retained and each sits under its own index.
func (w *Window) Validate() error {
	if w.lo > w.next {
		return &InvariantError{Reason: fmt.Sprintf("lo %d past next %d", w.lo, w.next)}
	}
	if len(w.lanes) != w.next-w.lo {
		return &InvariantError{Reason: fmt.Sprintf("%d lanes retained for range [%d, %d)", len(w.lanes), w.lo, w.next)}
	}
	for i := w.lo; i < w.next; i++ {
		l, ok := w.lanes[i]
		if !ok {
			return &InvariantError{Reason: fmt.Sprintf("gap at lane %d", i)}
		}
		if l.Index != i {
			return &InvariantError{Reason: fmt.Sprintf("lane %d stored under index %d", l.Index, i)}
		}
	}
	return nil
}
