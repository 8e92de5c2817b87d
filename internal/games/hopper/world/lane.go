// Package world holds the procedural terrain of hopper: lane generation,
// the sliding lane window and road traffic.
package world

import (
	"slices"

	"github.com/vovakirdan/hopper/internal/core"
)

// Kind is the terrain type of a lane.
type Kind int

const (
	KindGrass Kind = iota
	KindRoad
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGrass:
		return "grass"
	case KindRoad:
		return "road"
	default:
		return "unknown"
	}
}

// vehicleHalfDepth is half the size of a vehicle across lanes.
const vehicleHalfDepth = 0.4

// Archetype is a kind of vehicle a road convoy is made of.
type Archetype struct {
	Name   string
	Length float64
	Glyph  rune
}

// Vehicle is one car of a road convoy. Vehicles belong to exactly one lane
// and are released with it.
type Vehicle struct {
	X         float64
	Direction int // +1 or -1
	Speed     float64
	Archetype Archetype
}

// Box returns the vehicle hitbox when driving on the given lane.
func (v Vehicle) Box(lane int) core.RectF {
	return core.BoxAround(v.X, float64(lane), v.Archetype.Length/2, vehicleHalfDepth)
}

// Convoy describes how a road lane's vehicles were laid out.
type Convoy struct {
	Archetype Archetype
	Count     int
	Gap       float64
	Direction int
	Speed     float64
}

// Handle is an opaque presentation object owned by whoever spawned it.
type Handle any

// Lane is one row of the world.
type Lane struct {
	Index    int
	Kind     Kind
	Height   float64
	Occupied map[int]struct{} // Columns blocked for the actor, boundaries included
	Trees    []int            // Obstacle columns in draw order; may repeat
	Convoy   Convoy           // Roads only
	Vehicles []Vehicle        // Roads only
	Handle   Handle
}

// IsOccupied reports whether col is blocked on this lane.
func (l *Lane) IsOccupied(col int) bool {
	_, ok := l.Occupied[col]
	return ok
}

// View returns a copy of the lane that shares no memory with it.
func (l *Lane) View() LaneView {
	occupied := make([]int, 0, len(l.Occupied))
	for c := range l.Occupied {
		occupied = append(occupied, c)
	}
	slices.Sort(occupied)

	return LaneView{
		Index:    l.Index,
		Kind:     l.Kind,
		Height:   l.Height,
		Occupied: occupied,
		Trees:    slices.Clone(l.Trees),
		Convoy:   l.Convoy,
		Vehicles: slices.Clone(l.Vehicles),
	}
}

// release drops everything the lane owns.
func (l *Lane) release() {
	l.Vehicles = nil
	l.Trees = nil
	l.Occupied = nil
	l.Handle = nil
}

// LaneView is a read-only snapshot of a lane, safe to hand to presentation.
type LaneView struct {
	Index    int
	Kind     Kind
	Height   float64
	Occupied []int // Sorted ascending
	Trees    []int
	Convoy   Convoy
	Vehicles []Vehicle
}

// Spawner creates and destroys the presentation object of a lane.
type Spawner interface {
	SpawnLane(desc LaneView) Handle
	DestroyLane(h Handle)
}

type nopSpawner struct{}

func (nopSpawner) SpawnLane(LaneView) Handle { return nil }
func (nopSpawner) DestroyLane(Handle)        {}
