package world

import (
	"github.com/vovakirdan/hopper/internal/config"
)

// Rand is the randomness the generator draws from. *math/rand.Rand
// satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Generator decides the kind and contents of each lane.
// It counts roads since the last Reset and stops producing them at the cap.
type Generator struct {
	lanes      config.LanesConfig
	traffic    config.TrafficConfig
	archetypes []Archetype
	rng        Rand
	roads      int
}

// NewGenerator creates a generator from the game configuration.
func NewGenerator(cfg config.HopperConfig, rng Rand) *Generator {
	archetypes := make([]Archetype, 0, len(cfg.Vehicles))
	for _, v := range cfg.Vehicles {
		glyph := '▆'
		for _, r := range v.Glyph {
			glyph = r
			break
		}
		archetypes = append(archetypes, Archetype{Name: v.Name, Length: v.Length, Glyph: glyph})
	}
	if len(archetypes) == 0 {
		archetypes = append(archetypes, Archetype{Name: "car", Length: 1, Glyph: '▆'})
	}

	return &Generator{
		lanes:      cfg.Lanes,
		traffic:    cfg.Traffic,
		archetypes: archetypes,
		rng:        rng,
	}
}

// Reset clears the road counter.
func (g *Generator) Reset() {
	g.roads = 0
}

// Roads returns how many roads were generated since the last Reset.
func (g *Generator) Roads() int {
	return g.roads
}

// capped reports whether the road cap has been reached.
func (g *Generator) capped() bool {
	return g.lanes.MaxRoads >= 0 && g.roads >= g.lanes.MaxRoads
}

// Generate builds the lane at index.
func (g *Generator) Generate(index int) *Lane {
	if !g.capped() && g.rng.Float64() < g.lanes.RoadProbability.At(index) {
		g.roads++
		return g.road(index)
	}
	return g.grass(index)
}

// boundaries returns the occupied set every lane starts with.
func (g *Generator) boundaries() map[int]struct{} {
	return map[int]struct{}{
		g.lanes.LeftBoundary:  {},
		g.lanes.RightBoundary: {},
	}
}

// grass builds a grass lane with a few trees in the playable columns.
func (g *Generator) grass(index int) *Lane {
	occupied := g.boundaries()

	n := g.intRange(g.lanes.MinTrees, g.lanes.MaxTrees)
	trees := make([]int, 0, n)
	for i := 0; i < n; i++ {
		col := g.intRange(g.lanes.LeftBoundary+1, g.lanes.RightBoundary-1)
		occupied[col] = struct{}{}
		trees = append(trees, col)
	}

	return &Lane{
		Index:    index,
		Kind:     KindGrass,
		Height:   g.lanes.GrassHeight,
		Occupied: occupied,
		Trees:    trees,
	}
}

// road builds a road lane with a single convoy. Vehicles do not occupy
// cells; hitting them is a continuous collision, not a blocked move.
func (g *Generator) road(index int) *Lane {
	direction := 2*g.rng.Intn(2) - 1

	minSpeed := g.traffic.MinSpeed.At(index)
	maxSpeed := g.traffic.MaxSpeed.At(index)
	speed := g.floatRange(minSpeed, maxSpeed)

	archetype := g.archetypes[g.rng.Intn(len(g.archetypes))]
	count := g.intRange(g.traffic.MinVehicles, g.traffic.MaxVehicles)
	gap := g.floatRange(g.traffic.MinGap, g.traffic.MaxGap)

	// Line the convoy up behind x=0 so it enters from the side it drives from
	vehicles := make([]Vehicle, count)
	for i := range vehicles {
		vehicles[i] = Vehicle{
			X:         float64(i) * gap * float64(-direction),
			Direction: direction,
			Speed:     speed,
			Archetype: archetype,
		}
	}

	return &Lane{
		Index:    index,
		Kind:     KindRoad,
		Height:   g.lanes.RoadHeight,
		Occupied: g.boundaries(),
		Convoy: Convoy{
			Archetype: archetype,
			Count:     count,
			Gap:       gap,
			Direction: direction,
			Speed:     speed,
		},
		Vehicles: vehicles,
	}
}

// intRange draws uniformly from [lo, hi].
func (g *Generator) intRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// floatRange draws uniformly from [lo, hi).
func (g *Generator) floatRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*g.rng.Float64()
}
