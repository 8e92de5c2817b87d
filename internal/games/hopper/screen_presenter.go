package hopper

import (
	"fmt"

	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/games/hopper/world"
)

// Terminal layout
const (
	CellWidth   = 3 // Screen columns per grid column
	CameraRows  = 5 // Rows kept below the actor
	CameraSlack = 3 // Rows the actor may retreat before the camera follows
	HUDRows     = 1
)

// Visual characters for rendering
const (
	GrassChar   = '·'
	RoadChar    = '-'
	OutsideChar = '▒'
	TreeChar    = '♣'
	DeadChar    = 'X'
	AirChar     = 'o'
)

// actorGlyphs maps a facing yaw to the actor glyph.
var actorGlyphs = map[float64]rune{
	YawForward: '▲',
	YawBack:    '▼',
	YawLeft:    '◀',
	YawRight:   '▶',
}

// laneSprite is the static look of a lane, built once when the lane spawns.
type laneSprite struct {
	index int
	kind  world.Kind
	trees map[int]bool
	glyph rune
	color core.Color
}

// ScreenPresenter draws a session into a terminal screen buffer. Lane
// sprites live exactly as long as the lanes the window retains.
type ScreenPresenter struct {
	left, right int
	startDepth  int
	startHalfW  int

	nextID  int
	sprites map[int]*laneSprite // By handle
	byLane  map[int]int         // Lane index -> handle

	pos    core.Vec3
	rot    Euler
	score  int
	dead   bool
	camera int
	placed bool
}

// NewScreenPresenter creates a presenter for the given configuration.
func NewScreenPresenter(cfg config.HopperConfig) *ScreenPresenter {
	return &ScreenPresenter{
		left:       cfg.Lanes.LeftBoundary,
		right:      cfg.Lanes.RightBoundary,
		startDepth: cfg.Movement.StartDepth,
		startHalfW: cfg.Movement.StartHalfWidth,
		sprites:    make(map[int]*laneSprite),
		byLane:     make(map[int]int),
	}
}

// SpawnLane builds the sprite of a new lane.
func (p *ScreenPresenter) SpawnLane(desc world.LaneView) world.Handle {
	p.nextID++
	sp := &laneSprite{
		index: desc.Index,
		kind:  desc.Kind,
		trees: make(map[int]bool, len(desc.Trees)),
	}
	for _, c := range desc.Trees {
		sp.trees[c] = true
	}
	if desc.Kind == world.KindRoad {
		sp.glyph = desc.Convoy.Archetype.Glyph
		sp.color = core.ColorOrange
		if desc.Convoy.Direction < 0 {
			sp.color = core.ColorCyan
		}
	}

	p.sprites[p.nextID] = sp
	p.byLane[desc.Index] = p.nextID
	return p.nextID
}

// DestroyLane drops the sprite behind h.
func (p *ScreenPresenter) DestroyLane(h world.Handle) {
	id, ok := h.(int)
	if !ok {
		return
	}
	if sp, ok := p.sprites[id]; ok {
		if p.byLane[sp.index] == id {
			delete(p.byLane, sp.index)
		}
		delete(p.sprites, id)
	}
}

// RenderActorPosition stores the actor pose and moves the camera.
func (p *ScreenPresenter) RenderActorPosition(pos core.Vec3, rot Euler) {
	lane := core.Round(pos.Z)
	jumped := p.placed && (pos.Z-p.pos.Z > 1.5 || p.pos.Z-pos.Z > 1.5)
	p.pos = pos
	p.rot = rot

	switch {
	case !p.placed || jumped:
		p.camera = lane
	case lane > p.camera:
		p.camera = lane
	case lane < p.camera-CameraSlack:
		p.camera = lane + CameraSlack
	}
	p.placed = true
}

// RenderScore stores the score for the HUD.
func (p *ScreenPresenter) RenderScore(score int) {
	p.score = score
}

// RenderDeath toggles the dead actor glyph.
func (p *ScreenPresenter) RenderDeath(dead bool) {
	p.dead = dead
}

// Sprites returns the number of live lane sprites.
func (p *ScreenPresenter) Sprites() int {
	return len(p.sprites)
}

// Score returns the last score shown.
func (p *ScreenPresenter) Score() int {
	return p.score
}

// Dead reports whether the death state is shown.
func (p *ScreenPresenter) Dead() bool {
	return p.dead
}

// baseRow is the screen row of the camera lane.
func (p *ScreenPresenter) baseRow(dst *core.Screen) int {
	return dst.Height() - 1 - CameraRows
}

// screenX converts a world X to a screen column.
func (p *ScreenPresenter) screenX(dst *core.Screen, x float64) int {
	return dst.Width()/2 + core.Round(x*CellWidth)
}

// Draw renders the lanes, vehicles, actor and score.
func (p *ScreenPresenter) Draw(dst *core.Screen, lanes []world.LaneView) {
	dst.Clear()
	base := p.baseRow(dst)

	vehicles := make(map[int][]world.Vehicle, len(lanes))
	for _, l := range lanes {
		if l.Kind == world.KindRoad {
			vehicles[l.Index] = l.Vehicles
		}
	}

	for y := HUDRows; y < dst.Height(); y++ {
		lane := p.camera + (base - y)
		if id, ok := p.byLane[lane]; ok {
			sp := p.sprites[id]
			p.drawLane(dst, y, sp)
			if sp.kind == world.KindRoad {
				p.drawVehicles(dst, y, sp, vehicles[lane])
			}
			continue
		}
		if lane < 0 && lane >= -p.startDepth {
			p.drawStart(dst, y)
		}
	}

	p.drawActor(dst, base)
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", p.score))
}

// drawLane paints the background of a lane row.
func (p *ScreenPresenter) drawLane(dst *core.Screen, y int, sp *laneSprite) {
	for col := p.left - 6; col <= p.right+6; col++ {
		x := p.screenX(dst, float64(col)) - CellWidth/2
		r, c := GrassChar, core.ColorGreen
		switch {
		case col <= p.left || col >= p.right:
			r, c = OutsideChar, core.ColorGray
		case sp.kind == world.KindRoad:
			r, c = RoadChar, core.ColorGray
		}
		dst.DrawHLine(x, y, CellWidth, r, c)
		if sp.trees[col] {
			dst.SetColor(x+CellWidth/2, y, TreeChar, core.ColorBrightGreen)
		}
	}
}

// drawStart paints a row of the start area.
func (p *ScreenPresenter) drawStart(dst *core.Screen, y int) {
	for col := p.left - 6; col <= p.right+6; col++ {
		x := p.screenX(dst, float64(col)) - CellWidth/2
		r, c := GrassChar, core.ColorBrightGreen
		if col <= -p.startHalfW || col >= p.startHalfW {
			r, c = OutsideChar, core.ColorGray
		}
		dst.DrawHLine(x, y, CellWidth, r, c)
	}
}

// drawVehicles paints the convoy of a road row.
func (p *ScreenPresenter) drawVehicles(dst *core.Screen, y int, sp *laneSprite, vs []world.Vehicle) {
	for _, v := range vs {
		n := max(1, core.Round(v.Archetype.Length*CellWidth))
		x := p.screenX(dst, v.X) - n/2
		dst.DrawHLine(x, y, n, sp.glyph, sp.color)
	}
}

// drawActor paints the actor at its interpolated pose.
func (p *ScreenPresenter) drawActor(dst *core.Screen, base int) {
	y := base - (core.Round(p.pos.Z) - p.camera)
	x := p.screenX(dst, p.pos.X)

	glyph, ok := actorGlyphs[p.rot.Yaw]
	if !ok {
		glyph = actorGlyphs[YawForward]
	}
	color := core.ColorBrightYellow
	switch {
	case p.dead:
		glyph, color = DeadChar, core.ColorBrightRed
	case p.rot.Pitch != 0:
		glyph = AirChar
	}
	dst.SetColor(x, y, glyph, color)
}
