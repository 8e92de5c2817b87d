package hopper

// Snapshot contains the complete observable state of a session.
// Uses primitive types only for stable comparison in tests and replays.
type Snapshot struct {
	State     string
	Score     int
	Cause     string
	Col, Lane int
	X, Y, Z   float64
	Pitch     float64
	Yaw       float64
	Hopping   bool

	// Window bookkeeping
	LaneLo    int
	LaneHi    int
	Generated int
	Roads     int

	// Per retained lane, lowest first: 0=grass, 1=road
	LaneKinds []int

	// Vehicle X positions of every retained road, flattened lane by lane
	VehicleX []float64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	a := s.ctrl.Actor()
	lo, hi := s.window.Bounds()

	snap := Snapshot{
		State:     s.ctrl.State().String(),
		Score:     s.ctrl.Score(),
		Cause:     s.ctrl.Cause().String(),
		Col:       a.Pos.Col,
		Lane:      a.Pos.Lane,
		X:         a.World.X,
		Y:         a.World.Y,
		Z:         a.World.Z,
		Pitch:     a.Rot.Pitch,
		Yaw:       a.Rot.Yaw,
		Hopping:   s.ctrl.Hopping(),
		LaneLo:    lo,
		LaneHi:    hi,
		Generated: s.window.Generated(),
		Roads:     s.window.Roads(),
	}

	for _, l := range s.window.Views() {
		snap.LaneKinds = append(snap.LaneKinds, int(l.Kind))
		for _, v := range l.Vehicles {
			snap.VehicleX = append(snap.VehicleX, v.X)
		}
	}
	return snap
}
