package world

// Traffic moves road convoys on the fixed physics clock.
type Traffic struct {
	bound float64
}

// NewTraffic creates a simulator wrapping vehicles at +/- bound.
func NewTraffic(bound float64) *Traffic {
	return &Traffic{bound: bound}
}

// Step advances every vehicle of every retained road by dt seconds.
// Vehicles move by displacement so collision stays continuous between
// wraps; a vehicle that leaves the visible span re-enters on the far side.
func (t *Traffic) Step(w *Window, dt float64) {
	for i := w.lo; i < w.next; i++ {
		lane := w.lanes[i]
		if lane.Kind != KindRoad {
			continue
		}
		for j := range lane.Vehicles {
			v := &lane.Vehicles[j]
			v.X += v.Speed * float64(v.Direction) * dt

			switch {
			case v.Direction > 0 && v.X > t.bound:
				v.X = -t.bound
			case v.Direction < 0 && v.X < -t.bound:
				v.X = t.bound
			}
		}
	}
}
