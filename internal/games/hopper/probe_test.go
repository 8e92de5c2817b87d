package hopper

import (
	"testing"

	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/core"
)

func roadSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.DefaultHopperConfig()
	cfg.Lanes.MaxRoads = -1
	s, _ := newTestSession(cfg, allRoads)

	// Single car per road, parked at X=0 until traffic steps
	lane, ok := s.Window().Lane(0)
	if !ok || len(lane.Vehicles) != 1 || lane.Vehicles[0].X != 0 {
		t.Fatalf("unexpected lane 0: %+v", lane)
	}
	return s
}

func TestProbeIgnoresStartArea(t *testing.T) {
	s := roadSession(t)
	if _, hit := NewProbe().Check(s); hit {
		t.Error("actor in the start area should not touch lane 0 traffic")
	}
}

func TestProbeHitsVehicleInLane(t *testing.T) {
	s := roadSession(t)
	hop(s, core.ActionUp)

	point, hit := NewProbe().Check(s)
	if !hit {
		t.Fatal("expected a hit with the car at X=0 on lane 0")
	}
	if point.Z != 0 {
		t.Errorf("contact Z = %f, expected 0", point.Z)
	}

	if !NewProbe().Detect(s) {
		t.Fatal("Detect() = false, expected true")
	}
	if s.State() != StateDead || s.Cause() != CauseVehicle {
		t.Errorf("State() = %v, Cause() = %v", s.State(), s.Cause())
	}

	// Dead actors no longer collide
	if NewProbe().Detect(s) {
		t.Error("Detect() on a dead actor should be false")
	}
}

func TestProbeMissesVehicleOutOfReach(t *testing.T) {
	s := roadSession(t)
	hop(s, core.ActionRight)
	hop(s, core.ActionRight)
	hop(s, core.ActionUp) // (2, 0), car at X=0 spans [-0.5, 0.5]

	if _, hit := NewProbe().Check(s); hit {
		t.Error("car two columns away should not hit")
	}

	// Drive the car into the actor: it wraps at -12 and comes back from +12
	for i := 0; i < 2000 && s.State() != StateDead; i++ {
		s.FixedUpdate(0.02)
		NewProbe().Detect(s)
	}
	if s.State() != StateDead {
		t.Error("wrapping traffic should eventually hit a stationary actor")
	}
}

func TestProbeCatchesActorMidHop(t *testing.T) {
	s := roadSession(t)
	s.Update(0, input(core.ActionUp))
	s.Update(s.Config().Movement.MoveDuration/2, input())

	// Z = -0.5: the actor box reaches into lane 0
	if _, hit := NewProbe().Check(s); !hit {
		t.Error("expected a hit while crossing into the car's lane")
	}
}
