package hopper

import (
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/games/hopper/world"
)

// Presenter receives everything the session shows. Lane presentation is
// created and destroyed in step with the lane window.
type Presenter interface {
	world.Spawner

	// RenderActorPosition is called once per variable tick with the
	// interpolated actor pose.
	RenderActorPosition(pos core.Vec3, rot Euler)

	// RenderScore is called whenever the score changes.
	RenderScore(score int)

	// RenderDeath shows or hides the death state.
	RenderDeath(dead bool)
}

// NopPresenter discards every notification.
type NopPresenter struct{}

func (NopPresenter) SpawnLane(world.LaneView) world.Handle { return nil }
func (NopPresenter) DestroyLane(world.Handle)              {}
func (NopPresenter) RenderActorPosition(core.Vec3, Euler)  {}
func (NopPresenter) RenderScore(int)                       {}
func (NopPresenter) RenderDeath(bool)                      {}
