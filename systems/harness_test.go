package systems_test

import (
	"testing"

	"github.com/automoto/brawlcore/assets"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/core"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// newSim builds a simulation backed by the embedded brawler frame data.
// mutate, when non-nil, adjusts the options before construction.
func newSim(t *testing.T, tickRate int, mutate func(*core.Options)) *core.Simulation {
	t.Helper()
	frames, err := assets.FrameLibrary()
	require.NoError(t, err)

	c := cfg.Combat.Clone()
	c.TickRate = tickRate

	opts := core.Options{Frames: frames, Config: c}
	if mutate != nil {
		mutate(&opts)
	}
	return core.NewSimulation(opts)
}

// spawnFighter creates a 16x32 brawler at (x, 100) with 100 health.
func spawnFighter(sim *core.Simulation, name string, x float64, identity *components.TeamData) *donburi.Entry {
	return sim.SpawnActor(core.ActorParams{
		Name:       name,
		Character:  "brawler",
		X:          x,
		Y:          100,
		W:          16,
		H:          32,
		MaxHealth:  100,
		ClipLength: 0.32,
		Identity:   identity,
	})
}

// spawnDummy creates an actor with health only, no frame data.
func spawnDummy(sim *core.Simulation, name string, maxHealth float64) *donburi.Entry {
	return sim.SpawnActor(core.ActorParams{
		Name:      name,
		X:         100,
		Y:         100,
		W:         16,
		H:         32,
		MaxHealth: maxHealth,
	})
}

// newRapidSim builds a bare simulation for property tests, where no
// *testing.T is available.
func newRapidSim() *core.Simulation {
	return core.NewSimulation(core.Options{})
}

func actorWithShield(maxHealth, maxShield float64) core.ActorParams {
	return core.ActorParams{
		Name: "target", X: 100, Y: 100, W: 16, H: 32,
		MaxHealth: maxHealth,
		MaxShield: maxShield,
	}
}

// flush delivers queued events to subscribers outside a Step.
func flush(w donburi.World) {
	devents.ProcessAllEvents(w)
}
