package systems_test

import (
	"testing"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/core"
	"github.com/automoto/brawlcore/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestHitboxArenaTracksAnimationFrames(t *testing.T) {
	sim := newSim(t, 10, nil) // dt = 0.1
	e := spawnFighter(sim, "ash", 100, nil)
	components.Animation.Get(e).Play("punch")
	set := components.HitboxSet.Get(e)

	// Step 1 lands in the punch's active frame: hurt + hit boxes.
	sim.Step()
	assert.Equal(t, 2, set.ActiveCount())
	require.Len(t, set.Proxies, 2)
	assert.Equal(t, cfg.HitboxHurt, set.Proxies[0].Type)
	assert.Equal(t, cfg.HitboxHit, set.Proxies[1].Type)
	assert.InDelta(t, 8, set.Proxies[1].Frame.Damage, 1e-9)

	// Two more steps reach the recovery frame: the arena shrinks and the
	// retired slot keeps no stale attack metadata.
	sim.Step()
	sim.Step()
	assert.Equal(t, 1, set.ActiveCount())
	require.Len(t, set.Proxies, 2, "slots are reused, never destroyed")
	assert.False(t, set.Proxies[1].Active)
	assert.Equal(t, cfg.HitboxFrame{}, set.Proxies[1].Frame)
	assert.Nil(t, set.Proxies[1].HitTargets)
}

func TestHitboxesFollowTheBody(t *testing.T) {
	sim := newSim(t, 10, nil)
	e := spawnFighter(sim, "ash", 100, nil)
	components.Animation.Get(e).Play("punch")
	set := components.HitboxSet.Get(e)

	sim.Step()
	require.Equal(t, 2, set.ActiveCount())
	hit := set.Proxies[1].Object
	assert.InDelta(t, 116, hit.X, 1e-9) // body 100 + offset 16
	assert.InDelta(t, 108, hit.Y, 1e-9)

	components.Object.Get(e).X = 200
	sim.Step()
	assert.InDelta(t, 216, hit.X, 1e-9)
}

func TestUnknownClipDeactivatesEverything(t *testing.T) {
	sim := newSim(t, 10, nil)
	e := spawnFighter(sim, "ash", 100, nil)
	anim := components.Animation.Get(e)
	anim.Play("punch")
	set := components.HitboxSet.Get(e)

	sim.Step()
	require.Equal(t, 2, set.ActiveCount())

	anim.Play("missing")
	sim.Step()
	assert.Zero(t, set.ActiveCount())
}

func TestCullingDeactivatesDistantActors(t *testing.T) {
	sim := newSim(t, 10, func(o *core.Options) {
		o.Config.CullDistance = 50
	})
	e := spawnFighter(sim, "ash", 500, nil)
	components.Animation.Get(e).Play("punch")
	set := components.HitboxSet.Get(e)

	sim.SetViewer(0, 0)
	sim.Step()
	assert.Zero(t, set.ActiveCount())

	// Moving the viewer back in range reactivates on the next sync.
	sim.SetViewer(500, 100)
	sim.Step()
	assert.Equal(t, 2, set.ActiveCount())
}

func TestSyncIntervalSkipsTicks(t *testing.T) {
	sim := newSim(t, 10, func(o *core.Options) {
		o.Config.SyncInterval = 2
	})
	e := spawnFighter(sim, "ash", 100, nil)
	components.Animation.Get(e).Play("punch")
	set := components.HitboxSet.Get(e)

	sim.Step() // tick 1, skipped
	assert.Zero(t, set.ActiveCount())
	sim.Step() // tick 2, syncs
	assert.Equal(t, 2, set.ActiveCount())
}

func TestSyncHitboxesReplacesStaleMetadata(t *testing.T) {
	sim := newSim(t, 10, nil)
	e := spawnFighter(sim, "ash", 100, nil)
	set := components.HitboxSet.Get(e)
	spaceEntry, ok := components.Space.First(sim.World())
	require.True(t, ok)
	space := components.Space.Get(spaceEntry).Space

	first := cfg.HitboxFrame{
		Type: cfg.HitboxHit, Width: 10, Height: 10,
		Damage: 8, FX: "jab", OncePerTarget: true,
	}
	systems.SyncHitboxes(e, set, space, []cfg.HitboxFrame{first})
	require.Len(t, set.Proxies, 1)
	set.Proxies[0].HitTargets = map[donburi.Entity]bool{e.Entity(): true}

	// Same descriptor again: the swing continues, the ledger survives.
	systems.SyncHitboxes(e, set, space, []cfg.HitboxFrame{first})
	assert.NotNil(t, set.Proxies[0].HitTargets)

	// A different descriptor is a new swing: metadata overwritten, ledger
	// cleared.
	second := first
	second.Damage = 3
	second.FX = "poke"
	systems.SyncHitboxes(e, set, space, []cfg.HitboxFrame{second})
	assert.InDelta(t, 3, set.Proxies[0].Frame.Damage, 1e-9)
	assert.Equal(t, "poke", set.Proxies[0].Frame.FX)
	assert.Nil(t, set.Proxies[0].HitTargets)
}
