package systems_test

import (
	"testing"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/core"
	ev "github.com/automoto/brawlcore/events"
	"github.com/automoto/brawlcore/systems"
	"github.com/kvartborg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestIsFriendly(t *testing.T) {
	sim := newSim(t, 60, nil)
	spawnWith := func(id *components.TeamData) *donburi.Entry {
		return sim.SpawnActor(core.ActorParams{
			Name: "t", X: 0, Y: 0, W: 16, H: 32, MaxHealth: 100,
			Identity: id,
		})
	}

	team1a := spawnWith(&components.TeamData{TeamID: 1})
	team1b := spawnWith(&components.TeamData{TeamID: 1})
	team2 := spawnWith(&components.TeamData{TeamID: 2})
	rebelA := spawnWith(&components.TeamData{Faction: "rebels"})
	rebelB := spawnWith(&components.TeamData{Faction: "rebels"})
	nobody := spawnWith(nil)
	zeroTeam := spawnWith(&components.TeamData{})

	assert.True(t, systems.IsFriendly(team1a, team1b))
	assert.False(t, systems.IsFriendly(team1a, team2))
	assert.True(t, systems.IsFriendly(rebelA, rebelB))
	assert.False(t, systems.IsFriendly(team1a, rebelA))
	assert.False(t, systems.IsFriendly(nobody, team1a))
	assert.False(t, systems.IsFriendly(nobody, nobody))
	assert.False(t, systems.IsFriendly(zeroTeam, zeroTeam), "team id 0 is not an identity")
}

func TestCanDamageFriendlyFireRules(t *testing.T) {
	sim := newSim(t, 60, nil)
	spawnWith := func(id *components.TeamData) *donburi.Entry {
		return sim.SpawnActor(core.ActorParams{
			Name: "t", X: 0, Y: 0, W: 16, H: 32, MaxHealth: 100,
			Identity: id,
		})
	}

	a := spawnWith(&components.TeamData{TeamID: 1})
	b := spawnWith(&components.TeamData{TeamID: 1})
	ffOn := spawnWith(&components.TeamData{TeamID: 1, AllowFriendlyFire: true})
	enemy := spawnWith(&components.TeamData{TeamID: 2})
	nobody := spawnWith(nil)

	assert.False(t, systems.CanDamage(a, b), "same team, friendly fire off both sides")
	assert.True(t, systems.CanDamage(a, ffOn), "one side allowing friendly fire unblocks")
	assert.True(t, systems.CanDamage(ffOn, b))
	assert.True(t, systems.CanDamage(a, enemy))
	assert.True(t, systems.CanDamage(nobody, b), "no identity always damages")
	assert.True(t, systems.CanDamage(a, nobody))
}

func TestRouteContactDealsDamage(t *testing.T) {
	sim := newSim(t, 60, nil)
	attacker := spawnDummy(sim, "attacker", 100)
	defender := spawnDummy(sim, "defender", 100)

	systems.RouteContact(sim.World(), ev.ContactEvent{
		Attacker:   attacker,
		Defender:   defender,
		SourceType: cfg.HitboxHit,
		TargetType: cfg.HitboxHurt,
		Damage:     12,
		Type:       cfg.DamagePhysical,
	}, nil)

	assert.InDelta(t, 88, components.Health.Get(defender).Current, 1e-9)
}

func TestRouteContactIgnoresNonAttackBoxes(t *testing.T) {
	sim := newSim(t, 60, nil)
	attacker := spawnDummy(sim, "attacker", 100)
	defender := spawnDummy(sim, "defender", 100)

	for _, src := range []cfg.HitboxType{cfg.HitboxHurt, cfg.HitboxShield} {
		systems.RouteContact(sim.World(), ev.ContactEvent{
			Attacker:   attacker,
			Defender:   defender,
			SourceType: src,
			Damage:     12,
		}, nil)
	}

	assert.InDelta(t, 100, components.Health.Get(defender).Current, 1e-9)
}

func TestRouteContactOncePerTarget(t *testing.T) {
	sim := newSim(t, 60, nil)
	attacker := spawnDummy(sim, "attacker", 100)
	defender := spawnDummy(sim, "defender", 100)

	proxy := &components.HitboxProxy{
		Owner: attacker,
		Frame: cfg.HitboxFrame{Type: cfg.HitboxHit, Damage: 5, OncePerTarget: true},
	}
	contact := ev.ContactEvent{
		Attacker:   attacker,
		Defender:   defender,
		SourceType: cfg.HitboxHit,
		Damage:     5,
	}

	systems.RouteContact(sim.World(), contact, proxy)
	systems.RouteContact(sim.World(), contact, proxy)
	systems.RouteContact(sim.World(), contact, proxy)

	assert.InDelta(t, 95, components.Health.Get(defender).Current, 1e-9)
	assert.True(t, proxy.HitTargets[defender.Entity()])
}

func TestRouteContactBlockedByFriendlyFire(t *testing.T) {
	sim := newSim(t, 60, nil)
	team := &components.TeamData{TeamID: 3}
	attacker := sim.SpawnActor(core.ActorParams{
		Name: "a", W: 16, H: 32, MaxHealth: 100, Identity: team,
	})
	defender := sim.SpawnActor(core.ActorParams{
		Name: "b", W: 16, H: 32, MaxHealth: 100, Identity: team,
	})

	systems.RouteContact(sim.World(), ev.ContactEvent{
		Attacker:   attacker,
		Defender:   defender,
		SourceType: cfg.HitboxHit,
		Damage:     12,
	}, nil)

	assert.InDelta(t, 100, components.Health.Get(defender).Current, 1e-9)
}

func TestRouteContactSourceTag(t *testing.T) {
	sim := newSim(t, 60, nil)
	attacker := sim.SpawnActor(core.ActorParams{
		Name: "a", W: 16, H: 32, MaxHealth: 100,
		Identity: &components.TeamData{TeamID: 1, SourceTag: "ash"},
	})
	defender := spawnDummy(sim, "defender", 100)

	var tags []string
	ev.DamageTaken.Subscribe(sim.World(), func(w donburi.World, e ev.DamageTakenEvent) {
		tags = append(tags, e.Tag)
	})

	systems.RouteContact(sim.World(), ev.ContactEvent{
		Attacker:   attacker,
		Defender:   defender,
		SourceType: cfg.HitboxHit,
		Damage:     5,
		FX:         "punch_impact",
	}, nil)
	flush(sim.World())

	// The team's tag wins over the hitbox FX tag.
	assert.Equal(t, []string{"ash"}, tags)
}

func TestRouteContactKnockbackPushesAwayFromAttacker(t *testing.T) {
	sim := newSim(t, 60, nil)
	attacker := sim.SpawnActor(core.ActorParams{Name: "a", X: 200, Y: 100, W: 16, H: 32, MaxHealth: 100})
	defender := sim.SpawnActor(core.ActorParams{Name: "b", X: 100, Y: 100, W: 16, H: 32, MaxHealth: 100})

	systems.RouteContact(sim.World(), ev.ContactEvent{
		Attacker:   attacker,
		Defender:   defender,
		SourceType: cfg.HitboxHit,
		Damage:     1,
		Knockback:  vector.Vector{4, -2},
	}, nil)

	phys := components.Physics.Get(defender)
	assert.InDelta(t, -4, phys.SpeedX, 1e-9, "defender left of attacker is pushed left")
	assert.InDelta(t, -2, phys.SpeedY, 1e-9)
}

func TestRouteContactHitstun(t *testing.T) {
	sim := newSim(t, 60, nil)
	attacker := spawnDummy(sim, "attacker", 100)
	defender := spawnDummy(sim, "defender", 100)

	systems.RouteContact(sim.World(), ev.ContactEvent{
		Attacker:   attacker,
		Defender:   defender,
		SourceType: cfg.HitboxHit,
		Damage:     1,
		Hitstun:    0.25,
	}, nil)

	state := components.State.Get(defender)
	assert.Equal(t, components.StateStunned, state.Current)
	assert.InDelta(t, 0.25, state.Timer, 1e-9)
}

func TestRouteContactHitstunFallsBackToConfig(t *testing.T) {
	sim := newSim(t, 60, func(o *core.Options) {
		o.Config.DefaultHitstun = 0.4
	})
	attacker := spawnDummy(sim, "attacker", 100)
	defender := spawnDummy(sim, "defender", 100)

	systems.RouteContact(sim.World(), ev.ContactEvent{
		Attacker:   attacker,
		Defender:   defender,
		SourceType: cfg.HitboxHit,
		Damage:     1,
	}, nil)

	state := components.State.Get(defender)
	assert.Equal(t, components.StateStunned, state.Current)
	assert.InDelta(t, 0.4, state.Timer, 1e-9)
}

func TestRouteContactKnockbackUpwardPop(t *testing.T) {
	sim := newSim(t, 60, func(o *core.Options) {
		o.Config.KnockbackUpwardForce = -6
	})
	attacker := sim.SpawnActor(core.ActorParams{Name: "a", X: 100, Y: 100, W: 16, H: 32, MaxHealth: 100})
	defender := sim.SpawnActor(core.ActorParams{Name: "b", X: 200, Y: 100, W: 16, H: 32, MaxHealth: 100})

	systems.RouteContact(sim.World(), ev.ContactEvent{
		Attacker:   attacker,
		Defender:   defender,
		SourceType: cfg.HitboxHit,
		Damage:     1,
		Knockback:  vector.Vector{4, 0},
	}, nil)

	phys := components.Physics.Get(defender)
	assert.InDelta(t, 4, phys.SpeedX, 1e-9)
	assert.InDelta(t, -6, phys.SpeedY, 1e-9, "flat launches get the configured upward pop")
}

func TestRouteContactGrantsRecoveryWindow(t *testing.T) {
	sim := newSim(t, 60, func(o *core.Options) {
		o.Config.InvulnDuration = 0.5
	})
	attacker := spawnDummy(sim, "attacker", 100)
	defender := spawnDummy(sim, "defender", 100)
	hp := components.Health.Get(defender)

	hit := ev.ContactEvent{
		Attacker:   attacker,
		Defender:   defender,
		SourceType: cfg.HitboxHit,
		Damage:     5,
	}
	systems.RouteContact(sim.World(), hit, nil)

	assert.InDelta(t, 95, hp.Current, 1e-9)
	assert.True(t, hp.Invulnerable)
	assert.InDelta(t, 0.5, hp.InvulnTimeRemaining, 1e-9)

	// A second hit inside the window is absorbed.
	systems.RouteContact(sim.World(), hit, nil)
	assert.InDelta(t, 95, hp.Current, 1e-9)
}

func TestRouteContactDeadDefenderAbsorbsSilently(t *testing.T) {
	sim := newSim(t, 60, nil)
	attacker := spawnDummy(sim, "attacker", 100)
	defender := spawnDummy(sim, "defender", 100)
	systems.ForceDead(defender)

	routed := 0
	ev.DamageRouted.Subscribe(sim.World(), func(w donburi.World, e ev.DamageRoutedEvent) { routed++ })

	systems.RouteContact(sim.World(), ev.ContactEvent{
		Attacker:   attacker,
		Defender:   defender,
		SourceType: cfg.HitboxHit,
		Damage:     12,
		Knockback:  vector.Vector{4, 0},
	}, nil)
	flush(sim.World())

	assert.Zero(t, routed)
	assert.Zero(t, components.Physics.Get(defender).SpeedX, "no knockback on a dead actor")
}
