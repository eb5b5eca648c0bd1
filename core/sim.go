// Package core builds and drives a combat simulation. Each Simulation owns
// its own world, collision space, and rule set, so multiple simulations
// (and parallel tests) never share state.
package core

import (
	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/systems"
	"github.com/automoto/brawlcore/tags"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"
)

// Options configures a new simulation. Zero values fall back to the stock
// collision matrix, default tuning, and a no-op logger.
type Options struct {
	Matrix *cfg.CollisionMatrix
	Frames cfg.FrameSource
	Config *cfg.CombatConfig
	Log    *zap.Logger
}

// Simulation is one self-contained combat world advanced by Step.
type Simulation struct {
	ECS *ecs.ECS

	rules *components.RulesData
	space *components.SpaceData
	log   *zap.Logger
}

// NewSimulation wires the world, the shared collision space, and the
// combat systems in their fixed tick order.
func NewSimulation(opts Options) *Simulation {
	if opts.Config == nil {
		opts.Config = cfg.Combat.Clone()
	}
	if opts.Matrix == nil {
		opts.Matrix = cfg.DefaultCollisionMatrix()
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	tickRate := opts.Config.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	e := ecs.NewECS(donburi.NewWorld())

	ctx := archetypes.World.Spawn(e)
	components.Space.SetValue(ctx, components.SpaceData{
		Space: resolv.NewSpace(opts.Config.SpaceWidth, opts.Config.SpaceHeight, opts.Config.CellSize, opts.Config.CellSize),
	})
	components.Rules.SetValue(ctx, components.RulesData{
		Matrix: opts.Matrix,
		Frames: opts.Frames,
		Config: opts.Config,
		Log:    opts.Log,
		DT:     1.0 / float64(tickRate),
	})

	// Fixed pipeline order: a registry always syncs before its proxies can
	// generate contacts, and contacts resolve before timers and status
	// ticks run. Events flush last so subscribers see a settled tick.
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdateHitboxes)
	e.AddSystem(systems.UpdateContacts)
	e.AddSystem(systems.UpdateStates)
	e.AddSystem(systems.UpdateHealth)
	e.AddSystem(systems.UpdateStatusEffects)
	e.AddSystem(dispatchEvents)

	return &Simulation{
		ECS:   e,
		rules: components.Rules.Get(ctx),
		space: components.Space.Get(ctx),
		log:   opts.Log,
	}
}

func dispatchEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

// Step advances the simulation by exactly one tick.
func (s *Simulation) Step() {
	s.rules.Tick++
	s.ECS.Update()
}

// World exposes the underlying donburi world for queries and event
// subscriptions.
func (s *Simulation) World() donburi.World {
	return s.ECS.World
}

// Tick returns the current tick number.
func (s *Simulation) Tick() uint64 {
	return s.rules.Tick
}

// DT returns the fixed seconds-per-tick.
func (s *Simulation) DT() float64 {
	return s.rules.DT
}

// SetViewer moves the culling viewpoint.
func (s *Simulation) SetViewer(x, y float64) {
	s.rules.ViewerX = x
	s.rules.ViewerY = y
}

// ActorParams describes a combat-capable actor to spawn.
type ActorParams struct {
	Name      string
	Character string  // key into the frame library
	X, Y      float64 // world position (top-left)
	W, H      float64 // body size

	MaxHealth    float64
	DownedPolicy bool
	Regen        bool

	MaxShield float64 // > 0 adds a shield component

	Identity *components.TeamData // nil = no team identity

	ClipLength float64 // seconds per animation clip, default 1
}

// SpawnActor creates an actor with health, animation, a hitbox arena, and
// optionally shield and team identity.
func (s *Simulation) SpawnActor(p ActorParams) *donburi.Entry {
	extra := []donburi.IComponentType{}
	if p.MaxShield > 0 {
		extra = append(extra, components.Shield)
	}
	if p.Identity != nil {
		extra = append(extra, components.Team)
	}

	entry := archetypes.Actor.Spawn(s.ECS, extra...)

	components.Actor.SetValue(entry, components.ActorData{
		ID:   uuid.NewString(),
		Name: p.Name,
	})

	obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tags.ResolvActor)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	clipLength := p.ClipLength
	if clipLength <= 0 {
		clipLength = 1
	}
	components.Animation.SetValue(entry, components.AnimationData{
		Character: p.Character,
		Length:    clipLength,
		Loop:      true,
	})

	maxHealth := p.MaxHealth
	if maxHealth < 1 {
		maxHealth = 1
	}
	components.Health.SetValue(entry, components.HealthData{
		Current:        maxHealth,
		Max:            maxHealth,
		DownedPolicy:   p.DownedPolicy,
		DownedDuration: s.rules.Config.DownedDuration,
		RegenEnabled:   p.Regen,
		RegenRate:      s.rules.Config.RegenRate,
		RegenDelay:     s.rules.Config.RegenDelay,
	})

	if p.MaxShield > 0 {
		components.Shield.SetValue(entry, components.ShieldData{
			Current: p.MaxShield,
			Max:     p.MaxShield,
		})
	}
	if p.Identity != nil {
		components.Team.SetValue(entry, *p.Identity)
	}

	s.log.Debug("actor spawned",
		zap.String("name", p.Name),
		zap.String("character", p.Character),
		zap.Float64("maxHealth", maxHealth))
	return entry
}

// DespawnActor removes an actor and its hitbox proxies from the world.
func (s *Simulation) DespawnActor(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.HitboxSet) {
		set := components.HitboxSet.Get(entry)
		for _, p := range set.Proxies {
			if p.Active {
				s.space.Remove(p.Object)
				p.Active = false
			}
		}
	}
	name := components.Actor.GetValue(entry).Name
	s.ECS.World.Remove(entry.Entity())
	s.log.Debug("actor despawned", zap.String("name", name))
}
