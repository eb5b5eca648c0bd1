// Package events defines the outbound combat events. Subscribers are
// invoked in subscription order when the simulation flushes events at the
// end of each tick; handlers must not mutate the payloads.
package events

import (
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ContactEvent is emitted for every qualifying overlap between two actors'
// hitboxes, once per ordered pair per tick while the overlap persists.
type ContactEvent struct {
	Attacker   *donburi.Entry
	Defender   *donburi.Entry
	SourceType config.HitboxType
	TargetType config.HitboxType

	Point     vector.Vector // world-space contact point
	Damage    float64
	Type      config.DamageType
	Knockback vector.Vector
	Hitstun   float64
	FX        string
	Origin    vector.Vector // projectile origin hint
}

// DamageRoutedEvent carries the last DamageInfo the router forwarded.
type DamageRoutedEvent struct {
	Target *donburi.Entry
	Info   components.DamageInfo
}

type HealthChangedEvent struct {
	Entry   *donburi.Entry
	Current float64
	Max     float64
}

type DamageTakenEvent struct {
	Entry  *donburi.Entry
	Amount float64 // post-mitigation amount applied to health, after shield absorption
	Type   config.DamageType
	Source *donburi.Entry
	Tag    string
}

type HealedEvent struct {
	Entry  *donburi.Entry
	Amount float64
}

type DeathEvent struct {
	Entry *donburi.Entry
}

type DownedEvent struct {
	Entry         *donburi.Entry
	TimeRemaining float64
}

type RevivedEvent struct {
	Entry  *donburi.Entry
	Health float64
}

type ShieldChangedEvent struct {
	Entry   *donburi.Entry
	Current float64
	Max     float64
}

type ShieldAbsorbedEvent struct {
	Entry  *donburi.Entry
	Amount float64
}

type ShieldDepletedEvent struct {
	Entry *donburi.Entry
}

type ShieldRestoredEvent struct {
	Entry  *donburi.Entry
	Amount float64
}

type EffectAppliedEvent struct {
	Entry  *donburi.Entry
	Effect components.StatusEffect
}

type EffectExpiredEvent struct {
	Entry  *donburi.Entry
	Effect components.StatusEffect
}

var (
	Contact      = events.NewEventType[ContactEvent]()
	DamageRouted = events.NewEventType[DamageRoutedEvent]()

	HealthChanged = events.NewEventType[HealthChangedEvent]()
	DamageTaken   = events.NewEventType[DamageTakenEvent]()
	Healed        = events.NewEventType[HealedEvent]()
	Death         = events.NewEventType[DeathEvent]()
	Downed        = events.NewEventType[DownedEvent]()
	Revived       = events.NewEventType[RevivedEvent]()

	ShieldChanged  = events.NewEventType[ShieldChangedEvent]()
	ShieldAbsorbed = events.NewEventType[ShieldAbsorbedEvent]()
	ShieldDepleted = events.NewEventType[ShieldDepletedEvent]()
	ShieldRestored = events.NewEventType[ShieldRestoredEvent]()

	EffectApplied = events.NewEventType[EffectAppliedEvent]()
	EffectExpired = events.NewEventType[EffectExpiredEvent]()
)
