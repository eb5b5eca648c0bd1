package systems

import (
	"math"

	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	ev "github.com/automoto/brawlcore/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TakeDamage runs the mitigation pipeline and the resulting state
// transition for one hit. Order is fixed: invulnerability/death gate, flat
// reduction, percent reduction, resistance multiplier, shield absorption,
// health subtraction, events, transition. Amounts are float64 end to end;
// nothing rounds.
//
// Invulnerable or dead targets absorb the call with no state change and no
// events, which lets observers distinguish "no damage was meaningful" from
// "zero damage was dealt".
func TakeDamage(w donburi.World, e *donburi.Entry, info components.DamageInfo) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	hp := components.Health.Get(e)
	if hp.Dead || hp.Invulnerable {
		return
	}

	amount := math.Max(0, info.Amount)
	if info.Type != config.DamageTrue && !info.IgnoreMitigation {
		amount = math.Max(0, amount-hp.FlatReduction)
		amount *= 1 - hp.PercentReduction
		if mult, ok := hp.ResistanceFor(info.Type); ok {
			amount *= mult
		}
	}

	if amount > 0 && e.HasComponent(components.Shield) && !info.BypassShield {
		sh := components.Shield.Get(e)
		if sh.Current > 0 {
			absorbed := math.Min(amount, sh.Current)
			sh.Current -= absorbed
			amount -= absorbed
			ev.ShieldAbsorbed.Publish(w, ev.ShieldAbsorbedEvent{Entry: e, Amount: absorbed})
			ev.ShieldChanged.Publish(w, ev.ShieldChangedEvent{Entry: e, Current: sh.Current, Max: sh.Max})
			if sh.Current <= 0 {
				sh.Current = 0
				ev.ShieldDepleted.Publish(w, ev.ShieldDepletedEvent{Entry: e})
			}
		}
	}

	hp.Current = math.Max(0, hp.Current-amount)
	hp.TimeSinceDamage = 0

	ev.DamageTaken.Publish(w, ev.DamageTakenEvent{
		Entry:  e,
		Amount: amount,
		Type:   info.Type,
		Source: info.Source,
		Tag:    info.SourceTag,
	})
	ev.HealthChanged.Publish(w, ev.HealthChangedEvent{Entry: e, Current: hp.Current, Max: hp.Max})

	if hp.Current <= 0 && !hp.Downed {
		if hp.DownedPolicy {
			enterDowned(w, e, hp)
		} else {
			die(w, e, hp)
		}
	}
}

// Heal restores health up to Max. No-op while downed or dead; Revive is the
// only exit from the downed state.
func Heal(w donburi.World, e *donburi.Entry, amount float64) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	hp := components.Health.Get(e)
	if hp.Dead || hp.Downed || amount <= 0 {
		return
	}
	gained := math.Min(amount, hp.Max-hp.Current)
	if gained <= 0 {
		return
	}
	hp.Current += gained
	ev.Healed.Publish(w, ev.HealedEvent{Entry: e, Amount: gained})
	ev.HealthChanged.Publish(w, ev.HealthChangedEvent{Entry: e, Current: hp.Current, Max: hp.Max})
}

// Revive brings a downed actor back with the given health, clamped to
// [1, Max], and clears the downed countdown.
func Revive(w donburi.World, e *donburi.Entry, amount float64) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	hp := components.Health.Get(e)
	if !hp.Downed || hp.Dead {
		return
	}
	hp.Downed = false
	hp.DownedTimeRemaining = 0
	hp.Current = math.Min(math.Max(amount, 1), hp.Max)
	if e.HasComponent(components.State) {
		components.State.Get(e).Enter(components.StateIdle, 0)
	}
	ev.Revived.Publish(w, ev.RevivedEvent{Entry: e, Health: hp.Current})
	ev.HealthChanged.Publish(w, ev.HealthChangedEvent{Entry: e, Current: hp.Current, Max: hp.Max})
}

// ForceDead is the administrative override used by snapshot restore; it
// marks the actor dead without firing gameplay events.
func ForceDead(e *donburi.Entry) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	hp := components.Health.Get(e)
	hp.Dead = true
	hp.Downed = false
	hp.DownedTimeRemaining = 0
	hp.Current = 0
	if e.HasComponent(components.State) {
		components.State.Get(e).Enter(components.StateDead, 0)
	}
}

// ForceDowned is the administrative override used by snapshot restore; it
// marks the actor downed with the given countdown, without events.
func ForceDowned(e *donburi.Entry, remaining float64) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	hp := components.Health.Get(e)
	hp.Dead = false
	hp.Downed = true
	hp.Current = 0
	hp.DownedTimeRemaining = math.Max(0, remaining)
	if e.HasComponent(components.State) {
		components.State.Get(e).Enter(components.StateDowned, 0)
	}
}

// SetInvulnerable starts a post-hit grace period. seconds <= 0 makes the
// actor invulnerable until ClearInvulnerable.
func SetInvulnerable(e *donburi.Entry, seconds float64) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	hp := components.Health.Get(e)
	hp.Invulnerable = true
	hp.InvulnTimeRemaining = math.Max(0, seconds)
}

// ClearInvulnerable ends invulnerability immediately.
func ClearInvulnerable(e *donburi.Entry) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	hp := components.Health.Get(e)
	hp.Invulnerable = false
	hp.InvulnTimeRemaining = 0
}

// UpdateHealth ticks invulnerability and downed countdowns and applies
// regeneration. Runs once per simulation tick.
func UpdateHealth(e *ecs.ECS) {
	rules := rulesOf(e)
	if rules == nil {
		return
	}
	dt := rules.DT

	components.Health.Each(e.World, func(entry *donburi.Entry) {
		hp := components.Health.Get(entry)

		if hp.Invulnerable && hp.InvulnTimeRemaining > 0 {
			hp.InvulnTimeRemaining -= dt
			if hp.InvulnTimeRemaining <= 0 {
				hp.Invulnerable = false
				hp.InvulnTimeRemaining = 0
			}
		}

		if hp.Downed {
			hp.DownedTimeRemaining -= dt
			if hp.DownedTimeRemaining <= 0 {
				hp.DownedTimeRemaining = 0
				die(e.World, entry, hp)
			}
			return
		}
		if hp.Dead {
			return
		}

		if hp.RegenEnabled && hp.Current < hp.Max {
			hp.TimeSinceDamage += dt
			if hp.TimeSinceDamage >= hp.RegenDelay {
				Heal(e.World, entry, hp.RegenRate*dt)
			}
		}
	})
}

func enterDowned(w donburi.World, e *donburi.Entry, hp *components.HealthData) {
	hp.Downed = true
	hp.Current = 0
	hp.DownedTimeRemaining = hp.DownedDuration
	if e.HasComponent(components.State) {
		components.State.Get(e).Enter(components.StateDowned, 0)
	}
	ev.Downed.Publish(w, ev.DownedEvent{Entry: e, TimeRemaining: hp.DownedTimeRemaining})
}

func die(w donburi.World, e *donburi.Entry, hp *components.HealthData) {
	hp.Dead = true
	hp.Downed = false
	hp.DownedTimeRemaining = 0
	hp.Current = 0
	if e.HasComponent(components.State) {
		components.State.Get(e).Enter(components.StateDead, 0)
	}
	ev.Death.Publish(w, ev.DeathEvent{Entry: e})
}

// RestoreShield refills the shield by amount, clamped to Max, firing
// restoration events. Used by pickups and abilities outside the core.
func RestoreShield(w donburi.World, e *donburi.Entry, amount float64) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Shield) || amount <= 0 {
		return
	}
	sh := components.Shield.Get(e)
	gained := math.Min(amount, sh.Max-sh.Current)
	if gained <= 0 {
		return
	}
	sh.Current += gained
	ev.ShieldRestored.Publish(w, ev.ShieldRestoredEvent{Entry: e, Amount: gained})
	ev.ShieldChanged.Publish(w, ev.ShieldChangedEvent{Entry: e, Current: sh.Current, Max: sh.Max})
}
