package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	ev "github.com/automoto/brawlcore/events"
	"github.com/yohamta/donburi"
)

// IsFriendly reports whether two actors share a non-zero team id or a
// non-empty faction. Actors without identity are never friendly.
func IsFriendly(a, b *donburi.Entry) bool {
	ta := teamOf(a)
	tb := teamOf(b)
	if ta == nil || tb == nil {
		return false
	}
	if ta.TeamID != 0 && ta.TeamID == tb.TeamID {
		return true
	}
	if ta.Faction != "" && ta.Faction == tb.Faction {
		return true
	}
	return false
}

// CanDamage gates damage behind friendly-fire rules: blocked only when the
// two actors are friendly and neither side allows friendly fire. Missing
// identity on either side always allows damage.
func CanDamage(attacker, target *donburi.Entry) bool {
	ta := teamOf(attacker)
	tb := teamOf(target)
	if ta == nil || tb == nil {
		return true
	}
	if IsFriendly(attacker, target) && !ta.AllowFriendlyFire && !tb.AllowFriendlyFire {
		return false
	}
	return true
}

func teamOf(e *donburi.Entry) *components.TeamData {
	if e == nil || !e.Valid() || !e.HasComponent(components.Team) {
		return nil
	}
	return components.Team.Get(e)
}

func combatConfigOf(w donburi.World) *config.CombatConfig {
	if entry, ok := components.Rules.First(w); ok {
		if c := components.Rules.Get(entry).Config; c != nil {
			return c
		}
	}
	return &config.Combat
}

// RouteContact forwards a contact's damage to the defender's health
// pipeline after team filtering. Only hit and grab boxes deal damage;
// hurt/hurt and shield contacts are informational. The proxy's HitTargets
// ledger enforces once-per-swing for descriptors flagged OncePerTarget.
func RouteContact(w donburi.World, c ev.ContactEvent, p *components.HitboxProxy) {
	if c.SourceType != config.HitboxHit && c.SourceType != config.HitboxGrab {
		return
	}
	defender := c.Defender
	if defender == nil || !defender.Valid() {
		return
	}

	if p != nil && p.Frame.OncePerTarget {
		if p.HitTargets[defender.Entity()] {
			return
		}
		if p.HitTargets == nil {
			p.HitTargets = make(map[donburi.Entity]bool)
		}
		p.HitTargets[defender.Entity()] = true
	}

	if !CanDamage(c.Attacker, defender) {
		return
	}

	info := components.DamageInfo{
		Amount:    c.Damage,
		Type:      c.Type,
		Source:    c.Attacker,
		SourceTag: c.FX,
	}
	if team := teamOf(c.Attacker); team != nil && team.SourceTag != "" {
		info.SourceTag = team.SourceTag
	}

	// Invulnerable and dead targets silently absorb the whole hit,
	// knockback included.
	if defender.HasComponent(components.Health) {
		hp := components.Health.Get(defender)
		if hp.Dead || hp.Invulnerable {
			return
		}
	}

	tuning := combatConfigOf(w)
	TakeDamage(w, defender, info)
	applyKnockback(defender, c, tuning)
	applyHitstun(defender, c, tuning)
	if tuning.InvulnDuration > 0 {
		SetInvulnerable(defender, tuning.InvulnDuration)
	}

	ev.DamageRouted.Publish(w, ev.DamageRoutedEvent{Target: defender, Info: info})
}

// applyKnockback writes the hit's impulse into the defender's physics
// component, pushing away from the attacker. A launching hit with no
// vertical component gets the configured upward pop.
func applyKnockback(defender *donburi.Entry, c ev.ContactEvent, tuning *config.CombatConfig) {
	if !defender.HasComponent(components.Physics) {
		return
	}
	kx, ky := c.Knockback[0], c.Knockback[1]
	if kx == 0 && ky == 0 {
		return
	}
	if ky == 0 {
		ky = tuning.KnockbackUpwardForce
	}
	if c.Attacker != nil && c.Attacker.Valid() &&
		c.Attacker.HasComponent(components.Object) && defender.HasComponent(components.Object) {
		if components.Object.Get(defender).CenterX() < components.Object.Get(c.Attacker).CenterX() {
			kx = -kx
		}
	}
	phys := components.Physics.Get(defender)
	phys.SpeedX = kx
	phys.SpeedY = ky
}

// applyHitstun stuns the defender for the hit's duration, falling back to
// the configured default when the hitbox frame carries none.
func applyHitstun(defender *donburi.Entry, c ev.ContactEvent, tuning *config.CombatConfig) {
	if !defender.HasComponent(components.State) {
		return
	}
	hitstun := c.Hitstun
	if hitstun <= 0 {
		hitstun = tuning.DefaultHitstun
	}
	if hitstun <= 0 {
		return
	}
	state := components.State.Get(defender)
	if state.Current == components.StateDowned || state.Current == components.StateDead {
		return
	}
	state.Enter(components.StateStunned, hitstun)
}
