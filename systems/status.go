package systems

import (
	"github.com/automoto/brawlcore/components"
	ev "github.com/automoto/brawlcore/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyStatusEffect adds a timed effect to the actor's ledger. Re-applying
// an active effect of the same name and type combines per its stacking
// mode: Refresh resets remaining time, Extend adds to it, StackCount bumps
// the stack counter up to MaxStacks and resets remaining time.
func ApplyStatusEffect(w donburi.World, e *donburi.Entry, effect components.StatusEffect) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Status) {
		return
	}
	st := components.Status.Get(e)

	if existing := st.Find(effect.Name, effect.Type); existing != nil {
		switch existing.Stacking {
		case components.StackRefresh:
			existing.Remaining = effect.Duration
		case components.StackExtend:
			existing.Remaining += effect.Duration
		case components.StackCount:
			if existing.Stacks < existing.MaxStacks {
				existing.Stacks++
			}
			existing.Remaining = effect.Duration
		}
		ev.EffectApplied.Publish(w, ev.EffectAppliedEvent{Entry: e, Effect: *existing})
		return
	}

	effect.Remaining = effect.Duration
	if effect.Stacks < 1 {
		effect.Stacks = 1
	}
	if effect.MaxStacks < 1 {
		effect.MaxStacks = 1
	}
	st.Active = append(st.Active, effect)
	ev.EffectApplied.Publish(w, ev.EffectAppliedEvent{Entry: e, Effect: effect})
}

// RestoreStatusEffects replaces the active set wholesale without firing
// apply or expire events. Snapshot restore only.
func RestoreStatusEffects(e *donburi.Entry, effects []components.StatusEffect) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Status) {
		return
	}
	st := components.Status.Get(e)
	st.Active = append(st.Active[:0:0], effects...)
}

// UpdateStatusEffects ticks every active effect: damage or healing is
// applied each time the accumulated time crosses a tick interval, scaled by
// stack count, and effects whose remaining time reaches zero expire.
func UpdateStatusEffects(e *ecs.ECS) {
	rules := rulesOf(e)
	if rules == nil {
		return
	}
	dt := rules.DT

	components.Status.Each(e.World, func(entry *donburi.Entry) {
		st := components.Status.Get(entry)
		if len(st.Active) == 0 {
			return
		}

		kept := st.Active[:0]
		for i := range st.Active {
			eff := &st.Active[i]

			if eff.TickInterval > 0 && eff.AmountPerTick != 0 {
				eff.TickAccum += dt
				for eff.TickAccum >= eff.TickInterval {
					eff.TickAccum -= eff.TickInterval
					amount := eff.AmountPerTick * float64(eff.Stacks)
					if eff.Debuff {
						TakeDamage(e.World, entry, components.DamageInfo{
							Amount:    amount,
							Type:      eff.Type.DamageType(),
							SourceTag: eff.Name,
						})
					} else {
						Heal(e.World, entry, amount)
					}
				}
			}

			eff.Remaining -= dt
			if eff.Remaining <= 0 {
				ev.EffectExpired.Publish(e.World, ev.EffectExpiredEvent{Entry: entry, Effect: *eff})
				continue
			}
			kept = append(kept, *eff)
		}
		st.Active = kept
	})
}
