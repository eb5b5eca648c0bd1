package systems

import (
	"github.com/automoto/brawlcore/components"
	ev "github.com/automoto/brawlcore/events"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/automoto/brawlcore/tags"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts walks every active hitbox proxy, finds overlapping proxies
// owned by other actors, filters them through the collision matrix, and
// emits one Contact per qualifying ordered pair. Contacts re-raise on every
// tick the overlap persists; once-per-swing semantics belong to the hitbox
// descriptor (OncePerTarget), not to this detector.
func UpdateContacts(e *ecs.ECS) {
	rules := rulesOf(e)
	space := spaceOf(e)
	if rules == nil || space == nil {
		return
	}

	components.HitboxSet.Each(e.World, func(entry *donburi.Entry) {
		set := components.HitboxSet.Get(entry)
		for _, p := range set.Proxies {
			if !p.Active {
				continue
			}

			check := p.Object.Check(0, 0, tags.ResolvHitbox)
			if check == nil {
				continue
			}
			for _, obj := range check.Objects {
				q, ok := obj.Data.(*components.HitboxProxy)
				if !ok || !q.Active {
					continue
				}
				// Self-overlap is ignored regardless of policy.
				if q.Owner == nil || q.Owner == p.Owner {
					continue
				}
				// Check is cell-based; confirm the actual overlap.
				if !gamemath.Overlaps(p.Object, q.Object) {
					continue
				}
				if !rules.Matrix.Allows(p.Type, q.Type) {
					continue
				}

				center := gamemath.Center(p.Object)
				contact := ev.ContactEvent{
					Attacker:   p.Owner,
					Defender:   q.Owner,
					SourceType: p.Type,
					TargetType: q.Type,
					Point:      gamemath.ClosestPointOnObject(center[0], center[1], q.Object),
					Damage:     p.Frame.Damage,
					Type:       p.Frame.DamageType,
					Knockback:  vector.Vector{p.Frame.KnockbackX, p.Frame.KnockbackY},
					Hitstun:    p.Frame.Hitstun,
					FX:         p.Frame.FX,
					Origin:     vector.Vector{p.Frame.OriginX, p.Frame.OriginY},
				}
				ev.Contact.Publish(e.World, contact)
				RouteContact(e.World, contact, p)
			}
		}
	})
}
