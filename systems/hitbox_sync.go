package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/shared/gamemath"
	"github.com/automoto/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitboxes synchronizes every actor's hitbox arena with the current
// animation frame's descriptors. Must run after UpdateAnimations and before
// UpdateContacts within the same tick.
func UpdateHitboxes(e *ecs.ECS) {
	rules := rulesOf(e)
	space := spaceOf(e)
	if rules == nil || space == nil {
		return
	}

	interval := 1
	if rules.Config != nil && rules.Config.SyncInterval > 1 {
		interval = rules.Config.SyncInterval
	}
	skipTick := rules.Tick%uint64(interval) != 0

	components.HitboxSet.Each(e.World, func(entry *donburi.Entry) {
		set := components.HitboxSet.Get(entry)

		if culled(rules, entry) {
			deactivateAll(set, space.Space)
			return
		}
		if skipTick {
			return
		}

		SyncHitboxes(entry, set, space.Space, frameDescriptors(rules, entry))
	})
}

// culled reports whether the actor is beyond the configured culling
// distance from the viewer. CullDistance 0 disables culling.
func culled(rules *components.RulesData, entry *donburi.Entry) bool {
	if rules.Config == nil || rules.Config.CullDistance <= 0 {
		return false
	}
	if !entry.HasComponent(components.Object) {
		return false
	}
	obj := components.Object.Get(entry)
	distSq := gamemath.DistanceSq(obj.CenterX(), obj.CenterY(), rules.ViewerX, rules.ViewerY)
	return distSq > rules.Config.CullDistance*rules.Config.CullDistance
}

// frameDescriptors resolves the actor's current hitbox descriptors. Any
// missing piece (no animation, no frame source, unknown clip) resolves to
// zero hitboxes rather than an error.
func frameDescriptors(rules *components.RulesData, entry *donburi.Entry) []config.HitboxFrame {
	if rules.Frames == nil || !entry.HasComponent(components.Animation) {
		return nil
	}
	anim := components.Animation.Get(entry)
	if anim.Character == "" || anim.Clip == "" {
		return nil
	}
	return rules.Frames.FrameDescriptors(anim.Character, anim.Clip, anim.CurrentTime())
}

// SyncHitboxes resizes the proxy arena to match descriptors: slots past the
// descriptor count deactivate, new slots are created lazily, and every
// active slot's type, shape, and attack metadata are overwritten from this
// frame's descriptor.
func SyncHitboxes(owner *donburi.Entry, set *components.HitboxSetData, space *resolv.Space, descriptors []config.HitboxFrame) {
	if !owner.HasComponent(components.Object) {
		deactivateAll(set, space)
		return
	}
	body := components.Object.Get(owner)

	for i := len(descriptors); i < len(set.Proxies); i++ {
		deactivate(set.Proxies[i], space)
	}

	for i, desc := range descriptors {
		if i >= len(set.Proxies) {
			set.Proxies = append(set.Proxies, newProxy(owner))
		}
		p := set.Proxies[i]

		// A new swing invalidates the per-swing hit ledger.
		if p.Frame != desc {
			p.HitTargets = nil
		}
		p.Frame = desc
		p.Type = desc.Type

		obj := p.Object
		obj.X = body.X + desc.OffsetX
		obj.Y = body.Y + desc.OffsetY
		obj.W = desc.Width
		obj.H = desc.Height
		obj.SetShape(resolv.NewRectangle(0, 0, desc.Width, desc.Height))

		if !p.Active {
			space.Add(obj)
			p.Active = true
		}
		obj.Update()
	}
}

func newProxy(owner *donburi.Entry) *components.HitboxProxy {
	p := &components.HitboxProxy{
		Owner:  owner,
		Object: resolv.NewObject(0, 0, 1, 1, tags.ResolvHitbox),
	}
	p.Object.Data = p
	return p
}

func deactivate(p *components.HitboxProxy, space *resolv.Space) {
	if p.Active {
		space.Remove(p.Object)
		p.Active = false
	}
	p.Frame = config.HitboxFrame{}
	p.Type = ""
	p.HitTargets = nil
}

func deactivateAll(set *components.HitboxSetData, space *resolv.Space) {
	for _, p := range set.Proxies {
		deactivate(p, space)
	}
}
