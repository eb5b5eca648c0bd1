package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxProxy is one reusable slot in an actor's hitbox arena. Proxies are
// created lazily, deactivated (never destroyed) when a frame needs fewer
// boxes, and overwritten wholesale from the current frame's descriptor so
// stale metadata cannot leak across an inactive frame boundary.
type HitboxProxy struct {
	Owner  *donburi.Entry
	Object *resolv.Object
	Type   config.HitboxType
	Frame  config.HitboxFrame
	Active bool

	// HitTargets tracks targets already hit during the current swing for
	// frames flagged OncePerTarget. Cleared whenever the proxy deactivates
	// or its frame metadata changes.
	HitTargets map[donburi.Entity]bool
}

// HitboxSetData is the per-actor proxy arena, resized each tick to match
// the current animation frame's descriptor count.
type HitboxSetData struct {
	Proxies []*HitboxProxy
}

// ActiveCount returns the number of currently active proxies.
func (s *HitboxSetData) ActiveCount() int {
	n := 0
	for _, p := range s.Proxies {
		if p.Active {
			n++
		}
	}
	return n
}

var HitboxSet = donburi.NewComponentType[HitboxSetData]()
