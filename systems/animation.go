package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances clip playback for every animated actor. Runs
// before hitbox sync so registries always see this tick's frame.
func UpdateAnimations(e *ecs.ECS) {
	rules := rulesOf(e)
	if rules == nil {
		return
	}
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		components.Animation.Get(entry).Advance(rules.DT)
	})
}
