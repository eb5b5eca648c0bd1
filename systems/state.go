package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates counts down timed states. Stunned actors return to idle when
// their hitstun expires; downed and dead states are owned by the health
// state machine and never time out here.
func UpdateStates(e *ecs.ECS) {
	rules := rulesOf(e)
	if rules == nil {
		return
	}
	for entry := range components.State.Iter(e.World) {
		state := components.State.Get(entry)
		if state.Timer <= 0 {
			continue
		}
		state.Timer -= rules.DT
		if state.Timer <= 0 {
			state.Timer = 0
			if state.Current == components.StateStunned {
				state.Enter(components.StateIdle, 0)
			}
		}
	}
}
