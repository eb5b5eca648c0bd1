// Package systems implements the combat resolution pipeline: hitbox
// synchronization, contact detection, damage routing, the health state
// machine, status effects, and snapshots. All systems run on the single
// simulation goroutine in the order core.Simulation wires them.
package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/yohamta/donburi/ecs"
)

// rulesOf returns the singleton simulation context, or nil if the world was
// not built through core.NewSimulation.
func rulesOf(e *ecs.ECS) *components.RulesData {
	entry, ok := components.Rules.First(e.World)
	if !ok {
		return nil
	}
	return components.Rules.Get(entry)
}

// spaceOf returns the singleton collision space, or nil.
func spaceOf(e *ecs.ECS) *components.SpaceData {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
