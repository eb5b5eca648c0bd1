package components

import "github.com/yohamta/donburi"

// PhysicsData carries the velocity the movement layer integrates. The
// combat core only writes knockback impulses into it.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
