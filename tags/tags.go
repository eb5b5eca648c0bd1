package tags

import "github.com/yohamta/donburi"

var (
	Actor = donburi.NewTag().SetName("Actor")
)

// Resolv tags for collision-space queries
const (
	ResolvHitbox = "hitbox"
	ResolvActor  = "actor"
)
