package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer all combat entities live on.
var Default = ecs.LayerID(0)
