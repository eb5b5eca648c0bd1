package components

import "github.com/yohamta/donburi"

// ActorData gives an actor a stable identifier, used as the snapshot store
// key and in diagnostic logs.
type ActorData struct {
	ID   string
	Name string
}

var Actor = donburi.NewComponentType[ActorData]()
