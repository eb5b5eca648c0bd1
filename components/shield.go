package components

import "github.com/yohamta/donburi"

// ShieldData absorbs damage before it reaches health. Actors without the
// component take damage directly.
//
// Invariant: 0 <= Current <= Max.
type ShieldData struct {
	Current float64
	Max     float64
}

var Shield = donburi.NewComponentType[ShieldData]()
