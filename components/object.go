package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the actor's spatial body. Hitbox proxies position
// themselves relative to this object each tick.
type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal center of the object.
func (o ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// CenterY returns the vertical center of the object.
func (o ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
