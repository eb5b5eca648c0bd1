package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// DamageInfo is the input to the health pipeline. Source is a reference,
// not ownership; it may be nil for environmental damage.
type DamageInfo struct {
	Amount           float64
	Type             config.DamageType
	BypassShield     bool
	IgnoreMitigation bool
	Source           *donburi.Entry
	SourceTag        string
}
