package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// EffectType categorizes a status effect for stacking and damage typing.
type EffectType string

const (
	EffectGeneric      EffectType = "generic"
	EffectBurning      EffectType = "burning"
	EffectFrostbite    EffectType = "frostbite"
	EffectPoisoned     EffectType = "poisoned"
	EffectShocked      EffectType = "shocked"
	EffectRegeneration EffectType = "regeneration"
	EffectHaste        EffectType = "haste"
	EffectSlow         EffectType = "slow"
)

// DamageType maps a damaging effect to the damage type its ticks deal.
func (t EffectType) DamageType() config.DamageType {
	switch t {
	case EffectBurning:
		return config.DamageFire
	case EffectFrostbite:
		return config.DamageIce
	case EffectPoisoned:
		return config.DamagePoison
	case EffectShocked:
		return config.DamageElectric
	default:
		return config.DamageGeneric
	}
}

// StackingMode governs how re-applying an active effect combines with it.
type StackingMode int

const (
	// StackRefresh resets remaining time without adding stacks.
	StackRefresh StackingMode = iota
	// StackExtend adds the new duration to remaining time.
	StackExtend
	// StackCount increments the stack count up to MaxStacks and resets
	// remaining time; per-tick output scales with the stack count.
	StackCount
)

// StatusEffect is one active timed buff or debuff. JSON tags form the
// snapshot contract; keep them stable.
type StatusEffect struct {
	Name            string       `json:"name"`
	Type            EffectType   `json:"type"`
	Duration        float64      `json:"duration"`
	Remaining       float64      `json:"remaining"`
	Debuff          bool         `json:"debuff"`
	AmountPerTick   float64      `json:"amountPerTick"`
	TickInterval    float64      `json:"tickInterval"`
	SpeedMultiplier float64      `json:"speedMultiplier,omitempty"`
	Stacking        StackingMode `json:"stacking"`
	MaxStacks       int          `json:"maxStacks"`
	Stacks          int          `json:"stacks"`
	TickAccum       float64      `json:"tickAccum,omitempty"`
}

// StatusData is the ledger of active effects for one actor.
type StatusData struct {
	Active []StatusEffect
}

// Find returns the active effect matching name and type, or nil.
func (s *StatusData) Find(name string, t EffectType) *StatusEffect {
	for i := range s.Active {
		if s.Active[i].Name == name && s.Active[i].Type == t {
			return &s.Active[i]
		}
	}
	return nil
}

// SpeedMultiplier folds every active movement modifier into one factor.
func (s *StatusData) SpeedMultiplier() float64 {
	m := 1.0
	for i := range s.Active {
		if s.Active[i].SpeedMultiplier > 0 {
			m *= s.Active[i].SpeedMultiplier
		}
	}
	return m
}

var Status = donburi.NewComponentType[StatusData]()
