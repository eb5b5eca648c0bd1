package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// HealthData holds an actor's health state machine and mitigation settings.
// Mutate only through the systems package (TakeDamage, Heal, Revive, ...) so
// state transitions and events stay consistent.
//
// Invariants: 0 <= Current <= Max, Max >= 1. Dead implies Current == 0.
// Downed implies Current == 0 and !Dead.
type HealthData struct {
	Current float64
	Max     float64

	Downed bool
	Dead   bool

	// DownedPolicy makes lethal damage drop the actor into the downed
	// state instead of killing outright.
	DownedPolicy        bool
	DownedDuration      float64 // seconds granted when entering downed
	DownedTimeRemaining float64

	Invulnerable        bool
	InvulnTimeRemaining float64 // 0 while invulnerable = indefinite

	RegenEnabled    bool
	RegenRate       float64 // health per second
	RegenDelay      float64 // seconds without damage before regen resumes
	TimeSinceDamage float64

	// Mitigation, applied in order: flat, percent, resistance.
	FlatReduction    float64
	PercentReduction float64 // [0, 1)
	Resistances      []config.Resistance
}

// Alive reports whether the actor is neither downed nor dead.
func (h *HealthData) Alive() bool {
	return !h.Downed && !h.Dead
}

// ResistanceFor returns the multiplier registered for the damage type.
func (h *HealthData) ResistanceFor(t config.DamageType) (float64, bool) {
	for _, r := range h.Resistances {
		if r.Type == t {
			return r.Multiplier, true
		}
	}
	return 1, false
}

// SetResistance registers or replaces the resistance entry for a damage
// type, keeping one entry per type.
func (h *HealthData) SetResistance(t config.DamageType, multiplier float64) {
	for i := range h.Resistances {
		if h.Resistances[i].Type == t {
			h.Resistances[i].Multiplier = multiplier
			return
		}
	}
	h.Resistances = append(h.Resistances, config.Resistance{Type: t, Multiplier: multiplier})
}

var Health = donburi.NewComponentType[HealthData]()
