package components

import "github.com/yohamta/donburi"

// StateID identifies a combat-relevant actor state.
type StateID int

const (
	StateIdle StateID = iota
	StateAttacking
	StateStunned
	StateDowned
	StateDead
)

// StateData tracks the actor's combat state and a countdown used by timed
// states (hitstun).
type StateData struct {
	Current  StateID
	Previous StateID
	Timer    float64 // seconds remaining in the current state, 0 = untimed
}

// Enter switches state and arms the timer.
func (s *StateData) Enter(state StateID, timer float64) {
	if s.Current == state {
		s.Timer = timer
		return
	}
	s.Previous = s.Current
	s.Current = state
	s.Timer = timer
}

var State = donburi.NewComponentType[StateData]()
