package config

// CombatConfig contains combat-resolution tuning values
type CombatConfig struct {
	// Simulation
	TickRate    int // simulation ticks per second
	SpaceWidth  int // collision space bounds in world units
	SpaceHeight int
	CellSize    int // resolv cell size

	// Hitbox registry
	CullDistance float64 // deactivate hitboxes beyond this distance from the viewer (0 = never cull)
	SyncInterval int     // sync hitboxes every N ticks (1 = every tick)

	// Health defaults
	DownedDuration float64 // seconds before a downed actor dies
	InvulnDuration float64 // post-hit grace period in seconds
	RegenDelay     float64 // seconds without damage before regen kicks in
	RegenRate      float64 // health per second while regenerating

	// Knockback/hitstun
	KnockbackUpwardForce float64 // vertical pop for launching hits with no vertical knockback
	DefaultHitstun       float64 // seconds, used when a hitbox frame carries none
}

// Combat is the default combat configuration
var Combat CombatConfig

func init() {
	Combat = CombatConfig{
		TickRate:    60,
		SpaceWidth:  640,
		SpaceHeight: 360,
		CellSize:    16,

		CullDistance: 0,
		SyncInterval: 1,

		DownedDuration: 10.0,
		InvulnDuration: 0.5,
		RegenDelay:     3.0,
		RegenRate:      5.0,

		KnockbackUpwardForce: -6.0,
		DefaultHitstun:       0.25,
	}
}

// Clone returns a copy so tests and parallel simulations can tweak values
// without touching the shared defaults.
func (c CombatConfig) Clone() *CombatConfig {
	out := c
	return &out
}
