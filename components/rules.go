package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// RulesData is the singleton simulation context: collision policy, frame
// data, tuning, clock, and logger. It replaces process-wide managers so
// parallel simulations (and tests) never share mutable state.
type RulesData struct {
	Matrix *config.CollisionMatrix
	Frames config.FrameSource
	Config *config.CombatConfig
	Log    *zap.Logger

	Tick uint64
	DT   float64 // seconds per tick

	// Viewer position for hitbox culling.
	ViewerX float64
	ViewerY float64
}

var Rules = donburi.NewComponentType[RulesData]()
