package core

import (
	"time"

	"go.uber.org/zap"
)

// Loop drives a simulation at a fixed tick rate on its own goroutine-free
// clock: Run blocks until Stop is called.
type Loop struct {
	sim      *Simulation
	tickRate int
	running  bool
	stopChan chan struct{}
	log      *zap.Logger
}

// NewLoop wraps a simulation in a ticker at the config's tick rate.
func NewLoop(sim *Simulation, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	tickRate := sim.rules.Config.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		log:      log,
	}
}

// Run steps the simulation until Stop.
func (l *Loop) Run() {
	l.running = true
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.log.Info("combat loop started", zap.Int("tickRate", l.tickRate))

	for {
		select {
		case <-l.stopChan:
			l.running = false
			l.log.Info("combat loop stopped", zap.Uint64("ticks", l.sim.Tick()))
			return
		case <-ticker.C:
			l.sim.Step()
		}
	}
}

// Stop terminates Run after the current tick.
func (l *Loop) Stop() {
	close(l.stopChan)
}
