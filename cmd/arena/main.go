// Command arena runs a scripted headless bout: two actors on opposing
// teams, one throwing punches until the other drops, with every combat
// event logged and the loser's final state saved as a snapshot.
package main

import (
	"flag"
	"sync"
	"time"

	"github.com/automoto/brawlcore/assets"
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/core"
	ev "github.com/automoto/brawlcore/events"
	"github.com/automoto/brawlcore/systems"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

func main() {
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (updates per second)")
	timeout := flag.Duration("timeout", 10*time.Second, "Maximum bout duration")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	matrix, err := assets.CollisionMatrix()
	if err != nil {
		log.Fatal("loading collision matrix", zap.Error(err))
	}
	frames, err := assets.FrameLibrary()
	if err != nil {
		log.Fatal("loading frame library", zap.Error(err))
	}

	combatCfg := config.Combat.Clone()
	combatCfg.TickRate = *tickRate

	sim := core.NewSimulation(core.Options{
		Matrix: matrix,
		Frames: frames,
		Config: combatCfg,
		Log:    log,
	})

	attacker := sim.SpawnActor(core.ActorParams{
		Name:      "ash",
		Character: "brawler",
		X:         100, Y: 100, W: 16, H: 32,
		MaxHealth:  100,
		ClipLength: 0.32,
		Identity:   &components.TeamData{TeamID: 1, SourceTag: "ash"},
	})
	defender := sim.SpawnActor(core.ActorParams{
		Name:      "boone",
		Character: "brawler",
		X:         120, Y: 100, W: 16, H: 32,
		MaxHealth:    100,
		MaxShield:    25,
		DownedPolicy: true,
		ClipLength:   0.25,
		Identity:     &components.TeamData{TeamID: 2, SourceTag: "boone"},
	})

	components.Animation.Get(attacker).Play("punch")
	components.Animation.Get(defender).Play("idle")

	loop := core.NewLoop(sim, log)
	var stopOnce sync.Once
	stop := func() { stopOnce.Do(loop.Stop) }

	ev.DamageTaken.Subscribe(sim.World(), func(w donburi.World, e ev.DamageTakenEvent) {
		log.Info("damage taken",
			zap.String("target", components.Actor.Get(e.Entry).Name),
			zap.Float64("amount", e.Amount),
			zap.String("type", e.Type.String()),
			zap.String("tag", e.Tag))
	})
	ev.ShieldDepleted.Subscribe(sim.World(), func(w donburi.World, e ev.ShieldDepletedEvent) {
		log.Info("shield depleted", zap.String("target", components.Actor.Get(e.Entry).Name))
	})
	ev.Downed.Subscribe(sim.World(), func(w donburi.World, e ev.DownedEvent) {
		log.Info("actor downed",
			zap.String("target", components.Actor.Get(e.Entry).Name),
			zap.Float64("timeRemaining", e.TimeRemaining))
		stop()
	})
	ev.Death.Subscribe(sim.World(), func(w donburi.World, e ev.DeathEvent) {
		log.Info("actor died", zap.String("target", components.Actor.Get(e.Entry).Name))
		stop()
	})

	timer := time.AfterFunc(*timeout, stop)
	defer timer.Stop()
	loop.Run()

	hp := components.Health.Get(defender)
	log.Info("bout over",
		zap.Uint64("ticks", sim.Tick()),
		zap.Float64("defenderHealth", hp.Current),
		zap.Bool("downed", hp.Downed))

	snap := systems.CaptureSnapshot(defender)
	store, err := systems.NewSnapshotStore("brawlcore-arena", log)
	if err != nil {
		log.Warn("snapshot store unavailable", zap.Error(err))
		return
	}
	key := components.Actor.Get(defender).ID
	if err := store.Save(key, snap); err == nil {
		log.Info("snapshot saved", zap.String("key", key))
	}
}
