package systems

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// SnapshotVersion is stamped into every capture. Restore refuses snapshots
// newer than this.
const SnapshotVersion = 1

// HealthRecord is the explicit persistence contract for HealthData. Only
// the fields listed here survive a save; everything else is runtime state.
type HealthRecord struct {
	Current             float64             `json:"current"`
	Max                 float64             `json:"max"`
	Downed              bool                `json:"downed,omitempty"`
	Dead                bool                `json:"dead,omitempty"`
	DownedPolicy        bool                `json:"downedPolicy,omitempty"`
	DownedDuration      float64             `json:"downedDuration,omitempty"`
	DownedTimeRemaining float64             `json:"downedTimeRemaining,omitempty"`
	Invulnerable        bool                `json:"invulnerable,omitempty"`
	InvulnTimeRemaining float64             `json:"invulnTimeRemaining,omitempty"`
	RegenEnabled        bool                `json:"regenEnabled,omitempty"`
	RegenRate           float64             `json:"regenRate,omitempty"`
	RegenDelay          float64             `json:"regenDelay,omitempty"`
	FlatReduction       float64             `json:"flatReduction,omitempty"`
	PercentReduction    float64             `json:"percentReduction,omitempty"`
	Resistances         []config.Resistance `json:"resistances,omitempty"`
}

// ShieldRecord mirrors ShieldData for persistence.
type ShieldRecord struct {
	Current float64 `json:"current"`
	Max     float64 `json:"max"`
}

// TransformRecord optionally carries the actor's position.
type TransformRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HealthSnapshot is the versioned, timestamped persistence record for one
// actor's combat state. Capturing never mutates live state; restoring
// bypasses the damage pipeline and its events.
type HealthSnapshot struct {
	Version    int                       `json:"version"`
	CapturedAt time.Time                 `json:"capturedAt"`
	Health     HealthRecord              `json:"health"`
	Shield     *ShieldRecord             `json:"shield,omitempty"`
	Effects    []components.StatusEffect `json:"effects,omitempty"`
	Transform  *TransformRecord          `json:"transform,omitempty"`
}

// Valid self-checks the snapshot's numeric bounds.
func (s HealthSnapshot) Valid() bool {
	if s.Version < 1 || s.Version > SnapshotVersion {
		return false
	}
	h := s.Health
	if h.Max < 1 || h.Current < 0 || h.Current > h.Max {
		return false
	}
	if h.PercentReduction < 0 || h.PercentReduction >= 1 {
		return false
	}
	if s.Shield != nil {
		if s.Shield.Max < 0 || s.Shield.Current < 0 || s.Shield.Current > s.Shield.Max {
			return false
		}
	}
	return true
}

// CaptureSnapshot copies the actor's health, shield, status, and transform
// into a fresh snapshot. Out-of-bounds current values are repaired by
// clamping; an unrepairable state (Max < 1) yields an invalid snapshot.
func CaptureSnapshot(e *donburi.Entry) HealthSnapshot {
	snap := HealthSnapshot{
		Version:    SnapshotVersion,
		CapturedAt: time.Now().UTC(),
	}
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return snap
	}

	hp := components.Health.Get(e)
	snap.Health = HealthRecord{
		Current:             clampRange(hp.Current, 0, hp.Max),
		Max:                 hp.Max,
		Downed:              hp.Downed,
		Dead:                hp.Dead,
		DownedPolicy:        hp.DownedPolicy,
		DownedDuration:      hp.DownedDuration,
		DownedTimeRemaining: hp.DownedTimeRemaining,
		Invulnerable:        hp.Invulnerable,
		InvulnTimeRemaining: hp.InvulnTimeRemaining,
		RegenEnabled:        hp.RegenEnabled,
		RegenRate:           hp.RegenRate,
		RegenDelay:          hp.RegenDelay,
		FlatReduction:       hp.FlatReduction,
		PercentReduction:    hp.PercentReduction,
		Resistances:         append([]config.Resistance(nil), hp.Resistances...),
	}

	if e.HasComponent(components.Shield) {
		sh := components.Shield.Get(e)
		snap.Shield = &ShieldRecord{
			Current: clampRange(sh.Current, 0, sh.Max),
			Max:     sh.Max,
		}
	}
	if e.HasComponent(components.Status) {
		st := components.Status.Get(e)
		snap.Effects = append([]components.StatusEffect(nil), st.Active...)
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		snap.Transform = &TransformRecord{X: obj.X, Y: obj.Y}
	}
	return snap
}

// RestoreSnapshot overwrites the actor's combat state from a snapshot,
// bypassing the damage pipeline. Invalid snapshots are refused with a log
// and no state change. Terminal states are re-applied through the
// administrative overrides so downstream flags stay consistent.
func RestoreSnapshot(w donburi.World, e *donburi.Entry, snap HealthSnapshot, log *zap.Logger) bool {
	if log == nil {
		log = zap.NewNop()
	}
	if !snap.Valid() {
		log.Warn("refusing invalid snapshot",
			zap.Int("version", snap.Version),
			zap.Float64("current", snap.Health.Current),
			zap.Float64("max", snap.Health.Max))
		return false
	}
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		log.Warn("snapshot target has no health state")
		return false
	}

	hp := components.Health.Get(e)
	h := snap.Health
	hp.Current = h.Current
	hp.Max = h.Max
	hp.Downed = false
	hp.Dead = false
	hp.DownedPolicy = h.DownedPolicy
	hp.DownedDuration = h.DownedDuration
	hp.DownedTimeRemaining = 0
	hp.Invulnerable = h.Invulnerable
	hp.InvulnTimeRemaining = h.InvulnTimeRemaining
	hp.RegenEnabled = h.RegenEnabled
	hp.RegenRate = h.RegenRate
	hp.RegenDelay = h.RegenDelay
	hp.TimeSinceDamage = 0
	hp.FlatReduction = h.FlatReduction
	hp.PercentReduction = h.PercentReduction
	hp.Resistances = append([]config.Resistance(nil), h.Resistances...)

	if snap.Shield != nil && e.HasComponent(components.Shield) {
		sh := components.Shield.Get(e)
		sh.Current = snap.Shield.Current
		sh.Max = snap.Shield.Max
	}
	RestoreStatusEffects(e, snap.Effects)

	if snap.Transform != nil && e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		obj.X = snap.Transform.X
		obj.Y = snap.Transform.Y
		if obj.Space != nil {
			obj.Update()
		}
	}

	switch {
	case h.Dead:
		ForceDead(e)
	case h.Downed:
		ForceDowned(e, h.DownedTimeRemaining)
	default:
		if e.HasComponent(components.State) {
			components.State.Get(e).Enter(components.StateIdle, 0)
		}
	}
	return true
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SnapshotStore persists snapshots through gdata, keyed by actor id.
type SnapshotStore struct {
	manager *gdata.Manager
	log     *zap.Logger
}

// NewSnapshotStore opens the platform save-data directory for the app.
func NewSnapshotStore(appName string, log *zap.Logger) (*SnapshotStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	return &SnapshotStore{manager: m, log: log}, nil
}

// Save serializes the snapshot as JSON under the actor key.
func (s *SnapshotStore) Save(key string, snap HealthSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serialize snapshot: %w", err)
	}
	if err := s.manager.SaveItem(snapshotItem(key), data); err != nil {
		s.log.Warn("could not save snapshot", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Load reads a snapshot back; returns nil with no error when the key has
// never been saved.
func (s *SnapshotStore) Load(key string) (*HealthSnapshot, error) {
	data, err := s.manager.LoadItem(snapshotItem(key))
	if err != nil {
		s.log.Warn("could not load snapshot", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var snap HealthSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

func snapshotItem(key string) string {
	return "snapshot_" + key
}
