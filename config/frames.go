package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// frameDurationEpsilon floors per-frame durations so a zero-length frame in
// an asset never divides the clip by zero.
const frameDurationEpsilon = 0.0001

// HitboxFrame describes one hitbox on one animation frame. Offsets are in
// actor-local units relative to the owner's top-left corner. Frames are
// immutable once loaded; the registry copies values into proxies each tick.
type HitboxFrame struct {
	Type    HitboxType `yaml:"type"`
	OffsetX float64    `yaml:"offsetX"`
	OffsetY float64    `yaml:"offsetY"`
	Width   float64    `yaml:"width"`
	Height  float64    `yaml:"height"`

	// Attack metadata, meaningful for hit/grab boxes.
	Damage        float64    `yaml:"damage"`
	DamageType    DamageType `yaml:"damageType"`
	KnockbackX    float64    `yaml:"knockbackX"`
	KnockbackY    float64    `yaml:"knockbackY"`
	Hitstun       float64    `yaml:"hitstun"` // seconds
	FX            string     `yaml:"fx"`
	OriginX       float64    `yaml:"originX"` // projectile origin hint
	OriginY       float64    `yaml:"originY"`
	OncePerTarget bool       `yaml:"oncePerTarget"` // hit each target at most once per swing
}

// ClipFrames holds the per-frame hitbox data for one animation clip.
// Durations, when present, must have one entry per frame; otherwise the
// clip is split uniformly across its frames.
type ClipFrames struct {
	Durations []float64       `yaml:"durations,omitempty"`
	Frames    [][]HitboxFrame `yaml:"frames"`
}

// FrameIndexAt resolves a normalized playback time t to a discrete frame
// index. With explicit durations, durations accumulate until the running
// total meets t scaled into the clip's total length. Without them the clip
// is split uniformly. Out-of-range inputs clamp rather than error.
func (c ClipFrames) FrameIndexAt(t float64) int {
	count := len(c.Frames)
	if count == 0 {
		return -1
	}
	t = wrapNormalized(t)

	if len(c.Durations) == count {
		total := 0.0
		for _, d := range c.Durations {
			total += math.Max(d, frameDurationEpsilon)
		}
		target := t * total
		accum := 0.0
		for i, d := range c.Durations {
			accum += math.Max(d, frameDurationEpsilon)
			if accum >= target {
				return i
			}
		}
		return count - 1
	}

	idx := int(math.Floor(t * float64(count)))
	if idx < 0 {
		idx = 0
	}
	if idx > count-1 {
		idx = count - 1
	}
	return idx
}

func wrapNormalized(t float64) float64 {
	t = t - math.Floor(t)
	if t < 0 || t >= 1 {
		return 0
	}
	return t
}

// CharacterFrames maps clip names to their frame data.
type CharacterFrames struct {
	Clips map[string]ClipFrames `yaml:"clips"`
}

// FrameSource yields the hitbox descriptors active for a character's clip at
// a normalized playback time. Missing characters, clips, or frames resolve
// to nil rather than an error.
type FrameSource interface {
	FrameDescriptors(character, clip string, t float64) []HitboxFrame
}

// FrameLibrary is the asset-backed FrameSource, keyed by character name.
type FrameLibrary map[string]CharacterFrames

// FrameDescriptors implements FrameSource.
func (l FrameLibrary) FrameDescriptors(character, clip string, t float64) []HitboxFrame {
	char, ok := l[character]
	if !ok {
		return nil
	}
	cf, ok := char.Clips[clip]
	if !ok {
		return nil
	}
	idx := cf.FrameIndexAt(t)
	if idx < 0 || idx >= len(cf.Frames) {
		return nil
	}
	return cf.Frames[idx]
}

// ParseFrameLibrary decodes a character frame-data asset from YAML.
func ParseFrameLibrary(data []byte) (FrameLibrary, error) {
	var l FrameLibrary
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse frame library: %w", err)
	}
	return l, nil
}

// LoadFrameLibrary reads a character frame-data asset from disk.
func LoadFrameLibrary(path string) (FrameLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load frame library: %w", err)
	}
	return ParseFrameLibrary(data)
}
