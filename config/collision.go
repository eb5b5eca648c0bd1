package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HitboxType categorizes a hitbox for collision filtering.
type HitboxType string

const (
	HitboxHurt   HitboxType = "hurt"   // receives damage
	HitboxHit    HitboxType = "hit"    // deals damage
	HitboxGrab   HitboxType = "grab"   // initiates grabs/throws
	HitboxShield HitboxType = "shield" // blocks incoming hits
)

// CollisionRule allows or denies contact between two hitbox types.
type CollisionRule struct {
	Source HitboxType `yaml:"source"`
	Target HitboxType `yaml:"target"`
	Allow  bool       `yaml:"allow"`
}

// CollisionMatrix is an ordered rule list. The first rule matching a
// (source, target) pair wins; pairs with no matching rule are allowed.
type CollisionMatrix struct {
	Rules []CollisionRule `yaml:"rules"`
}

// Allows reports whether contacts between the two hitbox types may produce
// combat events. Read-only; safe to share between simulations.
func (m *CollisionMatrix) Allows(source, target HitboxType) bool {
	if m == nil {
		return true
	}
	for _, r := range m.Rules {
		if r.Source == source && r.Target == target {
			return r.Allow
		}
	}
	return true
}

// DefaultCollisionMatrix mirrors the stock brawler ruleset: hit and grab
// boxes connect with hurtboxes, shields swallow grabs, and hurt and shield
// boxes never initiate contacts of their own.
func DefaultCollisionMatrix() *CollisionMatrix {
	return &CollisionMatrix{
		Rules: []CollisionRule{
			{Source: HitboxHit, Target: HitboxHurt, Allow: true},
			{Source: HitboxHit, Target: HitboxShield, Allow: true},
			{Source: HitboxGrab, Target: HitboxHurt, Allow: true},
			{Source: HitboxGrab, Target: HitboxShield, Allow: false},
			{Source: HitboxHurt, Target: HitboxHurt, Allow: false},
			{Source: HitboxHurt, Target: HitboxHit, Allow: false},
			{Source: HitboxHurt, Target: HitboxGrab, Allow: false},
			{Source: HitboxHurt, Target: HitboxShield, Allow: false},
			{Source: HitboxShield, Target: HitboxShield, Allow: false},
			{Source: HitboxShield, Target: HitboxHit, Allow: false},
			{Source: HitboxShield, Target: HitboxGrab, Allow: false},
			{Source: HitboxShield, Target: HitboxHurt, Allow: false},
		},
	}
}

// ParseCollisionMatrix decodes a collision matrix asset from YAML.
func ParseCollisionMatrix(data []byte) (*CollisionMatrix, error) {
	var m CollisionMatrix
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse collision matrix: %w", err)
	}
	return &m, nil
}

// LoadCollisionMatrix reads a collision matrix asset from disk.
func LoadCollisionMatrix(path string) (*CollisionMatrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load collision matrix: %w", err)
	}
	return ParseCollisionMatrix(data)
}
