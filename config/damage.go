package config

import "gopkg.in/yaml.v3"

// DamageType categorizes incoming damage for resistance lookups.
// True damage skips flat/percent reduction and resistances entirely.
type DamageType int

const (
	DamageGeneric DamageType = iota
	DamagePhysical
	DamageFire
	DamageIce
	DamagePoison
	DamageElectric
	DamageTrue
)

var damageTypeNames = map[DamageType]string{
	DamageGeneric:  "generic",
	DamagePhysical: "physical",
	DamageFire:     "fire",
	DamageIce:      "ice",
	DamagePoison:   "poison",
	DamageElectric: "electric",
	DamageTrue:     "true",
}

func (t DamageType) String() string {
	if name, ok := damageTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// UnmarshalYAML accepts damage types by name ("fire") so frame-data assets
// stay readable. Unknown names fall back to generic.
func (t *DamageType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	for dt, n := range damageTypeNames {
		if n == name {
			*t = dt
			return nil
		}
	}
	*t = DamageGeneric
	return nil
}

// Resistance scales incoming damage of one type. Multiplier 0.5 halves it,
// 2.0 doubles it, 0 negates it.
type Resistance struct {
	Type       DamageType `json:"type" yaml:"type"`
	Multiplier float64    `json:"multiplier" yaml:"multiplier"`
}
