package components

import "github.com/yohamta/donburi"

// TeamData identifies an actor for friendly-fire checks. An actor without
// the component has no identity and can always be damaged.
type TeamData struct {
	TeamID            int    // 0 = no team
	Faction           string // "" = no faction
	AllowFriendlyFire bool
	SourceTag         string // stamped onto outgoing DamageInfo when non-blank
}

var Team = donburi.NewComponentType[TeamData]()
