package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// Animator is the capability the combat core needs from whatever animation
// layer exists. AnimationData is the built-in implementation; a presentation
// engine may drive the same component from its own clocks instead.
type Animator interface {
	Play(clip string)
	CurrentTime() float64
	IsPlaying(clip string) bool
}

// AnimationData is headless clip playback: it tracks which clip a character
// is in and how far through it is, normalized to [0, 1). The hitbox
// registry reads this to pick the current frame's descriptors.
type AnimationData struct {
	Character string  // key into the frame library
	Clip      string  // current clip name
	Length    float64 // clip length in seconds
	Elapsed   float64
	Playing   bool
	Loop      bool
}

// Play restarts playback at the start of the named clip.
func (a *AnimationData) Play(clip string) {
	a.Clip = clip
	a.Elapsed = 0
	a.Playing = true
}

// Stop halts playback. A stopped clip keeps its last frame active.
func (a *AnimationData) Stop() {
	a.Playing = false
}

// CurrentTime returns the normalized playback time in [0, 1).
func (a *AnimationData) CurrentTime() float64 {
	if a.Length <= 0 {
		return 0
	}
	t := a.Elapsed / a.Length
	return t - math.Floor(t)
}

// IsPlaying reports whether the named clip is the one currently playing.
func (a *AnimationData) IsPlaying(clip string) bool {
	return a.Playing && a.Clip == clip
}

// Advance moves playback forward by dt seconds. Non-looping clips stop on
// their final frame.
func (a *AnimationData) Advance(dt float64) {
	if !a.Playing || a.Length <= 0 {
		return
	}
	a.Elapsed += dt
	if a.Elapsed >= a.Length {
		if a.Loop {
			a.Elapsed = math.Mod(a.Elapsed, a.Length)
		} else {
			a.Elapsed = a.Length - 1e-9
			a.Playing = false
		}
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
