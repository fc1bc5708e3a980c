// Package animation drives clip playback on materialized sub-scenes.
package animation

import "time"

// Clip names an animation inside a model, e.g. "models/Eel.glb#Animation1".
type Clip string

// Player plays one clip at a time.
type Player struct {
	clip     Clip
	elapsed  time.Duration
	repeat   bool
	blend    time.Duration // remaining cross-fade from the previous clip
	previous Clip
	switches int
}

// Play switches to clip. Asking for the clip that is already playing keeps
// its progress.
func (p *Player) Play(clip Clip) *Player {
	return p.PlayWithTransition(clip, 0)
}

// PlayWithTransition switches to clip, fading out the current clip over d.
func (p *Player) PlayWithTransition(clip Clip, d time.Duration) *Player {
	if p.clip == clip {
		return p
	}
	p.previous = p.clip
	p.clip = clip
	p.elapsed = 0
	p.repeat = false
	p.blend = d
	p.switches++
	return p
}

// Repeat makes the current clip loop.
func (p *Player) Repeat() *Player {
	p.repeat = true
	return p
}

// Advance moves playback forward by dt.
func (p *Player) Advance(dt time.Duration) {
	if p.clip == "" {
		return
	}
	p.elapsed += dt
	if p.blend > 0 {
		p.blend -= dt
		if p.blend <= 0 {
			p.blend = 0
			p.previous = ""
		}
	}
}

// Clip returns the clip being played, or "" if none.
func (p *Player) Clip() Clip { return p.clip }

// Repeating reports whether the current clip loops.
func (p *Player) Repeating() bool { return p.repeat }

// Elapsed returns how long the current clip has been playing.
func (p *Player) Elapsed() time.Duration { return p.elapsed }

// Blending returns the clip being faded out and the fade time left.
func (p *Player) Blending() (Clip, time.Duration) { return p.previous, p.blend }

// Switches counts how many times the player changed clip.
func (p *Player) Switches() int { return p.switches }

// Initial is a one-shot request to start Clip on the first animation player
// that appears under the entity.
type Initial struct {
	Clip   Clip
	Repeat bool
}
