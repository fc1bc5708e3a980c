package animation

import (
	"testing"
	"time"

	"github.com/Faultbox/fishy/internal/engine/scene"
)

type readyServer struct{ ready bool }

func (r *readyServer) Ready(scene.Handle) bool { return r.ready }

func TestPlayerPlayKeepsProgressOnSameClip(t *testing.T) {
	var p Player
	p.Play("idle").Repeat()
	p.Advance(500 * time.Millisecond)

	p.Play("idle")
	if p.Elapsed() != 500*time.Millisecond {
		t.Errorf("expected progress to survive replaying the same clip, got %v", p.Elapsed())
	}
	if !p.Repeating() {
		t.Error("expected repeat to survive replaying the same clip")
	}
	if p.Switches() != 1 {
		t.Errorf("expected 1 switch, got %d", p.Switches())
	}
}

func TestPlayerTransition(t *testing.T) {
	var p Player
	p.Play("idle")
	p.PlayWithTransition("swim", 200*time.Millisecond)

	prev, left := p.Blending()
	if prev != "idle" || left != 200*time.Millisecond {
		t.Errorf("expected fade from idle over 200ms, got %q %v", prev, left)
	}
	if p.Repeating() {
		t.Error("switching clips should reset repeat")
	}

	p.Advance(250 * time.Millisecond)
	if prev, left := p.Blending(); prev != "" || left != 0 {
		t.Errorf("expected fade to finish, got %q %v", prev, left)
	}
	if p.Clip() != "swim" || p.Elapsed() != 250*time.Millisecond {
		t.Errorf("unexpected state %q %v", p.Clip(), p.Elapsed())
	}
}

func TestPlayerAdvanceWithoutClip(t *testing.T) {
	var p Player
	p.Advance(time.Second)
	if p.Elapsed() != 0 {
		t.Errorf("expected no progress without a clip, got %v", p.Elapsed())
	}
}

func TestApplyInitialWaitsForPlayer(t *testing.T) {
	w := scene.NewWorld()
	sys := NewSystem(w)
	server := &readyServer{}

	e := w.Instance(scene.SceneInstance{Scene: "models/Eel.glb#Scene0", Animated: true}, scene.Identity())
	sys.SetInitial(e, Initial{Clip: "models/Eel.glb#Animation1", Repeat: true})

	// Sub-scene still loading: nothing to play on yet.
	sys.Attach(w.Materialize(server))
	if n := sys.ApplyInitial(); n != 0 {
		t.Fatalf("expected no initial animation applied, got %d", n)
	}
	if !sys.HasInitial(e) {
		t.Fatal("initial animation dropped before it was applied")
	}

	server.ready = true
	sys.Attach(w.Materialize(server))
	if n := sys.ApplyInitial(); n != 1 {
		t.Fatalf("expected 1 initial animation applied, got %d", n)
	}
	if sys.HasInitial(e) {
		t.Error("initial animation should be removed once applied")
	}

	p, ok := sys.Find(e)
	if !ok {
		t.Fatal("expected a player under the instance")
	}
	if p.Clip() != "models/Eel.glb#Animation1" || !p.Repeating() {
		t.Errorf("unexpected player state %q repeat=%v", p.Clip(), p.Repeating())
	}

	sys.Advance(100 * time.Millisecond)
	if p.Elapsed() != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", p.Elapsed())
	}
}

func TestAttachSkipsStaticScenes(t *testing.T) {
	w := scene.NewWorld()
	sys := NewSystem(w)

	e := w.Instance(scene.SceneInstance{Scene: "models/Rock.glb#Scene0"}, scene.Identity())
	sys.Attach(w.Materialize(&readyServer{ready: true}))

	if _, ok := sys.Find(e); ok {
		t.Error("static scene should not get an animation player")
	}
}
