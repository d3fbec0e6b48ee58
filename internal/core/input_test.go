package core

import "testing"

func TestInputHeldAndRelease(t *testing.T) {
	in := NewInputState()

	in.Press(ActionLeft)
	in.Press(ActionShoot)
	if !in.Held(ActionLeft) || !in.Held(ActionShoot) {
		t.Fatal("pressed actions should be held")
	}
	if in.Held(ActionRight) {
		t.Error("unpressed action should not be held")
	}

	in.Release(ActionLeft)
	if in.Held(ActionLeft) {
		t.Error("released action should not be held")
	}

	in.ReleaseAll()
	if in.Held(ActionShoot) {
		t.Error("ReleaseAll should clear every action")
	}
}

func TestInputJustPressed(t *testing.T) {
	in := NewInputState()

	in.Press(ActionJump)
	if !in.JustPressed(ActionJump) {
		t.Fatal("first frame of a press should be JustPressed")
	}

	in.Latch()
	if in.JustPressed(ActionJump) {
		t.Error("held action should not be JustPressed after a latch")
	}
	if !in.Held(ActionJump) {
		t.Error("action should still be held")
	}
}

func TestInputPressReleaseWithinFrameIsLost(t *testing.T) {
	in := NewInputState()
	in.Latch()

	in.Press(ActionJump)
	in.Release(ActionJump)

	if in.Held(ActionJump) || in.JustPressed(ActionJump) {
		t.Error("a press released before the frame reads it should be lost")
	}
}

func TestInputReleaseAfterLatchAllowsNewEdge(t *testing.T) {
	in := NewInputState()

	// Frame 1 sees the tap, then the host releases it after the latch
	in.Press(ActionJump)
	in.Latch()
	in.Release(ActionJump)

	in.Press(ActionJump)
	if !in.JustPressed(ActionJump) {
		t.Fatal("a tap on the next frame should be a fresh edge")
	}

	in.Latch()
	in.ReleaseAll()
	in.Press(ActionPause)
	if !in.JustPressed(ActionPause) {
		t.Error("ReleaseAll should reset the baseline too")
	}
}

func TestInputIgnoresInvalidActions(t *testing.T) {
	in := NewInputState()
	in.Press(ActionNone)
	in.Press(Action(99))

	if in.Held(ActionNone) || in.Held(Action(99)) {
		t.Error("invalid actions should never be held")
	}
}

func TestInputPointerAndSnapshot(t *testing.T) {
	in := NewInputState()
	if _, ok := in.Pointer(); ok {
		t.Error("pointer should be unknown initially")
	}

	in.MovePointer(V(120, 45))
	in.Press(ActionRight)
	snap := in.Snapshot()

	restored := NewInputState()
	restored.Apply(snap)
	p, ok := restored.Pointer()
	if !ok || p != V(120, 45) {
		t.Errorf("restored pointer = %v (%v), expected (120, 45)", p, ok)
	}
	if !restored.Held(ActionRight) || !restored.JustPressed(ActionRight) {
		t.Error("restored state should keep held and edge information")
	}

	in.ClearPointer()
	if _, ok := in.Pointer(); ok {
		t.Error("ClearPointer should forget the pointer")
	}
}

func TestActionString(t *testing.T) {
	if ActionWeaponNext.String() != "WeaponNext" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
