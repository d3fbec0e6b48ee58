package core

// Action represents a logical control, abstracted from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - move left
	ActionRight             // D, Right arrow - move right
	ActionJump              // Space, W, Up - jump, flap, launch
	ActionShoot             // J, mouse click - fire
	ActionWeaponNext        // E, Tab - cycle weapon
	ActionReload            // R while playing - reload
	ActionPause             // P - pause/unpause
	ActionRestart           // R after the session ended, Enter
	ActionBack              // B, Escape - back to menu
	ActionQuit              // Q, Ctrl+C - exit
	ActionFullscreen        // F - toggle alternate screen
	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionShoot:
		return "Shoot"
	case ActionWeaponNext:
		return "WeaponNext"
	case ActionReload:
		return "Reload"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionFullscreen:
		return "Fullscreen"
	default:
		return "Unknown"
	}
}

// InputState is the process-wide record of which actions are currently held,
// plus the last known pointer position in surface space.
//
// Producers (key and mouse handlers) write at arbitrary times between frames;
// the simulation step reads it synchronously. Only the most recent value is
// visible, so a press and release inside one frame is lost.
type InputState struct {
	held    uint32
	latched uint32 // held set as of the previous Latch
	pointer Vec
	hasPtr  bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{}
}

func bit(a Action) uint32 {
	if a <= ActionNone || a >= actionCount {
		return 0
	}
	return 1 << uint(a)
}

// Press marks an action as held.
func (s *InputState) Press(a Action) {
	s.held |= bit(a)
}

// Release marks an action as no longer held. The action also leaves the
// latched baseline, so pressing it again before the next frame is an edge.
func (s *InputState) Release(a Action) {
	s.held &^= bit(a)
	s.latched &^= bit(a)
}

// ReleaseAll clears every held action. The pointer is kept.
func (s *InputState) ReleaseAll() {
	s.held = 0
	s.latched = 0
}

// Held reports whether the action is currently held.
func (s *InputState) Held(a Action) bool {
	b := bit(a)
	return b != 0 && s.held&b != 0
}

// JustPressed reports whether the action is held now but was not held at the
// previous Latch.
func (s *InputState) JustPressed(a Action) bool {
	b := bit(a)
	return b != 0 && s.held&b != 0 && s.latched&b == 0
}

// Latch records the current held set as the baseline for JustPressed.
// Called once at the end of every frame.
func (s *InputState) Latch() {
	s.latched = s.held
}

// MovePointer records the pointer position in surface coordinates.
func (s *InputState) MovePointer(p Vec) {
	s.pointer = p
	s.hasPtr = true
}

// ClearPointer forgets the pointer (e.g. it left the play area).
func (s *InputState) ClearPointer() {
	s.hasPtr = false
}

// Pointer returns the last pointer position and whether one is known.
func (s *InputState) Pointer() (Vec, bool) {
	return s.pointer, s.hasPtr
}

// InputSnapshot is a serializable copy of an InputState, used for recordings.
type InputSnapshot struct {
	Held     uint32  `msgpack:"h"`
	Latched  uint32  `msgpack:"l"`
	PointerX float64 `msgpack:"x"`
	PointerY float64 `msgpack:"y"`
	HasPtr   bool    `msgpack:"p"`
}

// Snapshot captures the current state.
func (s *InputState) Snapshot() InputSnapshot {
	return InputSnapshot{
		Held:     s.held,
		Latched:  s.latched,
		PointerX: s.pointer.X,
		PointerY: s.pointer.Y,
		HasPtr:   s.hasPtr,
	}
}

// Apply overwrites the state with a snapshot.
func (s *InputState) Apply(snap InputSnapshot) {
	s.held = snap.Held
	s.latched = snap.Latched
	s.pointer = Vec{X: snap.PointerX, Y: snap.PointerY}
	s.hasPtr = snap.HasPtr
}
