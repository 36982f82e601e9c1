package gui

// FrameInput is the per-frame pointer snapshot supplied by the host.
// It is read-only for the duration of a frame and replaced wholesale at
// the next Begin.
type FrameInput struct {
	MouseDown     bool // Left button held this frame
	MouseDownPrev bool // Left button held last frame

	Pointer     Vec2 // Pointer position this frame, in layout space
	PointerPrev Vec2 // Pointer position last frame, in layout space
}

// PressEdge returns true only on the frame the button goes from up to down.
func PressEdge(in FrameInput) bool {
	return !in.MouseDownPrev && in.MouseDown
}

// ReleaseEdge returns true only on the frame the button goes from down to up.
func ReleaseEdge(in FrameInput) bool {
	return in.MouseDownPrev && !in.MouseDown
}

// Delta returns the pointer motion since the previous frame.
func (in FrameInput) Delta() Vec2 {
	return in.Pointer.Sub(in.PointerPrev)
}

// InputTracker builds FrameInput snapshots from raw per-frame button and
// pointer state, remembering the previous frame for edge detection.
// Hosts that already track previous state can construct FrameInput directly.
type InputTracker struct {
	down    bool
	pointer Vec2
	primed  bool
}

// NewInputTracker creates a tracker with the button up and the pointer at the origin.
func NewInputTracker() *InputTracker {
	return &InputTracker{}
}

// Next records this frame's state and returns the snapshot for it.
// On the first call the previous pointer equals the current one so the
// first frame never reports a spurious motion delta.
func (t *InputTracker) Next(down bool, pointer Vec2) FrameInput {
	if !t.primed {
		t.pointer = pointer
		t.primed = true
	}

	in := FrameInput{
		MouseDown:     down,
		MouseDownPrev: t.down,
		Pointer:       pointer,
		PointerPrev:   t.pointer,
	}

	t.down = down
	t.pointer = pointer
	return in
}

// Reset forgets the previous frame (e.g. after the host window lost focus).
func (t *InputTracker) Reset() {
	*t = InputTracker{}
}
