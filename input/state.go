package input

import "github.com/lixenwraith/sandfall/vmath"

// Action is a digital player action
type Action uint8

const (
	ActionCarve Action = iota
	ActionSet
	ActionParry
	ActionJump
	actionCount
)

// Axis is an analog player input
type Axis uint8

const (
	AxisMove Axis = iota
	AxisAim
	axisCount
)

// ActionState tracks per-player buttons and axes with one step of history
// Written by the device layer, read by systems, advanced once per step by the input system
type ActionState struct {
	pressed [actionCount]bool
	prev    [actionCount]bool
	axes    [axisCount]vmath.Vec2
}

func NewActionState() *ActionState {
	return &ActionState{}
}

// SetButton records the current level of a button
func (s *ActionState) SetButton(a Action, down bool) {
	if a >= actionCount {
		return
	}
	s.pressed[a] = down
}

// SetAxis records an axis value clamped to unit length
func (s *ActionState) SetAxis(a Axis, v vmath.Vec2) {
	if a >= axisCount {
		return
	}
	s.axes[a] = vmath.V2ClampMag(v, 1)
}

func (s *ActionState) Pressed(a Action) bool {
	return a < actionCount && s.pressed[a]
}

func (s *ActionState) JustPressed(a Action) bool {
	return a < actionCount && s.pressed[a] && !s.prev[a]
}

func (s *ActionState) JustReleased(a Action) bool {
	return a < actionCount && !s.pressed[a] && s.prev[a]
}

func (s *ActionState) Axis(a Axis) vmath.Vec2 {
	if a >= axisCount {
		return vmath.Vec2{}
	}
	return s.axes[a]
}

// Advance latches current button levels as the previous step's
func (s *ActionState) Advance() {
	s.prev = s.pressed
}

// Active reports whether any button is pressed or any axis is deflected
func (s *ActionState) Active() bool {
	for _, p := range s.pressed {
		if p {
			return true
		}
	}
	for _, v := range s.axes {
		if vmath.V2MagSq(v) > 0 {
			return true
		}
	}
	return false
}
