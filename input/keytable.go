package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sandfall/vmath"
)

// Binding maps one key to either a button or a unit axis contribution
type Binding struct {
	Button bool
	Toggle bool // Button flips on each press instead of timing out
	Action Action
	Axis   Axis
	Dir    vmath.Vec2
}

// KeyTable maps terminal keys to bindings
type KeyTable struct {
	Runes map[rune]Binding
	Keys  map[tcell.Key]Binding
}

func button(a Action) Binding { return Binding{Button: true, Action: a} }

func toggle(a Action) Binding { return Binding{Button: true, Toggle: true, Action: a} }

func axis(a Axis, x, y float64) Binding { return Binding{Axis: a, Dir: vmath.Vec2{X: x, Y: y}} }

// DefaultKeyTable returns the built-in keyboard layout
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Binding{
			'a': axis(AxisMove, -1, 0),
			'd': axis(AxisMove, 1, 0),
			'w': button(ActionJump),
			' ': button(ActionJump),
			'j': axis(AxisAim, -1, 0),
			'l': axis(AxisAim, 1, 0),
			'i': axis(AxisAim, 0, 1),
			'k': axis(AxisAim, 0, -1),
			'c': toggle(ActionCarve),
			's': button(ActionSet),
			'p': button(ActionParry),
		},
		Keys: map[tcell.Key]Binding{
			tcell.KeyLeft:  axis(AxisMove, -1, 0),
			tcell.KeyRight: axis(AxisMove, 1, 0),
			tcell.KeyUp:    button(ActionJump),
		},
	}
}

// Lookup resolves a key event's components to a binding
func (t *KeyTable) Lookup(key tcell.Key, r rune) (Binding, bool) {
	if key == tcell.KeyRune {
		b, ok := t.Runes[r]
		return b, ok
	}
	b, ok := t.Keys[key]
	return b, ok
}

// Keyboard turns key-down events into held state
// Terminals report no key-up, so a binding stays held for Hold after its last repeat
type Keyboard struct {
	table *KeyTable
	Hold  time.Duration
	seen  map[Binding]time.Time
	on    [actionCount]bool
	aim   vmath.Vec2
}

func NewKeyboard(table *KeyTable, hold time.Duration) *Keyboard {
	return &Keyboard{
		table: table,
		Hold:  hold,
		seen:  make(map[Binding]time.Time),
		aim:   vmath.Vec2{X: 1},
	}
}

// Apply records a key press; returns false when the key is unbound
func (k *Keyboard) Apply(key tcell.Key, r rune, now time.Time) bool {
	b, ok := k.table.Lookup(key, r)
	if !ok {
		return false
	}
	if b.Toggle {
		k.on[b.Action] = !k.on[b.Action]
		return true
	}
	k.seen[b] = now
	return true
}

// Sync writes the held state into an ActionState
// Aim keeps its last direction when no aim key is held
func (k *Keyboard) Sync(s *ActionState, now time.Time) {
	buttons := k.on
	var axes [axisCount]vmath.Vec2

	for b, at := range k.seen {
		if now.Sub(at) > k.Hold {
			delete(k.seen, b)
			continue
		}
		if b.Button {
			buttons[b.Action] = true
			continue
		}
		axes[b.Axis] = vmath.V2Add(axes[b.Axis], b.Dir)
	}

	for a := Action(0); a < actionCount; a++ {
		s.SetButton(a, buttons[a])
	}
	s.SetAxis(AxisMove, axes[AxisMove])
	if vmath.V2MagSq(axes[AxisAim]) > 0 {
		k.aim = vmath.V2Normalize(axes[AxisAim])
	}
	s.SetAxis(AxisAim, k.aim)
}
