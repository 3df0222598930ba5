package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/vmath"
)

func TestActionStateEdges(t *testing.T) {
	s := NewActionState()

	s.SetButton(ActionCarve, true)
	if !s.JustPressed(ActionCarve) || !s.Pressed(ActionCarve) {
		t.Error("Expected just-pressed on first step")
	}
	s.Advance()
	if s.JustPressed(ActionCarve) {
		t.Error("Expected no just-pressed while held")
	}

	s.SetButton(ActionCarve, false)
	if !s.JustReleased(ActionCarve) {
		t.Error("Expected just-released after letting go")
	}
	s.Advance()
	if s.JustReleased(ActionCarve) {
		t.Error("Expected release edge to last one step")
	}
}

func TestActionStateAxisClamp(t *testing.T) {
	s := NewActionState()
	s.SetAxis(AxisMove, vmath.Vec2{X: 3, Y: 4})
	got := s.Axis(AxisMove)
	if vmath.V2Mag(got) > 1+1e-9 {
		t.Errorf("Expected unit-clamped axis, got %+v", got)
	}
	if !s.Active() {
		t.Error("Expected deflected axis to count as activity")
	}
}

func TestRegistryBindUnbind(t *testing.T) {
	r := NewRegistry()
	r.Bind(0, core.Entity(10))
	r.Bind(1, core.Entity(11))

	if p, ok := r.Player(1); !ok || p != 11 {
		t.Errorf("Expected player 11, got %d (ok=%v)", p, ok)
	}

	// Rebinding a player moves it off its old device
	r.Bind(2, core.Entity(10))
	if _, ok := r.Player(0); ok {
		t.Error("Expected device 0 unbound after player moved")
	}
	if d, _ := r.Device(10); d != 2 {
		t.Errorf("Expected device 2, got %d", d)
	}

	if p, ok := r.Unbind(1); !ok || p != 11 {
		t.Errorf("Expected unbind to return 11, got %d", p)
	}
	if r.Len() != 1 {
		t.Errorf("Expected 1 binding, got %d", r.Len())
	}
	if devs := r.Devices(); len(devs) != 1 || devs[0] != 2 {
		t.Errorf("Expected [2], got %v", devs)
	}
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("parry")
	if err != nil || a != ActionParry {
		t.Errorf("Expected parry, got %v (%v)", a, err)
	}
	if _, err := ParseAction("dance"); err == nil {
		t.Error("Expected unknown action error")
	}
	if ActionSet.String() != "set" {
		t.Errorf("Expected name set, got %s", ActionSet.String())
	}
}

func TestKeyboardHold(t *testing.T) {
	kb := NewKeyboard(DefaultKeyTable(), 100*time.Millisecond)
	s := NewActionState()
	start := time.Unix(0, 0)

	if !kb.Apply(tcell.KeyRune, 'p', start) {
		t.Fatal("Expected 'p' to be bound")
	}
	kb.Apply(tcell.KeyRight, 0, start)

	kb.Sync(s, start.Add(50*time.Millisecond))
	if !s.Pressed(ActionParry) {
		t.Error("Expected parry held inside hold window")
	}
	if got := s.Axis(AxisMove); got.X != 1 {
		t.Errorf("Expected move right, got %+v", got)
	}

	kb.Sync(s, start.Add(200*time.Millisecond))
	if s.Pressed(ActionParry) {
		t.Error("Expected parry released after hold window")
	}
	if got := s.Axis(AxisMove); got.X != 0 {
		t.Errorf("Expected move released, got %+v", got)
	}

	if kb.Apply(tcell.KeyRune, 'z', start) {
		t.Error("Expected 'z' unbound")
	}
}

func TestKeyboardAimPersists(t *testing.T) {
	kb := NewKeyboard(DefaultKeyTable(), 100*time.Millisecond)
	s := NewActionState()
	start := time.Unix(0, 0)

	kb.Apply(tcell.KeyRune, 'i', start)
	kb.Sync(s, start)
	if got := s.Axis(AxisAim); got.Y != 1 {
		t.Errorf("Expected aim up, got %+v", got)
	}

	kb.Sync(s, start.Add(time.Second))
	if got := s.Axis(AxisAim); got.Y != 1 {
		t.Errorf("Expected aim to persist, got %+v", got)
	}
}

func TestKeyboardCarveToggle(t *testing.T) {
	kb := NewKeyboard(DefaultKeyTable(), 100*time.Millisecond)
	s := NewActionState()
	start := time.Unix(0, 0)

	kb.Apply(tcell.KeyRune, 'c', start)
	kb.Sync(s, start.Add(time.Second))
	if !s.Pressed(ActionCarve) {
		t.Error("Expected carve held until toggled off")
	}

	kb.Apply(tcell.KeyRune, 'c', start.Add(time.Second))
	kb.Sync(s, start.Add(time.Second))
	if s.Pressed(ActionCarve) {
		t.Error("Expected carve released by the second press")
	}
}
