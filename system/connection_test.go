package system

import (
	"testing"

	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/vmath"
)

func TestConnectionLifecycle(t *testing.T) {
	f := newFixture(20, 20)
	f.w.Resources.Spawns = []vmath.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}
	f.w.AddSystem(NewConnectionSystem(f.w))

	f.w.PushEvent(event.EventDeviceConnected, &event.DevicePayload{Device: 0})
	f.w.PushEvent(event.EventDeviceConnected, &event.DevicePayload{Device: 5})
	f.w.PushEvent(event.EventDeviceConnected, &event.DevicePayload{Device: 0})
	f.w.Step()

	devices := f.w.Resources.Devices
	if devices.Len() != 2 {
		t.Fatalf("Expected 2 bound devices, got %d", devices.Len())
	}
	if f.w.Components.Player.Count() != 2 {
		t.Errorf("Expected 2 players, got %d", f.w.Components.Player.Count())
	}
	p0, _ := devices.Player(0)
	p5, _ := devices.Player(5)
	if pos, _ := f.pw.Position(p0); pos != (vmath.Vec2{X: 1, Y: 2}) {
		t.Errorf("Expected first spawn (1,2), got %v", pos)
	}
	if pos, _ := f.pw.Position(p5); pos != (vmath.Vec2{X: 3, Y: 4}) {
		t.Errorf("Expected second spawn (3,4), got %v", pos)
	}
	if pc, _ := f.w.Components.Player.Get(p5); pc.Device != 5 {
		t.Errorf("Expected device 5 on player, got %d", pc.Device)
	}

	f.w.PushEvent(event.EventDeviceDisconnected, &event.DevicePayload{Device: 0})
	f.w.Step()

	if _, ok := devices.Player(input.DeviceID(0)); ok {
		t.Error("Expected device 0 unbound")
	}
	if f.w.Components.Player.Has(p0) || f.pw.Exists(p0) {
		t.Error("Expected player despawned")
	}
	if !f.w.Components.Player.Has(p5) {
		t.Error("Expected other player kept")
	}
}

func TestConnectionWithoutSpawns(t *testing.T) {
	f := newFixture(20, 20)
	f.w.AddSystem(NewConnectionSystem(f.w))

	f.w.PushEvent(event.EventDeviceConnected, &event.DevicePayload{Device: 1})
	f.w.PushEvent(event.EventDeviceDisconnected, &event.DevicePayload{Device: 9})
	f.w.Step()

	p, ok := f.w.Resources.Devices.Player(1)
	if !ok {
		t.Fatal("Expected device bound")
	}
	if pos, _ := f.pw.Position(p); pos != (vmath.Vec2{}) {
		t.Errorf("Expected origin spawn, got %v", pos)
	}
}
