package parameter

import (
	"math"
	"testing"
)

func TestDefaultTuningValid(t *testing.T) {
	tun := DefaultTuning()
	if err := tun.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
}

func TestTuningValidateRejects(t *testing.T) {
	tun := DefaultTuning()
	tun.World.StepSeconds = 0
	if err := tun.Validate(); err == nil {
		t.Error("Expected zero step to be rejected")
	}

	tun = DefaultTuning()
	tun.Player.CarveMax = tun.Player.CarveMin - 1
	if err := tun.Validate(); err == nil {
		t.Error("Expected inverted carve range to be rejected")
	}
}

func TestJumpSpeed(t *testing.T) {
	tun := DefaultTuning()
	want := math.Sqrt(2 * 981 * 350)
	if got := tun.JumpSpeed(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
