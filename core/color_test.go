package core

import "testing"

func TestRGBAScale(t *testing.T) {
	c := RGBA{200, 100, 50, 255}

	half := c.Scale(0.5)
	if half.R != 100 || half.G != 50 || half.B != 25 {
		t.Errorf("Expected {100 50 25}, got %+v", half)
	}
	if half.A != 255 {
		t.Errorf("Expected alpha preserved, got %d", half.A)
	}

	if got := c.Scale(2); got != c {
		t.Errorf("Expected factor >= 1 to return input, got %+v", got)
	}
	if got := c.Scale(-1); got.R != 0 || got.A != 255 {
		t.Errorf("Expected black with alpha, got %+v", got)
	}
}

func TestRGBABlend(t *testing.T) {
	dst := RGBA{0, 0, 0, 255}
	src := RGBA{200, 200, 200, 255}

	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("Expected dst at alpha 0, got %+v", got)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("Expected src at alpha 1, got %+v", got)
	}
	if got := dst.Blend(src, 0.5); got.R != 100 {
		t.Errorf("Expected R=100 at alpha 0.5, got %d", got.R)
	}
}
