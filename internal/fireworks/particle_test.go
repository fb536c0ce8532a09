package fireworks

import (
	"math"
	"testing"
)

func TestAdvanceFromRest(t *testing.T) {
	p := Particle{X: 10, Y: 5, MaxAge: 20, Brightness: 1}
	p.Advance()

	if p.Age != 1 {
		t.Errorf("Age = %d, expected 1", p.Age)
	}
	if p.X != 10 || p.Y != 5 {
		t.Errorf("position moved to (%f, %f) with zero velocity", p.X, p.Y)
	}
	if p.VY != Gravity {
		t.Errorf("VY = %f, expected gravity %f", p.VY, Gravity)
	}
	if p.Brightness != 1 {
		t.Errorf("Brightness = %f, expected 1 at age 0", p.Brightness)
	}
}

func TestAdvanceIntegratesThenAccelerates(t *testing.T) {
	p := Particle{X: 0, Y: 0, VX: 1, VY: -0.5, MaxAge: 10}
	p.Advance()

	if p.X != 1 || p.Y != -0.5 {
		t.Errorf("position = (%f, %f), expected (1, -0.5)", p.X, p.Y)
	}
	if math.Abs(p.VX-Drag) > 1e-12 {
		t.Errorf("VX = %f, expected %f after drag", p.VX, Drag)
	}
	if math.Abs(p.VY-(-0.5+Gravity)) > 1e-12 {
		t.Errorf("VY = %f, expected %f", p.VY, -0.5+Gravity)
	}

	p.Advance()
	if math.Abs(p.X-(1+Drag)) > 1e-12 {
		t.Errorf("X = %f after two ticks, expected %f", p.X, 1+Drag)
	}
}

func TestBrightnessDecay(t *testing.T) {
	p := Particle{MaxAge: 20, Brightness: 1}
	prev := p.Brightness

	for i := 0; i < 30; i++ {
		p.Advance()
		if p.Age != i+1 {
			t.Fatalf("Age = %d after %d updates", p.Age, i+1)
		}
		if p.Brightness < 0 || p.Brightness > 1 {
			t.Fatalf("Brightness %f out of [0, 1] at age %d", p.Brightness, p.Age)
		}
		if p.Brightness > prev {
			t.Fatalf("Brightness rose from %f to %f at age %d", prev, p.Brightness, p.Age)
		}
		prev = p.Brightness
	}
}

func TestBrightnessFormula(t *testing.T) {
	tests := []struct {
		age, maxAge int
		expected    float64
	}{
		{0, 20, 1},
		{5, 20, 0.875},
		{10, 20, 0.5},
		{15, 20, 0}, // negative before clamping
		{20, 20, 0},
		{100, 20, 0}, // long past its lifespan
		{3, 0, 0}, // degenerate lifespan
	}

	for _, tc := range tests {
		got := brightnessAt(tc.age, tc.maxAge)
		if math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("brightnessAt(%d, %d) = %f, expected %f", tc.age, tc.maxAge, got, tc.expected)
		}
	}
}

func TestBrightnessUsesAgeBeforeIncrement(t *testing.T) {
	p := Particle{Age: 10, MaxAge: 20}
	p.Advance()

	if p.Brightness != 0.5 {
		t.Errorf("Brightness = %f, expected 0.5 from age 10", p.Brightness)
	}
	if p.Age != 11 {
		t.Errorf("Age = %d, expected 11", p.Age)
	}
}

func TestExpired(t *testing.T) {
	p := Particle{MaxAge: 2}
	if p.Expired() {
		t.Error("fresh particle should not be expired")
	}
	p.Advance()
	if p.Expired() {
		t.Error("particle at age 1 of 2 should not be expired")
	}
	p.Advance()
	if !p.Expired() {
		t.Error("particle at age 2 of 2 should be expired")
	}
}

func TestColorClassString(t *testing.T) {
	if ClassTertiary.String() != "tertiary" {
		t.Errorf("ClassTertiary.String() = %q", ClassTertiary.String())
	}
	if ColorClass(9).String() != "unknown" {
		t.Errorf("unknown class should stringify as unknown")
	}
}
