package types

import "testing"

func TestVectorPlus(t *testing.T) {
	a := Vector{X: 1.5, Y: -2}
	b := Vector{X: 3, Y: 4}

	got := a.Plus(b)
	if got.X != 4.5 || got.Y != 2 {
		t.Errorf("Expected (4.5, 2), got (%f, %f)", got.X, got.Y)
	}

	// 原值不变
	if a.X != 1.5 || a.Y != -2 {
		t.Errorf("Plus should not mutate receiver, got (%f, %f)", a.X, a.Y)
	}
}

func TestVectorTimes(t *testing.T) {
	v := Vector{X: 2, Y: -3}

	got := v.Times(0.5)
	if got.X != 1 || got.Y != -1.5 {
		t.Errorf("Expected (1, -1.5), got (%f, %f)", got.X, got.Y)
	}

	if !v.Times(0).IsZero() {
		t.Error("Times(0) should be the zero vector")
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	for _, d := range []Direction{DirectionUp, DirectionLeft, DirectionDown, DirectionRight} {
		parsed, ok := ParseDirection(d.String())
		if !ok || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), parsed, ok)
		}
	}

	if _, ok := ParseDirection("diagonal"); ok {
		t.Error("unknown direction should not parse")
	}
}

func TestDirectionUnit(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Vector
	}{
		{DirectionUp, Vector{0, -1}},
		{DirectionLeft, Vector{-1, 0}},
		{DirectionDown, Vector{0, 1}},
		{DirectionRight, Vector{1, 0}},
		{DirectionNone, Zero},
	}

	for _, tt := range tests {
		if got := tt.dir.Unit(); got != tt.want {
			t.Errorf("%s.Unit() = %+v, want %+v", tt.dir, got, tt.want)
		}
	}
}
