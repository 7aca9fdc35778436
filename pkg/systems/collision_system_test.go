package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/collector/pkg/types"
)

func TestOverlaps(t *testing.T) {
	base := types.Rect{X: 100, Y: 100, W: 50, H: 50}

	tests := []struct {
		name string
		b    types.Rect
		want bool
	}{
		{"identical", base, true},
		{"partial overlap", types.Rect{X: 130, Y: 130, W: 50, H: 50}, true},
		{"contained", types.Rect{X: 110, Y: 110, W: 5, H: 5}, true},
		{"touching right edge", types.Rect{X: 150, Y: 100, W: 50, H: 50}, false},
		{"touching left edge", types.Rect{X: 50, Y: 100, W: 50, H: 50}, false},
		{"touching bottom edge", types.Rect{X: 100, Y: 150, W: 50, H: 50}, false},
		{"touching top edge", types.Rect{X: 100, Y: 50, W: 50, H: 50}, false},
		{"touching corner", types.Rect{X: 150, Y: 150, W: 10, H: 10}, false},
		{"disjoint", types.Rect{X: 300, Y: 300, W: 10, H: 10}, false},
		{"zero width inside", types.Rect{X: 120, Y: 120, W: 0, H: 10}, false},
		{"zero size inside", types.Rect{X: 120, Y: 120}, false},
		{"barely overlapping", types.Rect{X: 149.999, Y: 100, W: 10, H: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(base, tt.b); got != tt.want {
				t.Errorf("Overlaps(base, %+v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

// TestOverlapsSymmetric overlaps(a,b) == overlaps(b,a)
func TestOverlapsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	randRect := func() types.Rect {
		// 取整数坐标，制造大量恰好贴边的情况
		return types.Rect{
			X: float64(rng.Intn(20)),
			Y: float64(rng.Intn(20)),
			W: float64(rng.Intn(6)),
			H: float64(rng.Intn(6)),
		}
	}

	for i := 0; i < 5000; i++ {
		a, b := randRect(), randRect()
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("asymmetric result for %+v and %+v", a, b)
		}
	}
}

type box types.Rect

func (b box) Bounds() types.Rect { return types.Rect(b) }

func TestEntitiesOverlap(t *testing.T) {
	a := box{X: 0, Y: 0, W: 10, H: 10}
	b := box{X: 5, Y: 5, W: 10, H: 10}
	c := box{X: 10, Y: 0, W: 10, H: 10}

	if !EntitiesOverlap(a, b) {
		t.Error("Expected a and b to overlap")
	}
	if EntitiesOverlap(a, c) {
		t.Error("Edge-touching boxes should not overlap")
	}
}
