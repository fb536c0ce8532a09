package core

import "testing"

func TestClampF(t *testing.T) {
	tests := []struct {
		name              string
		val, lo, hi, want float64
	}{
		{"inside", 0.875, 0, 1, 0.875},
		{"below", -1.5, 0, 1, 0},
		{"above", 1.25, 0, 1, 1},
		{"at bounds", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampF(tt.val, tt.lo, tt.hi); got != tt.want {
				t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.val, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(15*10, 40) != 40 {
		t.Error("Min should cap a margin at the grid quarter")
	}
	if Min(-3, 2) != -3 {
		t.Error("Min(-3, 2) should be -3")
	}
	if Max(0, 412) != 412 {
		t.Error("Max(0, 412) should be 412")
	}
	if Max(7, 7) != 7 {
		t.Error("Max(7, 7) should be 7")
	}
}
