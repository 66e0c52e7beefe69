package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"bottom-right inside", 5, 4, true},
		{"right edge excluded", 6, 3, false},
		{"bottom edge excluded", 2, 5, false},
		{"left of rect", 1, 3, false},
		{"above rect", 2, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	x, y := NewRect(10, 4, 8, 6).Center()
	if x != 14 || y != 7 {
		t.Errorf("Center() = (%d, %d), expected (14, 7)", x, y)
	}
}

func TestFollow(t *testing.T) {
	tests := []struct {
		name               string
		focus, view, total int
		expected           int
	}{
		{"content fits exactly", 5, 20, 20, 0},
		{"content smaller is centered", 3, 20, 10, -5},
		{"focus near start clamps to zero", 2, 20, 100, 0},
		{"focus in middle is centered", 50, 20, 100, 40},
		{"focus near end clamps to last page", 98, 20, 100, 80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Follow(tc.focus, tc.view, tc.total); got != tc.expected {
				t.Errorf("Follow(%d, %d, %d) = %d, expected %d",
					tc.focus, tc.view, tc.total, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
}
