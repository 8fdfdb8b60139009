package geometry

import (
	"testing"

	apperrors "github.com/wricardo/mars-rover/mission/errors"
)

func TestNewRect_InvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 3},
		{"negative width", -1, 3},
		{"zero height", 3, 0},
		{"negative height", 3, -5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewRect(0, 0, test.width, test.height)
			if !apperrors.IsCode(err, apperrors.CodeInvalidBounds) {
				t.Errorf("Expected INVALID_BOUNDS, got %v", err)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r, err := NewRect(2, -1, 3, 2)
	if err != nil {
		t.Fatalf("Failed to build rect: %v", err)
	}

	if r.UpperRightX() != 4 || r.UpperRightY() != 0 {
		t.Fatalf("Expected upper right (4,0), got (%d,%d)", r.UpperRightX(), r.UpperRightY())
	}

	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, -1, true},
		{4, 0, true},
		{3, 0, true},
		{1, 0, false},
		{5, 0, false},
		{2, -2, false},
		{2, 1, false},
	}

	for _, test := range tests {
		if got := r.Contains(test.x, test.y); got != test.expected {
			t.Errorf("Contains(%d, %d): expected %v, got %v", test.x, test.y, test.expected, got)
		}
	}
}

func TestRect_ValueEquality(t *testing.T) {
	a, _ := NewRect(0, 0, 6, 5)
	b, _ := NewRect(0, 0, 6, 5)
	c, _ := NewRect(0, 0, 5, 6)

	if a != b {
		t.Error("Expected rectangles built from the same values to be equal")
	}
	if a == c {
		t.Error("Expected rectangles with swapped sides to differ")
	}
	if a.String() != "(0,0)(5,4)" {
		t.Errorf("Expected string (0,0)(5,4), got %s", a.String())
	}
}
