package engine

import (
	"testing"

	apperrors "github.com/wricardo/mars-rover/mission/errors"
	"github.com/wricardo/mars-rover/mission/geometry"
)

func createTestPlateau(t *testing.T, width, height int) *Plateau {
	t.Helper()

	p, err := NewPlateau(width, height)
	if err != nil {
		t.Fatalf("Failed to create plateau %dx%d: %v", width, height, err)
	}

	expected, _ := geometry.NewRect(0, 0, width, height)
	if p.Bounds() != expected {
		t.Fatalf("Plateau bounds incorrect %s. Expected: %s", p.Bounds(), expected)
	}
	return p
}

func TestNewPlateau_InvalidLimits(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		field         string
	}{
		{"upper x less than zero", -1, 5, "x"},
		{"upper y less than zero", 5, -1, "y"},
		{"upper x zero", 0, 5, "x"},
		{"upper y zero", 5, 0, "y"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewPlateau(test.width, test.height)
			e, ok := apperrors.As(err)
			if !ok || e.Code != apperrors.CodeInvalidBounds {
				t.Fatalf("Expected INVALID_BOUNDS, got %v", err)
			}
			if e.Meta(apperrors.MetaField) != test.field {
				t.Errorf("Expected failing limit %s, got %s", test.field, e.Meta(apperrors.MetaField))
			}
		})
	}
}

func TestNewPlateauFromUpperRight(t *testing.T) {
	p, err := NewPlateauFromUpperRight(5, 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Bounds().Width() != 6 || p.Bounds().Height() != 5 {
		t.Errorf("Expected 6x5, got %dx%d", p.Bounds().Width(), p.Bounds().Height())
	}
	if _, err := NewPlateauFromUpperRight(-1, 3); !apperrors.IsCode(err, apperrors.CodeInvalidBounds) {
		t.Errorf("Expected INVALID_BOUNDS for negative upper x, got %v", err)
	}
}

func TestPlateau_GetCell(t *testing.T) {
	p := createTestPlateau(t, 6, 5)

	for x := 0; x < 6; x++ {
		for y := 0; y < 5; y++ {
			cell, err := p.GetCell(x, y)
			if err != nil {
				t.Fatalf("GetCell(%d, %d): unexpected error %v", x, y, err)
			}
			if cell.X() != x || cell.Y() != y {
				t.Errorf("Expected cell (%d, %d), got %s", x, y, cell)
			}
			if cell.Plateau() != p {
				t.Errorf("Cell %s does not point at its plateau", cell)
			}
			if cell.IsOccupied() {
				t.Errorf("Cell %s expected to be unoccupied", cell)
			}

			again, _ := p.GetCell(x, y)
			if again != cell {
				t.Errorf("Expected GetCell(%d, %d) to return the cached cell", x, y)
			}
		}
	}
}

func TestPlateau_GetCell_OutOfBounds(t *testing.T) {
	p := createTestPlateau(t, 3, 3)

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {10, 10}} {
		if _, err := p.GetCell(pt[0], pt[1]); !apperrors.IsCode(err, apperrors.CodeOutOfBounds) {
			t.Errorf("GetCell(%d, %d): expected OUT_OF_BOUNDS, got %v", pt[0], pt[1], err)
		}
	}
}

func TestPlateau_PlaceRover_Count(t *testing.T) {
	p := createTestPlateau(t, 4, 3)

	index := 0
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			rover, err := p.PlaceRover(x, y, Direction(index%NumDirections))
			if err != nil {
				t.Fatalf("PlaceRover(%d, %d): %v", x, y, err)
			}
			index++
			if p.RoverCount() != index {
				t.Errorf("Incorrect rover count: %d. Expected: %d.", p.RoverCount(), index)
			}

			cell, _ := p.GetCell(x, y)
			found, err := p.RoverAt(cell)
			if err != nil || found != rover {
				t.Errorf("Expected rover %s at cell %s, got %v (err %v)", rover.Name(), cell, found, err)
			}
		}
	}

	// A failed placement must not change the count
	if _, err := p.PlaceRover(0, 0, North); !apperrors.IsCode(err, apperrors.CodeCellOccupied) {
		t.Errorf("Expected CELL_OCCUPIED, got %v", err)
	}
	if _, err := p.PlaceRover(9, 9, North); !apperrors.IsCode(err, apperrors.CodeOutOfBounds) {
		t.Errorf("Expected OUT_OF_BOUNDS, got %v", err)
	}
	if p.RoverCount() != index {
		t.Errorf("Expected rover count to stay %d after failed placements, got %d", index, p.RoverCount())
	}

	rovers := p.Rovers()
	if len(rovers) != index || rovers[0].Name() != "Rvr0" || rovers[index-1].Name() != "Rvr11" {
		t.Errorf("Unexpected placement order: first %s, last %s", rovers[0].Name(), rovers[len(rovers)-1].Name())
	}
}

func TestPlateau_RoverAlreadyPresent(t *testing.T) {
	p := createTestPlateau(t, 3, 3)

	first, err := p.PlaceRover(2, 2, North)
	if err != nil {
		t.Fatalf("Unexpected error placing first rover: %v", err)
	}

	_, err = p.PlaceRover(2, 2, East)
	e, ok := apperrors.As(err)
	if !ok || e.Code != apperrors.CodeCellOccupied {
		t.Fatalf("Expected CELL_OCCUPIED, got %v", err)
	}
	if e.Meta(apperrors.MetaRover) != first.Name() {
		t.Errorf("Expected occupant %s, got %s", first.Name(), e.Meta(apperrors.MetaRover))
	}
	if p.RoverCount() != 1 {
		t.Errorf("Expected 1 rover, got %d", p.RoverCount())
	}
}

func TestPlateau_RoverAt(t *testing.T) {
	p := createTestPlateau(t, 3, 3)

	if _, err := p.RoverAt(nil); !apperrors.IsCode(err, apperrors.CodeNullArgument) {
		t.Errorf("Expected NULL_ARGUMENT for nil cell, got %v", err)
	}

	cell, _ := p.GetCell(1, 1)
	rover, err := p.RoverAt(cell)
	if err != nil || rover != nil {
		t.Errorf("Expected no rover at %s, got %v (err %v)", cell, rover, err)
	}

	// A cell from another plateau never matches
	other := createTestPlateau(t, 3, 3)
	if _, err := other.PlaceRover(1, 1, North); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rover, _ := p.RoverAt(cell); rover != nil {
		t.Errorf("Expected rover on another plateau to be invisible, got %s", rover)
	}
}

func TestCell_Rover(t *testing.T) {
	p := createTestPlateau(t, 3, 3)
	cell, _ := p.GetCell(1, 2)

	if _, err := cell.Rover(); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("Expected NOT_FOUND for empty cell, got %v", err)
	}

	placed, _ := p.PlaceRover(1, 2, South)
	if !cell.IsOccupied() {
		t.Errorf("Cell %s expected to be occupied by a rover", cell)
	}
	got, err := cell.Rover()
	if err != nil || got != placed {
		t.Errorf("Expected rover %s at %s, got %v (err %v)", placed.Name(), cell, got, err)
	}
}
