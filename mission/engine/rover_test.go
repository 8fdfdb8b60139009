package engine

import (
	"testing"

	apperrors "github.com/wricardo/mars-rover/mission/errors"
)

func TestRover_Move(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		dir          Direction
		wantX, wantY int
	}{
		{"north", 2, 2, North, 2, 3},
		{"east", 2, 2, East, 3, 2},
		{"south", 2, 2, South, 2, 1},
		{"west", 2, 2, West, 1, 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := createTestPlateau(t, 5, 5)
			rover, err := p.PlaceRover(test.x, test.y, test.dir)
			if err != nil {
				t.Fatalf("Failed to place rover: %v", err)
			}

			cell, err := rover.Move()
			if err != nil {
				t.Fatalf("Unexpected move error: %v", err)
			}
			if cell.X() != test.wantX || cell.Y() != test.wantY {
				t.Errorf("Expected (%d,%d), got %s", test.wantX, test.wantY, cell)
			}
			if rover.Cell() != cell {
				t.Error("Expected rover cell to be the returned cell")
			}
			if rover.Direction() != test.dir {
				t.Errorf("Expected direction to remain %s, got %s", test.dir, rover.Direction())
			}

			old, _ := p.GetCell(test.x, test.y)
			if old.IsOccupied() {
				t.Errorf("Expected %s to be vacated", old)
			}
			if !cell.IsOccupied() {
				t.Errorf("Expected %s to be occupied", cell)
			}
			if p.RoverCount() != 1 {
				t.Errorf("Expected rover count 1 after move, got %d", p.RoverCount())
			}
		})
	}
}

func TestRover_MoveOutOfBounds(t *testing.T) {
	edges := []struct {
		x, y int
		dir  Direction
	}{
		{0, 0, South},
		{0, 0, West},
		{4, 4, North},
		{4, 4, East},
	}

	for _, edge := range edges {
		p := createTestPlateau(t, 5, 5)
		rover, _ := p.PlaceRover(edge.x, edge.y, edge.dir)

		_, err := rover.Move()
		if !apperrors.IsCode(err, apperrors.CodeOutOfBounds) {
			t.Errorf("Move from (%d,%d) %s: expected OUT_OF_BOUNDS, got %v", edge.x, edge.y, edge.dir, err)
		}
		if rover.Position() != (Position{X: edge.x, Y: edge.y}) || rover.Direction() != edge.dir {
			t.Errorf("Expected rover unchanged at (%d,%d) %s, got %s", edge.x, edge.y, edge.dir, rover)
		}
	}
}

func TestRover_MoveIntoOccupiedCell(t *testing.T) {
	p := createTestPlateau(t, 5, 5)
	blocker, _ := p.PlaceRover(2, 3, South)
	rover, _ := p.PlaceRover(2, 2, North)

	_, err := rover.Move()
	e, ok := apperrors.As(err)
	if !ok || e.Code != apperrors.CodeCellOccupied {
		t.Fatalf("Expected CELL_OCCUPIED, got %v", err)
	}
	if e.Meta(apperrors.MetaRover) != blocker.Name() {
		t.Errorf("Expected blocking rover %s, got %s", blocker.Name(), e.Meta(apperrors.MetaRover))
	}
	if rover.Position() != (Position{X: 2, Y: 2}) {
		t.Errorf("Expected rover to stay at (2, 2), got %s", rover.Position())
	}
	if p.RoverCount() != 2 {
		t.Errorf("Expected rover count 2, got %d", p.RoverCount())
	}
}

func TestRover_Rotation(t *testing.T) {
	p := createTestPlateau(t, 3, 3)
	rover, _ := p.PlaceRover(1, 1, East)

	if got := rover.RotateLeft(); got != North {
		t.Errorf("Expected North, got %s", got)
	}
	if got := rover.RotateRight(); got != East {
		t.Errorf("Expected East after left+right, got %s", got)
	}

	for i := 0; i < 4; i++ {
		rover.RotateLeft()
	}
	if rover.Direction() != East {
		t.Errorf("Expected four left turns to restore East, got %s", rover.Direction())
	}

	for i := 0; i < 4; i++ {
		rover.RotateRight()
	}
	if rover.Direction() != East {
		t.Errorf("Expected four right turns to restore East, got %s", rover.Direction())
	}
	if rover.Position() != (Position{X: 1, Y: 1}) {
		t.Errorf("Expected rotation not to move the rover, got %s", rover.Position())
	}
}

func TestRover_NamesAndReport(t *testing.T) {
	p := createTestPlateau(t, 3, 3)
	first, _ := p.PlaceRover(0, 0, North)
	second, _ := p.PlaceRover(1, 2, West)

	if first.Name() != "Rvr0" || second.Name() != "Rvr1" {
		t.Errorf("Expected Rvr0 and Rvr1, got %s and %s", first.Name(), second.Name())
	}
	if second.Report() != "1 2 W" {
		t.Errorf("Expected report '1 2 W', got '%s'", second.Report())
	}
	if second.String() != "[Rvr1, (1, 2), W]" {
		t.Errorf("Unexpected string form: %s", second.String())
	}
	if second.Plateau() != p {
		t.Error("Expected rover to report its plateau")
	}
}
