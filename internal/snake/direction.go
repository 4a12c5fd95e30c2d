package snake

import (
	"fmt"
	"strings"
)

// Direction is one of the four grid headings.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionNames = [...]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool { return d <= Left }

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Delta returns the unit step for d. y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// ParseDirection accepts a direction name or its first letter, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "right", "r":
		return Right, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	}
	return 0, fmt.Errorf("snake: unknown direction %q", s)
}

// Position is a cell on the board. X grows rightwards, Y downwards.
type Position struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d, without wrapping.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
