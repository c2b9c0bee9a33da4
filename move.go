package ncube

import (
	"strconv"
	"strings"
)

// Move represents a single 90-degree slice rotation: which axis, which
// layer along it, and the turn direction.
type Move struct {
	Axis     Axis // Always a positive principal axis
	Layer    int  // 0..dimensions-1
	Positive bool // Rotation direction
}

// Notation returns the notation string for this move.
// Examples: X0, X0', Y2, Z1'
func (m Move) Notation() string {
	s := m.Axis.String() + strconv.Itoa(m.Layer)
	if !m.Positive {
		s += "'"
	}
	return s
}

// Inverse returns the move that undoes this one: same axis and layer,
// opposite direction.
func (m Move) Inverse() Move {
	m.Positive = !m.Positive
	return m
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a notation string into a Move.
// Examples: X0, x0, Y12, Z3'
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Move{}, ErrInvalidNotation
	}

	var axis Axis
	switch s[0] {
	case 'X', 'x':
		axis = X
	case 'Y', 'y':
		axis = Y
	case 'Z', 'z':
		axis = Z
	default:
		return Move{}, ErrInvalidNotation
	}

	rest := s[1:]
	positive := true
	if strings.HasSuffix(rest, "'") || strings.HasSuffix(rest, "`") {
		positive = false
		rest = rest[:len(rest)-1]
	}

	layer, err := strconv.Atoi(rest)
	if err != nil || layer < 0 {
		return Move{}, ErrInvalidNotation
	}

	return Move{Axis: axis, Layer: layer, Positive: positive}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "X0 Y2' Z1"
// Invalid moves are skipped.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			continue // Skip invalid moves
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
