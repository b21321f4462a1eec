package game

import (
	"fmt"
	"strings"
)

// Board holds the 9 cells in row-major order. It is a value type: assigning or
// passing a Board copies it, so a copy is a snapshot of the game at that point.
type Board [Size]Mark

// NewBoard returns a board with the given marks, padding with Empty.
func NewBoard(marks ...Mark) Board {
	var b Board
	copy(b[:], marks)
	return b
}

// LegalActions returns the indices of empty cells in ascending order.
func (b Board) LegalActions() []Action {
	actions := make([]Action, 0, Size)
	for i, m := range b {
		if m == Empty {
			actions = append(actions, Action(i))
		}
	}
	return actions
}

// Place writes mark into the cell. A cell is written at most once.
func (b *Board) Place(a Action, m Mark) error {
	if !a.Valid() {
		return fmt.Errorf("cell %d out of range: %w", a, ErrInvalidAction)
	}
	if b[a] != Empty {
		return fmt.Errorf("cell %d already holds %s: %w", a, b[a], ErrInvalidAction)
	}
	b[a] = m
	return nil
}

func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding mark.
func (b Board) Count(m Mark) int {
	n := 0
	for _, c := range b {
		if c == m {
			n++
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	for i, m := range b {
		if m == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(m.String())
		}
		if i%3 == 2 && i != Size-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
