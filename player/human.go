package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"tictactoe/game"
)

// Human asks for moves on a line-oriented text stream. Cells are numbered 1-9.
type Human struct {
	in       *bufio.Scanner
	out      io.Writer
	renderer *Renderer
}

func NewHuman(in io.Reader, out io.Writer, renderer *Renderer) *Human {
	if renderer == nil {
		renderer = NewRenderer(false)
	}
	return &Human{
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: renderer,
	}
}

// MakeMove reprompts until a number naming an empty cell is entered.
// It only fails when the input is exhausted.
func (h *Human) MakeMove(board game.Board) (game.Action, error) {
	for {
		h.renderer.Show(h.out, board)
		fmt.Fprint(h.out, "Your move (in cell index 1-9): ")
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read move: %w", err)
			}
			return 0, fmt.Errorf("failed to read move: %w", io.ErrUnexpectedEOF)
		}

		action, err := parseMove(h.in.Text())
		if err == nil && board[action] != game.Empty {
			err = fmt.Errorf("cell %d is taken: %w", action+1, game.ErrInvalidAction)
		}
		if err != nil {
			fmt.Fprintf(h.out, "Invalid move (%v); try again:\n\n", err)
			continue
		}
		return action, nil
	}
}

// Reward is a no-op, humans do not learn here.
func (h *Human) Reward(float64, game.Board) {}

func parseMove(text string) (game.Action, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", strings.TrimSpace(text))
	}
	action := game.Action(n - 1)
	if !action.Valid() {
		return 0, fmt.Errorf("cell %d out of range: %w", n, game.ErrInvalidAction)
	}
	return action, nil
}
