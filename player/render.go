package player

import (
	"fmt"
	"io"
	"strings"
	"tictactoe/game"

	"github.com/logrusorgru/aurora"
)

// Renderer draws the board as a 3x3 grid. Empty cells show their 1-based index.
type Renderer struct {
	au aurora.Aurora
}

func NewRenderer(colors bool) *Renderer {
	return &Renderer{au: aurora.NewAurora(colors)}
}

func (r *Renderer) Render(board game.Board) string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			i := 3*row + col
			switch board[i] {
			case game.MarkA:
				cells[col] = r.au.Blue(game.MarkA.String()).String()
			case game.MarkB:
				cells[col] = r.au.Red(game.MarkB.String()).String()
			default:
				cells[col] = fmt.Sprintf("%d", i+1)
			}
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) Show(w io.Writer, board game.Board) {
	fmt.Fprint(w, r.Render(board))
}

// Announce writes a one-line result message, highlighted when colors are on.
func (r *Renderer) Announce(w io.Writer, message string) {
	fmt.Fprintln(w, r.au.Green(message).String())
}
