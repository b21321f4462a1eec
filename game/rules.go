package game

type Status int

const (
	InProgress Status = iota
	Won
	Draw
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Outcome of evaluating a board. Winner is Empty unless Status is Won.
type Outcome struct {
	Status Status
	Winner Mark
}

func (o Outcome) Over() bool {
	return o.Status != InProgress
}

var lines = [8][3]int{
	// Rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// Columns
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// Diagonals
	{0, 4, 8}, {2, 4, 6},
}

// HasLine reports whether mark holds any complete row, column or diagonal.
func (b Board) HasLine(m Mark) bool {
	if m == Empty {
		return false
	}
	for _, line := range lines {
		if b[line[0]] == m && b[line[1]] == m && b[line[2]] == m {
			return true
		}
	}
	return false
}

// Evaluate checks the current mark before the other one; the first mark with a
// complete line wins. With no line, a full board is a draw.
func Evaluate(b Board, current, other Mark) Outcome {
	for _, m := range [2]Mark{current, other} {
		if b.HasLine(m) {
			return Outcome{Status: Won, Winner: m}
		}
	}
	if b.Full() {
		return Outcome{Status: Draw}
	}
	return Outcome{Status: InProgress}
}
