// Package tictactoe holds the pure 3x3 game rules. Room bookkeeping and
// player authorization live in the realtime coordinator.
package tictactoe

// Mark is one cell value on the board.
type Mark byte

const (
	Empty Mark = iota
	MarkX
	MarkO
)

// Cells is the board size, laid out row-major.
const Cells = 9

type Board [Cells]Mark

// The eight win lines: three rows, three columns, two diagonals.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func (m Mark) String() string {
	switch m {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// MarkForTurn maps turn parity onto a mark: even turns belong to the
// room creator (X), odd turns to the joiner (O).
func MarkForTurn(turn int) Mark {
	if turn%2 == 0 {
		return MarkX
	}
	return MarkO
}

// Winner returns the winning mark if any line holds three equal
// non-empty cells.
func Winner(b Board) (Mark, bool) {
	for _, line := range winLines {
		m := b[line[0]]
		if m != Empty && m == b[line[1]] && m == b[line[2]] {
			return m, true
		}
	}
	return Empty, false
}

func HasWinner(b Board) bool {
	_, ok := Winner(b)
	return ok
}

// Full reports whether every cell is occupied. A full board with no
// winner is a draw.
func Full(b Board) bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Strings renders the board the way clients display it: "" / "X" / "O"
// per cell.
func (b Board) Strings() []string {
	out := make([]string, Cells)
	for i, m := range b {
		out[i] = m.String()
	}
	return out
}
