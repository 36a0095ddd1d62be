package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadNotation = errors.New("bad cell notation")

// Cell is a zero-based board coordinate. Rows grow toward the sheep's exit edge.
type Cell struct {
	Row int
	Col int
}

// String renders the cell as <column letters><1-based row>, e.g. (4,6) -> G5.
func (c Cell) String() string {
	return columnName(c.Col) + strconv.Itoa(c.Row+1)
}

// columnName uses bijective base-26: A..Z, AA, AB, ...
func columnName(col int) string {
	if col < 0 {
		return "?"
	}
	var b []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}

// ParseCell is the inverse of Cell.String.
func ParseCell(s string) (Cell, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	i := 0
	col := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		col = col*26 + int(s[i]-'A'+1)
		i++
	}
	if i == 0 || i == len(s) {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	row, err := strconv.Atoi(s[i:])
	if err != nil || row < 1 {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	return Cell{Row: row - 1, Col: col - 1}, nil
}

// InBounds reports whether the cell lies on a width x height board.
func (c Cell) InBounds(width, height int) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < height && c.Col < width
}
