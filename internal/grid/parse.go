// Package grid holds the colored map of the environment: the color
// enumeration, the textual map parser, and the beep counters the scoring
// logic mutates.
package grid

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrBadMap is wrapped by every map parsing failure.
var ErrBadMap = errors.New("malformed map")

// separator is stripped from map lines wherever it appears. It lets map
// files carry a visual column divider without affecting geometry.
const separator = "|"

// Parse turns a textual map into a Grid. Each line is one row; each
// character one cell, mapped through the fixed character table (space is
// blank, '#' is a wall, lowercase and uppercase letters are the palette
// colors). The origin (0,0) is the top-left character: x grows rightward
// along a line, y grows downward across lines. That convention is shared by
// the motion model (DOWN increments y) and must be shared by any renderer.
//
// The input must be rectangular and non-empty; unknown characters are
// rejected.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.ReplaceAll(line, separator, "")
	}
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return nil, fmt.Errorf("%w: no rows", ErrBadMap)
	}
	columns := len(lines[0])
	if columns == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrBadMap)
	}

	cells := make([][]Cell, len(lines))
	for y, line := range lines {
		if len(line) != columns {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadMap, y, len(line), columns)
		}
		row := make([]Cell, columns)
		for x := 0; x < columns; x++ {
			color, ok := charToColor[line[x]]
			if !ok {
				return nil, fmt.Errorf("%w: unknown character %q at row %d column %d", ErrBadMap, line[x], y, x)
			}
			row[x] = Cell{X: x, Y: y, Color: color}
		}
		cells[y] = row
	}
	return newGrid(cells), nil
}

// ParseFile reads and parses a map file.
func ParseFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}
