package grid

// Color is one of the closed set of cell colors. The integer value of a
// Color is its observation encoding and is stable across a run.
type Color int

const (
	Blank Color = iota
	Wall
	Red
	Green
	Blue
	Yellow
	Pink
	Brown
	Gray
	Purple
	Orange

	numColors
)

// NumColors reports the size of the color enumeration, walls and blanks
// included. Observation consumers size their color dimension with this.
func NumColors() int {
	return int(numColors)
}

func (c Color) String() string {
	switch c {
	case Blank:
		return "blank"
	case Wall:
		return "wall"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Pink:
		return "pink"
	case Brown:
		return "brown"
	case Gray:
		return "gray"
	case Purple:
		return "purple"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// charToColor is the fixed character table of the map text format.
var charToColor = map[byte]Color{
	' ': Blank,
	'#': Wall,
	'r': Red,
	'g': Green,
	'b': Blue,
	'y': Yellow,
	'p': Pink,
	'o': Orange,
	'B': Brown,
	'G': Gray,
	'P': Purple,
}
