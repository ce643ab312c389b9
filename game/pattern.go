package game

// Pattern is a closed enumeration of the winning shapes a round can offer.
// Names coming off the wire that match nothing map to PatternUnsupported,
// which never evaluates true.
type Pattern int

const (
	PatternUnsupported Pattern = iota
	PatternFullHousie
	PatternAnyOneLine
	PatternTwoLines
	PatternEarlyFive
	PatternFourCorners
	PatternTShape
	PatternCrossPlus
	PatternLShape
	PatternBorderShape
	PatternFourCornerMiddle
)

var patternNames = map[Pattern]string{
	PatternFullHousie:       "full-housie",
	PatternAnyOneLine:       "any-one-line",
	PatternTwoLines:         "two-lines",
	PatternEarlyFive:        "early-five",
	PatternFourCorners:      "four-corners",
	PatternTShape:           "t-shape",
	PatternCrossPlus:        "cross-plus",
	PatternLShape:           "l-shape",
	PatternBorderShape:      "border-shape",
	PatternFourCornerMiddle: "four-corner-middle",
}

// ParsePattern maps a pattern name to its variant.
func ParsePattern(name string) Pattern {
	for p, n := range patternNames {
		if n == name {
			return p
		}
	}
	return PatternUnsupported
}

func (p Pattern) String() string {
	if n, ok := patternNames[p]; ok {
		return n
	}
	return "unsupported"
}

// Match reports whether the ticket satisfies the pattern given the called
// numbers. Pure and deterministic. A shape with no qualifying filled cells
// never matches.
func (p Pattern) Match(t Ticket, called NumberSet) bool {
	switch p {
	case PatternFullHousie:
		return p.matchFullHousie(t, called)
	case PatternAnyOneLine:
		return countFullRows(t, called) >= 1
	case PatternTwoLines:
		return countFullRows(t, called) >= 2
	case PatternEarlyFive:
		return p.matchEarlyFive(t, called)
	case PatternFourCorners:
		return p.matchFourCorners(t, called)
	case PatternTShape:
		return p.matchTShape(t, called)
	case PatternCrossPlus:
		return p.matchCrossPlus(t, called)
	case PatternLShape:
		return p.matchLShape(t, called)
	case PatternBorderShape:
		return p.matchBorderShape(t, called)
	case PatternFourCornerMiddle:
		return p.matchFourCornerMiddle(t, called)
	default:
		return false
	}
}

// Evaluate checks a ticket against a list of pattern names and returns
// name → matched. Unknown names evaluate to false rather than erroring.
func Evaluate(t Ticket, called NumberSet, names []string) map[string]bool {
	results := make(map[string]bool, len(names))
	for _, name := range names {
		results[name] = ParsePattern(name).Match(t, called)
	}
	return results
}

func (Pattern) matchFullHousie(t Ticket, called NumberSet) bool {
	nums := t.Numbers()
	return len(nums) > 0 && called.ContainsAll(nums)
}

// countFullRows counts rows whose filled cells are all called. Rows with no
// filled cells do not count.
func countFullRows(t Ticket, called NumberSet) int {
	count := 0
	for r := 0; r < TicketRows; r++ {
		nums := t.RowNumbers(r)
		if len(nums) > 0 && called.ContainsAll(nums) {
			count++
		}
	}
	return count
}

func (Pattern) matchEarlyFive(t Ticket, called NumberSet) bool {
	matched := 0
	for _, n := range t.Numbers() {
		if called.Contains(n) {
			matched++
		}
	}
	return matched >= 5
}

func corners(t Ticket) []int {
	var nums []int
	for _, n := range []int{t[0][0], t[0][TicketCols-1], t[TicketRows-1][0], t[TicketRows-1][TicketCols-1]} {
		if n > 0 {
			nums = append(nums, n)
		}
	}
	return nums
}

func (Pattern) matchFourCorners(t Ticket, called NumberSet) bool {
	c := corners(t)
	return len(c) == 4 && called.ContainsAll(c)
}

// T-shape: top row plus the fifth column. The column needs at least two
// filled cells and the junction cell must be present.
func (Pattern) matchTShape(t Ticket, called NumberSet) bool {
	col := t.ColumnNumbers(4)
	if len(col) < 2 || t[0][4] == 0 {
		return false
	}
	return called.ContainsAll(t.RowNumbers(0)) && called.ContainsAll(col)
}

// Cross-plus: middle row plus the fifth column, meeting at an empty center
// cell so the shapes form a plus rather than a T.
func (Pattern) matchCrossPlus(t Ticket, called NumberSet) bool {
	col := t.ColumnNumbers(4)
	if len(col) < 2 || t[1][4] != 0 {
		return false
	}
	return called.ContainsAll(t.RowNumbers(1)) && called.ContainsAll(col)
}

// L-shape: first column plus the bottom row, anchored at a filled
// bottom-left cell.
func (Pattern) matchLShape(t Ticket, called NumberSet) bool {
	col := t.ColumnNumbers(0)
	if len(col) < 2 || t[TicketRows-1][0] == 0 {
		return false
	}
	return called.ContainsAll(col) && called.ContainsAll(t.RowNumbers(TicketRows-1))
}

// Border: both outer columns and both outer rows, requiring the middle row
// to touch the border on at least one side.
func (Pattern) matchBorderShape(t Ticket, called NumberSet) bool {
	if t[1][0] == 0 && t[1][TicketCols-1] == 0 {
		return false
	}
	return called.ContainsAll(t.ColumnNumbers(0)) &&
		called.ContainsAll(t.ColumnNumbers(TicketCols-1)) &&
		called.ContainsAll(t.RowNumbers(0)) &&
		called.ContainsAll(t.RowNumbers(TicketRows-1))
}

func (Pattern) matchFourCornerMiddle(t Ticket, called NumberSet) bool {
	c := corners(t)
	middle := t[1][4]
	if middle == 0 || len(c) < 4 {
		return false
	}
	return called.ContainsAll(append(c, middle))
}
