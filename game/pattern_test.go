package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullTicket has every cell filled, as in the classic demo ticket.
var fullTicket = Ticket{
	{5, 9, 72, 22, 32, 40, 56, 70, 88},
	{2, 12, 19, 28, 38, 48, 59, 72, 1},
	{3, 10, 18, 25, 37, 45, 60, 80, 90},
}

// sparseTicket is a realistic grid with blanks. Column 4 holds 41 and 49,
// the bottom-left cell is filled, but the middle row touches neither border
// column nor the center column.
var sparseTicket = Ticket{
	{5, 0, 22, 0, 41, 0, 63, 0, 88},
	{0, 14, 0, 35, 0, 56, 0, 77, 0},
	{8, 0, 27, 0, 49, 0, 66, 0, 90},
}

// borderTicket fills the middle row's first cell so the border shape
// qualifies.
var borderTicket = Ticket{
	{5, 0, 22, 0, 41, 0, 63, 0, 88},
	{2, 14, 0, 35, 0, 56, 0, 77, 0},
	{8, 0, 27, 0, 49, 0, 66, 0, 90},
}

// centerTicket fills the exact center cell for four-corner-middle.
var centerTicket = Ticket{
	{5, 0, 22, 0, 41, 0, 63, 0, 88},
	{0, 14, 0, 35, 38, 56, 0, 77, 0},
	{8, 0, 27, 0, 49, 0, 66, 0, 90},
}

func called(nums ...int) NumberSet {
	return NewNumberSet(nums)
}

func TestPatternMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		ticket  Ticket
		called  NumberSet
		want    bool
	}{
		{"one line from top row only", "any-one-line", fullTicket,
			called(5, 9, 72, 22, 32, 40, 56, 70, 88), true},
		{"full housie needs every row", "full-housie", fullTicket,
			called(5, 9, 72, 22, 32, 40, 56, 70, 88), false},
		{"full housie with all numbers called", "full-housie", fullTicket,
			called(5, 9, 72, 22, 32, 40, 56, 70, 88, 2, 12, 19, 28, 38, 48, 59, 1, 3, 10, 18, 25, 37, 45, 60, 80, 90), true},
		{"two lines with top and bottom", "two-lines", fullTicket,
			called(5, 9, 72, 22, 32, 40, 56, 70, 88, 3, 10, 18, 25, 37, 45, 60, 80, 90), true},
		{"two lines with only one row", "two-lines", fullTicket,
			called(5, 9, 72, 22, 32, 40, 56, 70, 88), false},
		{"early five exactly at threshold", "early-five", sparseTicket,
			called(5, 22, 41, 63, 88), true},
		{"early five one short", "early-five", sparseTicket,
			called(5, 22, 41, 63), false},
		{"four corners", "four-corners", sparseTicket,
			called(5, 88, 8, 90), true},
		{"four corners missing one", "four-corners", sparseTicket,
			called(5, 88, 8), false},
		{"t shape top row and center column", "t-shape", sparseTicket,
			called(5, 22, 41, 63, 88, 49), true},
		{"t shape column cell missing", "t-shape", sparseTicket,
			called(5, 22, 41, 63, 88), false},
		{"cross plus middle row and column", "cross-plus", sparseTicket,
			called(14, 35, 56, 77, 41, 49), true},
		{"cross plus needs empty center", "cross-plus", centerTicket,
			called(14, 35, 38, 56, 77, 41, 49), false},
		{"l shape first column and bottom row", "l-shape", sparseTicket,
			called(5, 8, 27, 49, 66, 90), true},
		{"l shape bottom row incomplete", "l-shape", sparseTicket,
			called(5, 8, 27, 49, 66), false},
		{"border needs middle row touching edge", "border-shape", sparseTicket,
			called(5, 22, 41, 63, 88, 8, 27, 49, 66, 90), false},
		{"border with left middle cell", "border-shape", borderTicket,
			called(5, 22, 41, 63, 88, 8, 27, 49, 66, 90, 2), true},
		{"four corner middle", "four-corner-middle", centerTicket,
			called(5, 88, 8, 90, 38), true},
		{"four corner middle empty center", "four-corner-middle", sparseTicket,
			called(5, 88, 8, 90), false},
		{"unknown pattern never matches", "zig-zag", fullTicket,
			called(5, 9, 72, 22, 32, 40, 56, 70, 88), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePattern(tt.pattern).Match(tt.ticket, tt.called)
			assert.Equal(t, tt.want, got)

			// Determinism: the same inputs always evaluate the same way.
			assert.Equal(t, got, ParsePattern(tt.pattern).Match(tt.ticket, tt.called))
		})
	}
}

func TestEvaluate(t *testing.T) {
	results := Evaluate(fullTicket,
		called(5, 9, 72, 22, 32, 40, 56, 70, 88),
		[]string{"any-one-line", "full-housie", "no-such-pattern"})

	assert.True(t, results["any-one-line"])
	assert.False(t, results["full-housie"])
	assert.False(t, results["no-such-pattern"])
}

func TestEmptyRowNeverWinsALine(t *testing.T) {
	ticket := Ticket{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{2, 12, 19, 28, 38, 48, 59, 72, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	// The empty rows must not count as completed lines.
	assert.False(t, ParsePattern("two-lines").Match(ticket, called(2, 12, 19, 28, 38, 48, 59, 72, 1)))
	assert.True(t, ParsePattern("any-one-line").Match(ticket, called(2, 12, 19, 28, 38, 48, 59, 72, 1)))
}

func TestParseTicketShape(t *testing.T) {
	_, err := ParseTicket([]byte(`[[1,2,3],[4,5,6]]`))
	require.Error(t, err)

	_, err = ParseTicket([]byte(`not json`))
	require.Error(t, err)

	grid, err := ParseTicket([]byte(`[[5,0,22,0,41,0,63,0,88],[0,14,0,35,0,56,0,77,0],[8,0,27,0,49,0,66,0,90]]`))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 22, 41, 63, 88}, grid.RowNumbers(0))
	assert.Equal(t, []int{41, 49}, grid.ColumnNumbers(4))
	assert.Len(t, grid.Numbers(), 14)
}
