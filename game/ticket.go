package game

import (
	"encoding/json"
	"fmt"
)

const (
	TicketRows = 3
	TicketCols = 9

	// MaxNumber is the highest callable housie number.
	MaxNumber = 90
)

// Ticket is a housie ticket grid: 3 rows by 9 columns, zero marking a blank
// cell. Filled cells hold distinct numbers in [1,90].
type Ticket [][]int

// ParseTicket decodes a stored ticket grid and validates its shape.
func ParseTicket(data []byte) (Ticket, error) {
	var t Ticket
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode ticket: %w", err)
	}
	if len(t) != TicketRows {
		return nil, fmt.Errorf("ticket has %d rows, want %d", len(t), TicketRows)
	}
	for i, row := range t {
		if len(row) != TicketCols {
			return nil, fmt.Errorf("ticket row %d has %d cells, want %d", i, len(row), TicketCols)
		}
	}
	return t, nil
}

// Numbers returns every filled cell on the ticket.
func (t Ticket) Numbers() []int {
	var nums []int
	for _, row := range t {
		for _, n := range row {
			if n > 0 {
				nums = append(nums, n)
			}
		}
	}
	return nums
}

// RowNumbers returns the filled cells of one row.
func (t Ticket) RowNumbers(r int) []int {
	var nums []int
	for _, n := range t[r] {
		if n > 0 {
			nums = append(nums, n)
		}
	}
	return nums
}

// ColumnNumbers returns the filled cells of one column, top to bottom.
func (t Ticket) ColumnNumbers(c int) []int {
	var nums []int
	for r := 0; r < TicketRows; r++ {
		if t[r][c] > 0 {
			nums = append(nums, t[r][c])
		}
	}
	return nums
}

// NumberSet answers membership queries over the called numbers of a round.
type NumberSet map[int]struct{}

func NewNumberSet(nums []int) NumberSet {
	s := make(NumberSet, len(nums))
	for _, n := range nums {
		s[n] = struct{}{}
	}
	return s
}

func (s NumberSet) Contains(n int) bool {
	_, ok := s[n]
	return ok
}

// ContainsAll reports whether every number is in the set.
func (s NumberSet) ContainsAll(nums []int) bool {
	for _, n := range nums {
		if !s.Contains(n) {
			return false
		}
	}
	return true
}
