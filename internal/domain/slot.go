package domain

import "fmt"

// Slot represents one bookable (time, day) cell of the weekly table
type Slot struct {
	ID       string // "<row>-<col>", stable within one cache generation
	Time     string // time label, e.g. "15:00"
	Day      string // day label from the table header
	Row      int    // 0-based data row index in the slot table
	Col      int    // 0-based day column index in the slot table
	Capacity int    // maximum simultaneous bookings
	Booked   int    // current in-memory reservations, 0 <= Booked <= Capacity
}

// SlotID builds the stable identifier for a (row, col) cell
func SlotID(row, col int) string {
	return fmt.Sprintf("%d-%d", row, col)
}

// Remaining returns the number of free spots in the slot
func (s *Slot) Remaining() int {
	return s.Capacity - s.Booked
}

// IsFull returns true if the slot has no free spots left
func (s *Slot) IsFull() bool {
	return s.Booked >= s.Capacity
}

// SlotRow is one raw row of the ledger's slot table: a time label plus
// the remaining-capacity figure for every day column
type SlotRow struct {
	Time       string
	Capacities []int
}

// SlotTable is the raw slot table as stored in the ledger.
// Header holds the day labels only, the time column is already stripped.
type SlotTable struct {
	Header []string
	Rows   []SlotRow
}

// Slots expands the raw table into the flat slot list consumed by the cache.
// Cell (i, j) becomes slot "i-j" with Booked = 0; the ledger-resident value
// is the authoritative remaining capacity at load time.
func (t *SlotTable) Slots() []*Slot {
	slots := make([]*Slot, 0, len(t.Rows)*len(t.Header))
	for i, row := range t.Rows {
		for j, capacity := range row.Capacities {
			if j >= len(t.Header) {
				break
			}
			slots = append(slots, &Slot{
				ID:       SlotID(i, j),
				Time:     row.Time,
				Day:      t.Header[j],
				Row:      i,
				Col:      j,
				Capacity: capacity,
			})
		}
	}
	return slots
}
