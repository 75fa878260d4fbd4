package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"prenota/internal/domain"
)

// parseSlotTable converts the raw sheet values into the domain slot table.
// Row 0 is the header ("Ora", day names...); every following row is a time
// label plus per-day remaining counts. Blank or non-numeric capacity cells
// count as 0, rows without a time label are skipped.
func parseSlotTable(values [][]interface{}) (*domain.SlotTable, error) {
	if len(values) == 0 {
		return nil, ErrEmptyTable
	}

	headerRow := values[0]
	if len(headerRow) < 2 {
		return nil, fmt.Errorf("%w: header has no day columns", ErrEmptyTable)
	}

	header := make([]string, 0, len(headerRow)-1)
	for j, cell := range headerRow[1:] {
		label := cellString(cell)
		if label == "" && j < len(domain.DefaultDays) {
			// Sheets with a bare header fall back to the canonical week
			label = domain.DefaultDays[j]
		}
		header = append(header, label)
	}

	rows := make([]domain.SlotRow, 0, len(values)-1)
	for _, raw := range values[1:] {
		if len(raw) == 0 {
			continue
		}
		timeLabel := cellString(raw[0])
		if timeLabel == "" {
			continue
		}

		capacities := make([]int, len(header))
		for j := 0; j < len(header) && j+1 < len(raw); j++ {
			capacities[j] = cellInt(raw[j+1])
		}
		rows = append(rows, domain.SlotRow{Time: timeLabel, Capacities: capacities})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no time rows", ErrEmptyTable)
	}

	return &domain.SlotTable{Header: header, Rows: rows}, nil
}

// flattenColumn collapses a single-column value range into a string slice,
// dropping blanks
func flattenColumn(values [][]interface{}) []string {
	out := make([]string, 0, len(values))
	for _, row := range values {
		for _, cell := range row {
			if s := cellString(cell); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func cellInt(cell interface{}) int {
	n, err := strconv.Atoi(cellString(cell))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
