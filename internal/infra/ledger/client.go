package ledger

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/sheets/v4"

	"prenota/internal/domain"
)

// Client клиент для работы с Google Sheets как с ledger-хранилищем:
// таблица слотов + append-only журнал бронирований
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	slotSheet     string
	slotRange     string
	namesRange    string
	bookingsRange string
	metrics       MetricsCollector
	log           Logger
}

// Options ranges and sheet names the client operates on
type Options struct {
	SpreadsheetID string
	SlotSheet     string // sheet holding the slot table, used for write-back addressing
	SlotRange     string // e.g. "Slots!A1:F20", header row included
	NamesRange    string // e.g. "Nomi!A2:A"
	BookingsRange string // e.g. "Prenotazioni!A1:C1"
}

// NewClient создает новый экземпляр ledger-клиента.
// metrics может быть nil, если сбор метрик выключен.
func NewClient(svc *sheets.Service, opts Options, metrics MetricsCollector, log Logger) *Client {
	return &Client{
		svc:           svc,
		spreadsheetID: opts.SpreadsheetID,
		slotSheet:     opts.SlotSheet,
		slotRange:     opts.SlotRange,
		namesRange:    opts.NamesRange,
		bookingsRange: opts.BookingsRange,
		metrics:       metrics,
		log:           log,
	}
}

func (c *Client) observe(operation string, start time.Time, err error) {
	if c.metrics != nil {
		c.metrics.ObserveLedgerCall(operation, err, time.Since(start))
	}
}

// FetchSlotTable reads the full slot table (header row of day labels plus
// time rows with per-day remaining counts)
func (c *Client) FetchSlotTable(ctx context.Context) (table *domain.SlotTable, err error) {
	start := time.Now()
	defer func() { c.observe("fetch_slot_table", start, err) }()

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.slotRange).Context(ctx).Do()
	if err != nil {
		c.log.Error("FetchSlotTable: values.get %s failed: %v", c.slotRange, err)
		return nil, fmt.Errorf("%w: FetchSlotTable - values.get: %v", ErrUnavailable, err)
	}

	table, err = parseSlotTable(resp.Values)
	if err != nil {
		c.log.Error("FetchSlotTable: parse failed: %v", err)
		return nil, err
	}

	c.log.Info("FetchSlotTable: loaded %d rows, %d day columns", len(table.Rows), len(table.Header))
	return table, nil
}

// FetchNames reads the known-names column, flattened top to bottom
func (c *Client) FetchNames(ctx context.Context) (names []string, err error) {
	start := time.Now()
	defer func() { c.observe("fetch_names", start, err) }()

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.namesRange).Context(ctx).Do()
	if err != nil {
		c.log.Error("FetchNames: values.get %s failed: %v", c.namesRange, err)
		return nil, fmt.Errorf("%w: FetchNames - values.get: %v", ErrUnavailable, err)
	}

	names = flattenColumn(resp.Values)
	return names, nil
}

// AppendBooking appends one (name, day, time) row to the booking log
func (c *Client) AppendBooking(ctx context.Context, rec domain.BookingRecord) (err error) {
	start := time.Now()
	defer func() { c.observe("append_booking", start, err) }()

	vr := &sheets.ValueRange{
		Values: [][]interface{}{{rec.Name, rec.Day, rec.Time}},
	}

	_, err = c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.bookingsRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		c.log.Error("AppendBooking: values.append failed for name=%s day=%s time=%s: %v",
			rec.Name, rec.Day, rec.Time, err)
		return fmt.Errorf("%w: AppendBooking - values.append: %v", ErrWriteFailed, err)
	}

	return nil
}

// WriteSlotRemaining writes the slot's remaining count back to its cell in
// the slot table. Data rows start at sheet row 2, day columns at column B.
func (c *Client) WriteSlotRemaining(ctx context.Context, slot *domain.Slot) (err error) {
	start := time.Now()
	defer func() { c.observe("write_slot_remaining", start, err) }()

	cell := fmt.Sprintf("%s!%s%d", c.slotSheet, columnLetter(slot.Col), slot.Row+2)
	vr := &sheets.ValueRange{
		Values: [][]interface{}{{slot.Remaining()}},
	}

	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, cell, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		c.log.Error("WriteSlotRemaining: values.update %s failed for slot=%s: %v", cell, slot.ID, err)
		return fmt.Errorf("%w: WriteSlotRemaining - values.update: %v", ErrWriteFailed, err)
	}

	return nil
}

// columnLetter maps a 0-based day column index to its sheet column.
// Column A is the time column, so day 0 lives in column B.
func columnLetter(col int) string {
	return string(rune('B' + col))
}
