package domain

// BookingRecord is one row of the append-only booking log in the ledger.
// The log is the durable audit trail; the cache's Booked counters are a
// derived projection and are never read back from it.
type BookingRecord struct {
	Name string
	Day  string
	Time string
}
