// Package wib formats timestamps in the fixed display timezone used by
// every presensi response: Asia/Jakarta (Waktu Indonesia Barat).
package wib

import "time"

const (
	// TimestampLayout renders 2024-01-10 08:00:00+07:00.
	TimestampLayout = "2006-01-02 15:04:05-07:00"
	// ClockLayout renders the human readable confirmation time.
	ClockLayout = "15:04:05"
)

var location *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// WIB has no DST transitions, so the fixed offset is equivalent.
		loc = time.FixedZone("WIB", 7*60*60)
	}
	location = loc
}

// Location returns the Asia/Jakarta location.
func Location() *time.Location {
	return location
}

// FormatTimestamp renders t as a stored-field timestamp in WIB.
func FormatTimestamp(t time.Time) string {
	return t.In(location).Format(TimestampLayout)
}

// FormatTimestampPtr renders an optional timestamp, keeping nil as nil
// so open sessions serialize their check_out as JSON null.
func FormatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}

// FormatClock renders just the wall clock portion in WIB.
func FormatClock(t time.Time) string {
	return t.In(location).Format(ClockLayout)
}

// StartOfDay returns midnight of t's day in WIB.
func StartOfDay(t time.Time) time.Time {
	tt := t.In(location)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, location)
}

// EndOfDay returns 23:59:59.999 of t's day in WIB, making date range
// filters inclusive of their end day.
func EndOfDay(t time.Time) time.Time {
	tt := t.In(location)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 23, 59, 59, 999000000, location)
}
