package report

// Filter carries the raw daily-report query parameters. Tanggal selects
// the single-day variant (filtering on record creation time); StartDate
// and EndDate select the range variant over check-in time. The two
// modes are never combined.
type Filter struct {
	Nama      *string
	StartDate *string
	EndDate   *string
	Tanggal   *string
}

// UserRef is the minimal joined profile. The join is optional: a
// presensi row without a matching user still appears, with User nil.
type UserRef struct {
	Nama         *string `json:"nama"`
	Nim          *string `json:"nim"`
	ProgramStudi *string `json:"programStudi"`
	Email        *string `json:"email"`
}

type GetReportResponse struct {
	ID          int      `json:"id"`
	UserID      int      `json:"userId"`
	Nama        string   `json:"nama"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    *string  `json:"checkOut"`
	CheckInLat  *float64 `json:"checkInLat,omitempty"`
	CheckInLon  *float64 `json:"checkInLon,omitempty"`
	CheckOutLat *float64 `json:"checkOutLat,omitempty"`
	CheckOutLon *float64 `json:"checkOutLon,omitempty"`
	BuktiFoto   *string  `json:"buktiFoto,omitempty"`
	User        *UserRef `json:"user"`
}
