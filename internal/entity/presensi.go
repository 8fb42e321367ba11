package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Presensi is one check-in/check-out session. CheckOut is nil while
// the session is open; at most one open session may exist per user.
type Presensi struct {
	bun.BaseModel `bun:"table:presensi"`

	BasicEntity
	UserID      int        `json:"user_id" bun:"user_id"`
	Nama        string     `json:"nama" bun:"nama"`
	CheckIn     time.Time  `json:"check_in" bun:"check_in"`
	CheckOut    *time.Time `json:"check_out" bun:"check_out"`
	CheckInLat  *float64   `json:"check_in_lat,omitempty" bun:"check_in_lat"`
	CheckInLon  *float64   `json:"check_in_lon,omitempty" bun:"check_in_lon"`
	CheckOutLat *float64   `json:"check_out_lat,omitempty" bun:"check_out_lat"`
	CheckOutLon *float64   `json:"check_out_lon,omitempty" bun:"check_out_lon"`
	BuktiFoto   *string    `json:"bukti_foto,omitempty" bun:"bukti_foto"`
}
