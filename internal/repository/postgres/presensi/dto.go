package presensi

import (
	"mime/multipart"
	"time"

	"presensi/backend/internal/entity"
	"presensi/backend/internal/pkg/wib"
)

type CheckInRequest struct {
	Latitude  *float64              `json:"latitude" form:"latitude"`
	Longitude *float64              `json:"longitude" form:"longitude"`
	BuktiFoto *multipart.FileHeader `json:"-" form:"bukti_foto"`

	// EvidencePath is filled by the controller after the upload has
	// been stored; the repository only records the reference.
	EvidencePath *string `json:"-" form:"-"`
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude" form:"latitude"`
	Longitude *float64 `json:"longitude" form:"longitude"`
}

// UpdateRequest is the sparse patch for PUT /presensi/:id. A nil field
// was not supplied and leaves the stored value untouched.
type UpdateRequest struct {
	ID           int      `json:"-" form:"-"`
	CheckIn      *string  `json:"checkIn" form:"checkIn"`
	CheckOut     *string  `json:"checkOut" form:"checkOut"`
	Nama         *string  `json:"nama" form:"nama"`
	Latitude     *float64 `json:"latitude" form:"latitude"`
	Longitude    *float64 `json:"longitude" form:"longitude"`
	LatitudeOut  *float64 `json:"latitudeOut" form:"latitudeOut"`
	LongitudeOut *float64 `json:"longitudeOut" form:"longitudeOut"`
}

// HasFields reports whether the patch carries at least one recognized key.
func (r UpdateRequest) HasFields() bool {
	return r.CheckIn != nil || r.CheckOut != nil || r.Nama != nil ||
		r.Latitude != nil || r.Longitude != nil ||
		r.LatitudeOut != nil || r.LongitudeOut != nil
}

// Response is a presensi record with its timestamps rendered in WIB.
type Response struct {
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
}

func toResponse(row entity.Presensi) Response {
	return Response{
		ID:          row.ID,
		UserID:      row.UserID,
		Nama:        row.Nama,
		CheckIn:     wib.FormatTimestamp(row.CheckIn),
		CheckOut:    wib.FormatTimestampPtr(row.CheckOut),
		CheckInLat:  row.CheckInLat,
		CheckInLon:  row.CheckInLon,
		CheckOutLat: row.CheckOutLat,
		CheckOutLon: row.CheckOutLon,
		BuktiFoto:   row.BuktiFoto,
	}
}

// timestampLayouts are the formats accepted for checkIn/checkOut patch
// values. Layouts without an offset are interpreted in WIB.
var timestampLayouts = []string{
	time.RFC3339,
	wib.TimestampLayout,
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, wib.Location()); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
