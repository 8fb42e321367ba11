package presensi

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/auth"
	"presensi/backend/internal/entity"
	"presensi/backend/internal/pkg/repository/postgresql"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Presensi, error) {
	var detail entity.Presensi

	err := r.NewSelect().Model(&detail).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Presensi{}, web.NewRequestError(errors.New("Catatan presensi tidak ditemukan."), http.StatusNotFound)
	}
	if err != nil {
		return entity.Presensi{}, errors.Wrap(err, "selecting presensi")
	}

	return detail, nil
}

// CheckIn opens a session for the authenticated user. The open-session
// invariant is enforced twice: a fast existence probe for the friendly
// message, and the uq_presensi_open partial unique index for the race
// between two concurrent check-ins.
func (r Repository) CheckIn(ctx context.Context, request CheckInRequest) (Response, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return Response{}, err
	}

	exists, err := r.NewSelect().
		Model((*entity.Presensi)(nil)).
		Where("user_id = ? AND check_out IS NULL", claims.UserID).
		Exists(ctx)
	if err != nil {
		return Response{}, errors.Wrap(err, "checking open presensi")
	}
	if exists {
		return Response{}, web.NewRequestError(errors.New("Anda sudah melakukan check-in hari ini."), http.StatusBadRequest)
	}

	now := time.Now()
	row := entity.Presensi{
		UserID:      claims.UserID,
		Nama:        claims.UserName,
		CheckIn:     now,
		CheckInLat:  request.Latitude,
		CheckInLon:  request.Longitude,
		BuktiFoto:   request.EvidencePath,
		BasicEntity: entity.BasicEntity{CreatedAt: now},
	}

	_, err = r.NewInsert().Model(&row).Returning("id").Exec(ctx, &row.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return Response{}, web.NewRequestError(errors.New("Anda sudah melakukan check-in hari ini."), http.StatusBadRequest)
		}
		return Response{}, errors.Wrap(err, "creating presensi")
	}

	return toResponse(row), nil
}

// CheckOut closes the caller's open session.
func (r Repository) CheckOut(ctx context.Context, request CheckOutRequest) (Response, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return Response{}, err
	}

	var row entity.Presensi
	err = r.NewSelect().
		Model(&row).
		Where("user_id = ? AND check_out IS NULL", claims.UserID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, web.NewRequestError(errors.New("Tidak ditemukan catatan check-in yang aktif untuk Anda."), http.StatusNotFound)
	}
	if err != nil {
		return Response{}, errors.Wrap(err, "selecting open presensi")
	}

	now := time.Now()
	q := r.NewUpdate().Table("presensi").Where("id = ? AND check_out IS NULL", row.ID)
	q.Set("check_out = ?", now)
	q.Set("updated_at = ?", now)
	if request.Latitude != nil {
		q.Set("check_out_lat = ?", request.Latitude)
	}
	if request.Longitude != nil {
		q.Set("check_out_lon = ?", request.Longitude)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return Response{}, errors.Wrap(err, "updating presensi check-out")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		// Lost the race against another check-out on the same session.
		return Response{}, web.NewRequestError(errors.New("Tidak ditemukan catatan check-in yang aktif untuk Anda."), http.StatusNotFound)
	}

	row.CheckOut = &now
	row.CheckOutLat = request.Latitude
	row.CheckOutLon = request.Longitude

	return toResponse(row), nil
}

// Update applies a sparse patch. Only the record owner or an admin may
// edit; fields present in the patch overwrite the stored value.
func (r Repository) Update(ctx context.Context, request UpdateRequest) (Response, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return Response{}, err
	}

	row, err := r.GetById(ctx, request.ID)
	if err != nil {
		return Response{}, err
	}

	if row.UserID != claims.UserID && claims.Role != auth.RoleAdmin {
		return Response{}, web.NewRequestError(errors.New("Akses ditolak: Anda bukan pemilik catatan ini."), http.StatusForbidden)
	}

	checkIn := row.CheckIn
	checkOut := row.CheckOut

	q := r.NewUpdate().Table("presensi").Where("id = ?", request.ID)

	if request.CheckIn != nil {
		t, ok := parseTimestamp(*request.CheckIn)
		if !ok {
			return Response{}, web.NewRequestError(errors.Errorf("invalid checkIn value: %q", *request.CheckIn), http.StatusBadRequest)
		}
		checkIn = t
		q.Set("check_in = ?", t)
	}
	if request.CheckOut != nil {
		t, ok := parseTimestamp(*request.CheckOut)
		if !ok {
			return Response{}, web.NewRequestError(errors.Errorf("invalid checkOut value: %q", *request.CheckOut), http.StatusBadRequest)
		}
		checkOut = &t
		q.Set("check_out = ?", t)
	}
	if checkOut != nil && checkOut.Before(checkIn) {
		return Response{}, web.NewRequestError(errors.New("checkOut tidak boleh sebelum checkIn"), http.StatusBadRequest)
	}

	if request.Nama != nil {
		q.Set("nama = ?", *request.Nama)
	}
	if request.Latitude != nil {
		q.Set("check_in_lat = ?", request.Latitude)
	}
	if request.Longitude != nil {
		q.Set("check_in_lon = ?", request.Longitude)
	}
	if request.LatitudeOut != nil {
		q.Set("check_out_lat = ?", request.LatitudeOut)
	}
	if request.LongitudeOut != nil {
		q.Set("check_out_lon = ?", request.LongitudeOut)
	}
	q.Set("updated_at = ?", time.Now())

	if _, err = q.Exec(ctx); err != nil {
		return Response{}, errors.Wrap(err, "updating presensi")
	}

	updated, err := r.GetById(ctx, request.ID)
	if err != nil {
		return Response{}, err
	}

	return toResponse(updated), nil
}

// Delete removes a record permanently. Ownership is strict: not even
// admins may delete someone else's record.
func (r Repository) Delete(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	row, err := r.GetById(ctx, id)
	if err != nil {
		return err
	}

	if row.UserID != claims.UserID {
		return web.NewRequestError(errors.New("Akses ditolak: Anda bukan pemilik catatan ini."), http.StatusForbidden)
	}

	if _, err = r.NewDelete().Model((*entity.Presensi)(nil)).Where("id = ?", id).Exec(ctx); err != nil {
		return errors.Wrap(err, "deleting presensi")
	}

	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "SQLSTATE=23505")
}
