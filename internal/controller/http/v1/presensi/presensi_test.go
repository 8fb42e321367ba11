package presensi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/auth"
	"presensi/backend/internal/entity"
	"presensi/backend/internal/repository/postgres/presensi"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePresensi struct {
	checkInResponse  presensi.Response
	checkInErr       error
	checkOutResponse presensi.Response
	checkOutErr      error
	updateResponse   presensi.Response
	updateErr        error
	updateCalled     bool
	deleteErr        error
	getByIdResponse  entity.Presensi
	getByIdErr       error
}

func (f *fakePresensi) GetById(ctx context.Context, id int) (entity.Presensi, error) {
	return f.getByIdResponse, f.getByIdErr
}

func (f *fakePresensi) CheckIn(ctx context.Context, request presensi.CheckInRequest) (presensi.Response, error) {
	return f.checkInResponse, f.checkInErr
}

func (f *fakePresensi) CheckOut(ctx context.Context, request presensi.CheckOutRequest) (presensi.Response, error) {
	return f.checkOutResponse, f.checkOutErr
}

func (f *fakePresensi) Update(ctx context.Context, request presensi.UpdateRequest) (presensi.Response, error) {
	f.updateCalled = true
	return f.updateResponse, f.updateErr
}

func (f *fakePresensi) Delete(ctx context.Context, id int) error {
	return f.deleteErr
}

func withClaims(claims auth.Claims) web.Middleware {
	return func(h web.Handler) web.Handler {
		return func(c *web.Context) error {
			c.Ctx = context.WithValue(c.Ctx, auth.Key, claims)
			return h(c)
		}
	}
}

func newTestApp(fake *fakePresensi, requireLocation, requireEvidence bool, mediaDir string) *web.App {
	uc := NewController(fake, requireLocation, requireEvidence, mediaDir, "http://localhost:5001")
	claims := withClaims(auth.Claims{UserID: 3, UserName: "Budi", Role: auth.RoleUser})

	app := web.NewApp(zerolog.Nop())
	app.Post("/api/v1/presensi/check-in", uc.CheckIn, claims)
	app.Post("/api/v1/presensi/check-out", uc.CheckOut, claims)
	app.Put("/api/v1/presensi/:id", uc.Update, claims)
	app.Delete("/api/v1/presensi/:id", uc.Delete, claims)
	app.Get("/api/v1/presensi/:id/qrcode", uc.GetQRCode, claims)
	return app
}

func doJSON(app *web.App, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.ServeHTTP(w, req)
	return w
}

func TestCheckInSuccess(t *testing.T) {
	fake := &fakePresensi{
		checkInResponse: presensi.Response{
			ID:      1,
			UserID:  3,
			Nama:    "Budi",
			CheckIn: "2024-01-10 08:00:00+07:00",
		},
	}
	app := newTestApp(fake, true, false, t.TempDir())

	w := doJSON(app, http.MethodPost, "/api/v1/presensi/check-in", `{"latitude":-6.2,"longitude":106.8}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Halo Budi, check-in Anda berhasil pada pukul 08:00:00 WIB", body["message"])
	assert.Equal(t, true, body["status"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "2024-01-10 08:00:00+07:00", data["checkIn"])
	assert.Nil(t, data["checkOut"])
}

func TestCheckInMissingLocation(t *testing.T) {
	fake := &fakePresensi{}
	app := newTestApp(fake, true, false, t.TempDir())

	w := doJSON(app, http.MethodPost, "/api/v1/presensi/check-in", `{"latitude":-6.2}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude dan longitude wajib diisi.")
}

func TestCheckInLocationOptional(t *testing.T) {
	fake := &fakePresensi{
		checkInResponse: presensi.Response{Nama: "Budi", CheckIn: "2024-01-10 08:00:00+07:00"},
	}
	app := newTestApp(fake, false, false, t.TempDir())

	w := doJSON(app, http.MethodPost, "/api/v1/presensi/check-in", `{}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCheckInMissingEvidence(t *testing.T) {
	fake := &fakePresensi{}
	app := newTestApp(fake, false, true, t.TempDir())

	w := doJSON(app, http.MethodPost, "/api/v1/presensi/check-in", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bukti_foto wajib diunggah.")
}

func TestCheckInConflict(t *testing.T) {
	fake := &fakePresensi{
		checkInErr: web.NewRequestError(errors.New("Anda sudah melakukan check-in hari ini."), http.StatusBadRequest),
	}
	app := newTestApp(fake, false, false, t.TempDir())

	w := doJSON(app, http.MethodPost, "/api/v1/presensi/check-in", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Anda sudah melakukan check-in hari ini.")
	assert.Contains(t, w.Body.String(), `"status":false`)
}

func TestCheckOutSuccess(t *testing.T) {
	checkOut := "2024-01-10 17:00:00+07:00"
	fake := &fakePresensi{
		checkOutResponse: presensi.Response{
			Nama:     "Budi",
			CheckIn:  "2024-01-10 08:00:00+07:00",
			CheckOut: &checkOut,
		},
	}
	app := newTestApp(fake, true, false, t.TempDir())

	w := doJSON(app, http.MethodPost, "/api/v1/presensi/check-out", `{"latitude":-6.2,"longitude":106.8}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Selamat jalan Budi, check-out Anda berhasil pada pukul 17:00:00 WIB", body["message"])
}

func TestCheckOutNoOpenSession(t *testing.T) {
	fake := &fakePresensi{
		checkOutErr: web.NewRequestError(errors.New("Tidak ditemukan catatan check-in yang aktif untuk Anda."), http.StatusNotFound),
	}
	app := newTestApp(fake, false, false, t.TempDir())

	w := doJSON(app, http.MethodPost, "/api/v1/presensi/check-out", `{}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Tidak ditemukan catatan check-in yang aktif untuk Anda.")
}

func TestUpdateEmptyPatchRejectedBeforeRepo(t *testing.T) {
	fake := &fakePresensi{}
	app := newTestApp(fake, false, false, t.TempDir())

	w := doJSON(app, http.MethodPut, "/api/v1/presensi/1", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Request body tidak berisi data yang valid untuk diupdate")
	assert.False(t, fake.updateCalled)
}

func TestUpdateNullFieldsAreAbsent(t *testing.T) {
	fake := &fakePresensi{}
	app := newTestApp(fake, false, false, t.TempDir())

	// JSON nulls bind as nil pointers, so an all-null patch is empty.
	w := doJSON(app, http.MethodPut, "/api/v1/presensi/1", `{"checkOut":null,"nama":null}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, fake.updateCalled)
}

func TestUpdateSuccess(t *testing.T) {
	fake := &fakePresensi{
		updateResponse: presensi.Response{ID: 1, Nama: "Budi Baru", CheckIn: "2024-01-10 08:00:00+07:00"},
	}
	app := newTestApp(fake, false, false, t.TempDir())

	w := doJSON(app, http.MethodPut, "/api/v1/presensi/1", `{"nama":"Budi Baru"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, fake.updateCalled)
	assert.Contains(t, w.Body.String(), "Data presensi berhasil diperbarui.")
}

func TestUpdateForbidden(t *testing.T) {
	fake := &fakePresensi{
		updateErr: web.NewRequestError(errors.New("Akses ditolak: Anda bukan pemilik catatan ini."), http.StatusForbidden),
	}
	app := newTestApp(fake, false, false, t.TempDir())

	w := doJSON(app, http.MethodPut, "/api/v1/presensi/9", `{"nama":"x"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateInvalidIDParam(t *testing.T) {
	fake := &fakePresensi{}
	app := newTestApp(fake, false, false, t.TempDir())

	w := doJSON(app, http.MethodPut, "/api/v1/presensi/abc", `{"nama":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, fake.updateCalled)
}

func TestDeleteNoContent(t *testing.T) {
	fake := &fakePresensi{}
	app := newTestApp(fake, false, false, t.TempDir())

	w := doJSON(app, http.MethodDelete, "/api/v1/presensi/1", "")

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteNotFound(t *testing.T) {
	fake := &fakePresensi{
		deleteErr: web.NewRequestError(errors.New("Catatan presensi tidak ditemukan."), http.StatusNotFound),
	}
	app := newTestApp(fake, false, false, t.TempDir())

	w := doJSON(app, http.MethodDelete, "/api/v1/presensi/404", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetQRCodeOwner(t *testing.T) {
	fake := &fakePresensi{
		getByIdResponse: entity.Presensi{BasicEntity: entity.BasicEntity{ID: 1}, UserID: 3},
	}
	app := newTestApp(fake, false, false, t.TempDir())

	w := doJSON(app, http.MethodGet, "/api/v1/presensi/1/qrcode", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestGetQRCodeNotOwner(t *testing.T) {
	fake := &fakePresensi{
		getByIdResponse: entity.Presensi{BasicEntity: entity.BasicEntity{ID: 1}, UserID: 99},
	}
	app := newTestApp(fake, false, false, t.TempDir())

	w := doJSON(app, http.MethodGet, "/api/v1/presensi/1/qrcode", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}
