package presensi

import (
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/auth"
	"presensi/backend/internal/pkg/wib"
	"presensi/backend/internal/repository/postgres/presensi"
	"presensi/backend/internal/service"
)

type Controller struct {
	presensi Presensi

	requireLocation bool
	requireEvidence bool
	mediaBasePath   string
	baseURL         string
}

func NewController(presensi Presensi, requireLocation, requireEvidence bool, mediaBasePath, baseURL string) *Controller {
	return &Controller{
		presensi:        presensi,
		requireLocation: requireLocation,
		requireEvidence: requireEvidence,
		mediaBasePath:   mediaBasePath,
		baseURL:         baseURL,
	}
}

func (uc Controller) CheckIn(c *web.Context) error {
	var request presensi.CheckInRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	if uc.requireLocation && (request.Latitude == nil || request.Longitude == nil) {
		return c.RespondError(web.NewRequestError(errors.New("latitude dan longitude wajib diisi."), http.StatusBadRequest))
	}
	if uc.requireEvidence && request.BuktiFoto == nil {
		return c.RespondError(web.NewRequestError(errors.New("bukti_foto wajib diunggah."), http.StatusBadRequest))
	}

	claims, err := auth.GetClaims(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if request.BuktiFoto != nil {
		path, err := service.UploadEvidence(request.BuktiFoto, uc.mediaBasePath, claims.UserID)
		if err != nil {
			return c.RespondError(err)
		}
		request.EvidencePath = &path
	}

	response, err := uc.presensi.CheckIn(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"message": fmt.Sprintf("Halo %s, check-in Anda berhasil pada pukul %s WIB", response.Nama, clockOf(response.CheckIn)),
		"data":    response,
		"status":  true,
	}, http.StatusCreated)
}

func (uc Controller) CheckOut(c *web.Context) error {
	var request presensi.CheckOutRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	if uc.requireLocation && (request.Latitude == nil || request.Longitude == nil) {
		return c.RespondError(web.NewRequestError(errors.New("latitude dan longitude wajib diisi."), http.StatusBadRequest))
	}

	response, err := uc.presensi.CheckOut(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	clock := ""
	if response.CheckOut != nil {
		clock = clockOf(*response.CheckOut)
	}

	return c.Respond(map[string]interface{}{
		"message": fmt.Sprintf("Selamat jalan %s, check-out Anda berhasil pada pukul %s WIB", response.Nama, clock),
		"data":    response,
		"status":  true,
	}, http.StatusOK)
}

func (uc Controller) Update(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request presensi.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	if !request.HasFields() {
		return c.RespondError(web.NewRequestError(
			errors.New("Request body tidak berisi data yang valid untuk diupdate (checkIn, checkOut, atau nama)."),
			http.StatusBadRequest,
		))
	}

	request.ID = id

	response, err := uc.presensi.Update(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"message": "Data presensi berhasil diperbarui.",
		"data":    response,
		"status":  true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.presensi.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.RespondNoContent(http.StatusNoContent)
}

// GetQRCode renders a PNG QR code pointing at the record detail, for
// verifying a printed report entry against the live record.
func (uc Controller) GetQRCode(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	claims, err := auth.GetClaims(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	row, err := uc.presensi.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}
	if row.UserID != claims.UserID && claims.Role != auth.RoleAdmin {
		return c.RespondError(web.NewRequestError(errors.New("Akses ditolak: Anda bukan pemilik catatan ini."), http.StatusForbidden))
	}

	png, err := qrcode.Encode(fmt.Sprintf("%s/api/v1/presensi/%d", uc.baseURL, id), qrcode.Medium, 256)
	if err != nil {
		return c.RespondError(errors.Wrap(err, "encoding qr"))
	}

	c.Data(http.StatusOK, "image/png", png)
	return nil
}

// clockOf extracts the HH:mm:ss portion of an already formatted
// timestamp for the greeting messages.
func clockOf(formatted string) string {
	t, err := time.Parse(wib.TimestampLayout, formatted)
	if err != nil {
		return formatted
	}
	return wib.FormatClock(t)
}
