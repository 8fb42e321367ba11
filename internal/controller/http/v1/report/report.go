package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/auth"
	"presensi/backend/internal/pkg/cache"
	"presensi/backend/internal/repository/postgres/report"
	"presensi/backend/internal/service"
)

type Controller struct {
	report Report
	cache  *cache.Cache
}

func NewController(report Report, cache *cache.Cache) *Controller {
	return &Controller{report: report, cache: cache}
}

func (uc Controller) filterFromQuery(c *web.Context) (report.Filter, error) {
	var filter report.Filter

	if nama, ok := c.GetQueryFunc(reflect.String, "nama").(*string); ok {
		filter.Nama = nama
	}
	if startDate, ok := c.GetQueryFunc(reflect.String, "startDate").(*string); ok {
		filter.StartDate = startDate
	}
	if endDate, ok := c.GetQueryFunc(reflect.String, "endDate").(*string); ok {
		filter.EndDate = endDate
	}
	if tanggal, ok := c.GetQueryFunc(reflect.String, "tanggal").(*string); ok {
		filter.Tanggal = tanggal
	}

	return filter, c.ValidQuery()
}

func (uc Controller) GetDaily(c *web.Context) error {
	filter, err := uc.filterFromQuery(c)
	if err != nil {
		return c.RespondError(err)
	}

	claims, err := auth.GetClaims(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	key := cacheKey(claims, filter)
	if payload := uc.cache.Get(c.Ctx, key); payload != nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return nil
	}

	list, err := uc.report.GetDaily(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	body := map[string]interface{}{
		"message": "Laporan presensi berhasil diambil",
		"data":    list,
		"status":  true,
	}
	if payload, err := json.Marshal(body); err == nil {
		uc.cache.Set(c.Ctx, key, payload)
	}

	return c.Respond(body, http.StatusOK)
}

func (uc Controller) Export(c *web.Context) error {
	filter, err := uc.filterFromQuery(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := uc.report.GetDaily(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	payload, err := service.ReportToExcel(list)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Disposition", `attachment; filename="laporan_presensi.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", payload)
	return nil
}

func (uc Controller) ExportPDF(c *web.Context) error {
	filter, err := uc.filterFromQuery(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := uc.report.GetDaily(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	payload, err := service.ReportToPDF(list)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Disposition", `attachment; filename="laporan_presensi.pdf"`)
	c.Data(http.StatusOK, "application/pdf", payload)
	return nil
}

// cacheKey scopes cached pages to the caller so a non-admin can never
// be served an admin's unscoped report.
func cacheKey(claims auth.Claims, filter report.Filter) string {
	return fmt.Sprintf("report:daily:%d:%s:%s:%s:%s:%s",
		claims.UserID,
		claims.Role,
		deref(filter.Nama),
		deref(filter.StartDate),
		deref(filter.EndDate),
		deref(filter.Tanggal),
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
