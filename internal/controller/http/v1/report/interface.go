package report

import (
	"context"

	"presensi/backend/internal/repository/postgres/report"
)

type Report interface {
	GetDaily(ctx context.Context, filter report.Filter) ([]report.GetReportResponse, error)
}
