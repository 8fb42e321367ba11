package presensi

import (
	"context"

	"presensi/backend/internal/entity"
	"presensi/backend/internal/repository/postgres/presensi"
)

type Presensi interface {
	GetById(ctx context.Context, id int) (entity.Presensi, error)
	CheckIn(ctx context.Context, request presensi.CheckInRequest) (presensi.Response, error)
	CheckOut(ctx context.Context, request presensi.CheckOutRequest) (presensi.Response, error)
	Update(ctx context.Context, request presensi.UpdateRequest) (presensi.Response, error)
	Delete(ctx context.Context, id int) error
}
