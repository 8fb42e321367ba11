package book

import (
	"context"

	"presensi/backend/internal/repository/postgres/book"
)

type Book interface {
	GetList(ctx context.Context) ([]book.GetListResponse, error)
	GetDetailById(ctx context.Context, id int) (book.GetDetailByIdResponse, error)
	Create(ctx context.Context, request book.CreateRequest) (book.CreateResponse, error)
	UpdateAll(ctx context.Context, request book.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
