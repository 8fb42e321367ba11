package book

import (
	"time"

	"github.com/uptrace/bun"
)

type GetListResponse struct {
	ID     int     `json:"id"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
}

type GetDetailByIdResponse struct {
	ID     int     `json:"id"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
}

type CreateRequest struct {
	Title  *string `json:"title" form:"title"`
	Author *string `json:"author" form:"author"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:books"`

	ID        int       `json:"id" bun:"-"`
	Title     *string   `json:"title" bun:"title"`
	Author    *string   `json:"author" bun:"author"`
	CreatedAt time.Time `json:"-" bun:"created_at"`
}

type UpdateRequest struct {
	ID     int     `json:"-" form:"-"`
	Title  *string `json:"title" form:"title"`
	Author *string `json:"author" form:"author"`
}
