package entity

import (
	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books"`

	BasicEntity
	Title  *string `json:"title" bun:"title"`
	Author *string `json:"author" bun:"author"`
}
