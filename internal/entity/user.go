package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Nama         *string `json:"nama" bun:"nama"`
	Email        *string `json:"email" bun:"email"`
	Password     *string `json:"-" bun:"password"`
	Role         *string `json:"role" bun:"role"`
	Nim          *string `json:"nim" bun:"nim"`
	ProgramStudi *string `json:"program_studi" bun:"program_studi"`
}
