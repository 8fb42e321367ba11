package postgresql

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/auth"
)

// Database wraps the bun handle together with the request-scoped
// helpers every repository needs.
type Database struct {
	*bun.DB
}

// NewDatabase opens a bun handle over pgdriver for the given DSN.
func NewDatabase(dsn string, verbose bool) *Database {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(verbose)))

	return &Database{DB: db}
}

// CheckClaims returns the verified claims from the context. When roles
// are given the claims must carry one of them.
func (d *Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	claims, err := auth.GetClaims(ctx)
	if err != nil {
		return auth.Claims{}, err
	}
	if len(roles) > 0 && !claims.Authorized(roles...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
	}
	return claims, nil
}

// ValidateStruct checks that the named request fields were supplied.
func (d *Database) ValidateStruct(ptr interface{}, requiredFields ...string) error {
	return web.ValidateRequired(ptr, requiredFields...)
}
