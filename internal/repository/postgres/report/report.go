package report

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/auth"
	"presensi/backend/internal/pkg/repository/postgresql"
	"presensi/backend/internal/pkg/wib"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetDaily returns the filtered presensi report, newest check-in first.
// Non-admin callers are always constrained to their own records, on top
// of whatever filters they supplied.
func (r Repository) GetDaily(ctx context.Context, filter Filter) ([]GetReportResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	whereQuery, args, err := buildWhere(filter, claims)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			p.id,
			p.user_id,
			p.nama,
			p.check_in,
			p.check_out,
			p.check_in_lat,
			p.check_in_lon,
			p.check_out_lat,
			p.check_out_lon,
			p.bukti_foto,
			u.id,
			u.nama,
			u.nim,
			u.program_studi,
			u.email
		FROM presensi p
		LEFT JOIN users u ON u.id = p.user_id
		%s
		ORDER BY p.check_in DESC
	`, whereQuery)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "selecting presensi report")
	}
	defer rows.Close()

	var list []GetReportResponse

	for rows.Next() {
		var (
			detail   GetReportResponse
			checkIn  time.Time
			checkOut *time.Time
			joinedID *int
			joined   UserRef
		)

		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.Nama,
			&checkIn,
			&checkOut,
			&detail.CheckInLat,
			&detail.CheckInLon,
			&detail.CheckOutLat,
			&detail.CheckOutLon,
			&detail.BuktiFoto,
			&joinedID,
			&joined.Nama,
			&joined.Nim,
			&joined.ProgramStudi,
			&joined.Email,
		); err != nil {
			return nil, errors.Wrap(err, "scanning presensi report")
		}

		detail.CheckIn = wib.FormatTimestamp(checkIn)
		detail.CheckOut = wib.FormatTimestampPtr(checkOut)
		if joinedID != nil {
			detail.User = &joined
		}

		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading presensi report")
	}

	return list, nil
}

// buildWhere assembles the WHERE clause with numbered placeholders.
func buildWhere(filter Filter, claims auth.Claims) (string, []interface{}, error) {
	var conds []string
	var args []interface{}

	next := func() int { return len(args) + 1 }

	if filter.Nama != nil {
		pattern := "%" + *filter.Nama + "%"
		conds = append(conds, fmt.Sprintf("(p.nama ILIKE $%d OR u.nama ILIKE $%d)", next(), next()+1))
		args = append(args, pattern, pattern)
	}

	if filter.Tanggal != nil {
		day, err := date.ParseDate(*filter.Tanggal)
		if err != nil {
			return "", nil, web.NewRequestError(errors.Wrap(err, "tanggal parse"), http.StatusBadRequest)
		}
		conds = append(conds, fmt.Sprintf("p.created_at BETWEEN $%d AND $%d", next(), next()+1))
		args = append(args, wib.StartOfDay(day.Time), wib.EndOfDay(day.Time))
	} else {
		if filter.StartDate != nil {
			start, err := date.ParseDate(*filter.StartDate)
			if err != nil {
				return "", nil, web.NewRequestError(errors.Wrap(err, "startDate parse"), http.StatusBadRequest)
			}
			conds = append(conds, fmt.Sprintf("p.check_in >= $%d", next()))
			args = append(args, wib.StartOfDay(start.Time))
		}
		if filter.EndDate != nil {
			end, err := date.ParseDate(*filter.EndDate)
			if err != nil {
				return "", nil, web.NewRequestError(errors.Wrap(err, "endDate parse"), http.StatusBadRequest)
			}
			conds = append(conds, fmt.Sprintf("p.check_in <= $%d", next()))
			args = append(args, wib.EndOfDay(end.Time))
		}
	}

	if claims.Role != auth.RoleAdmin {
		conds = append(conds, fmt.Sprintf("p.user_id = $%d", next()))
		args = append(args, claims.UserID)
	}

	if len(conds) == 0 {
		return "", args, nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args, nil
}
