package report

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/auth"
	"presensi/backend/internal/pkg/wib"
)

func strPtr(s string) *string { return &s }

func TestBuildWhereNoFilterAdmin(t *testing.T) {
	where, args, err := buildWhere(Filter{}, auth.Claims{UserID: 1, Role: auth.RoleAdmin})
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildWhereNonAdminAlwaysScoped(t *testing.T) {
	where, args, err := buildWhere(Filter{}, auth.Claims{UserID: 42, Role: auth.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "WHERE p.user_id = $1", where)
	require.Len(t, args, 1)
	assert.Equal(t, 42, args[0])
}

func TestBuildWhereNama(t *testing.T) {
	where, args, err := buildWhere(Filter{Nama: strPtr("bud")}, auth.Claims{UserID: 1, Role: auth.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "WHERE (p.nama ILIKE $1 OR u.nama ILIKE $2)", where)
	require.Len(t, args, 2)
	assert.Equal(t, "%bud%", args[0])
	assert.Equal(t, "%bud%", args[1])
}

func TestBuildWhereTanggalMode(t *testing.T) {
	where, args, err := buildWhere(Filter{
		Tanggal: strPtr("2024-01-10"),
		// Range parameters are ignored when tanggal is present.
		StartDate: strPtr("2024-01-01"),
		EndDate:   strPtr("2024-01-31"),
	}, auth.Claims{UserID: 1, Role: auth.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, "WHERE p.created_at BETWEEN $1 AND $2", where)
	require.Len(t, args, 2)

	start := args[0].(time.Time)
	end := args[1].(time.Time)
	assert.Equal(t, "2024-01-10 00:00:00+07:00", wib.FormatTimestamp(start))
	assert.Equal(t, 24*time.Hour-time.Millisecond, end.Sub(start))
}

func TestBuildWhereRangeMode(t *testing.T) {
	where, args, err := buildWhere(Filter{
		StartDate: strPtr("2024-01-01"),
		EndDate:   strPtr("2024-01-31"),
	}, auth.Claims{UserID: 7, Role: auth.RoleUser})
	require.NoError(t, err)

	assert.Equal(t, "WHERE p.check_in >= $1 AND p.check_in <= $2 AND p.user_id = $3", where)
	require.Len(t, args, 3)

	// The end bound reaches the last millisecond of the end day.
	end := args[1].(time.Time).In(wib.Location())
	assert.Equal(t, 31, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 7, args[2])
}

func TestBuildWhereStartOnly(t *testing.T) {
	where, args, err := buildWhere(Filter{
		StartDate: strPtr("2024-01-01"),
	}, auth.Claims{UserID: 1, Role: auth.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "WHERE p.check_in >= $1", where)
	assert.Len(t, args, 1)
}

func TestBuildWhereInvalidDate(t *testing.T) {
	_, _, err := buildWhere(Filter{Tanggal: strPtr("10-01-2024")}, auth.Claims{Role: auth.RoleAdmin})
	require.Error(t, err)
	re := web.GetRequestError(err)
	require.NotNil(t, re)
	assert.Equal(t, http.StatusBadRequest, re.Status)

	_, _, err = buildWhere(Filter{StartDate: strPtr("nanti")}, auth.Claims{Role: auth.RoleAdmin})
	require.Error(t, err)
}
