//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"vet-scheduler/internal/pkg/pgconv"
	"vet-scheduler/internal/pkg/ptr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	loc := time.FixedZone("COT", -5*60*60)

	pd := pgconv.DateToPgtype(time.Date(2025, 3, 10, 23, 30, 0, 0, loc))
	assert.True(t, pd.Valid)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), pd.Time)

	assert.False(t, pgconv.DateToPgtype(time.Time{}).Valid)
	assert.False(t, pgconv.DatePtrToPgtype(nil).Valid)
	assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestNullable(t *testing.T) {
	assert.Nil(t, pgconv.Int64PtrFromPgtype(pgtype.Int8{}))
	assert.Equal(t, ptr.Of(int64(3)), pgconv.Int64PtrFromPgtype(pgconv.Int64PtrToPgtype(ptr.Of(int64(3)))))

	assert.Equal(t, "", pgconv.StringFromPgtype(pgtype.Text{}))
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(nil)))

	now := time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC)
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))
	assert.Equal(t, now, *pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("wrapped: %w", sql.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("other")))
}
