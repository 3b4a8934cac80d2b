package db

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/plsapi/backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildCharbonListQuery(t *testing.T) {
	minDate := int64(1700000000)
	query, args := buildCharbonListQuery(model.CharbonFilter{
		Limit:      10,
		Offset:     20,
		CourseType: model.CourseTypeMath,
		CourseID:   "MT1",
		Sort:       model.CharbonSortDurationAsc,
		MinDate:    &minDate,
	})

	assert.Contains(t, query, "WHERE co.type = $1 AND c.course_id = $2 AND c.datetime >= $3")
	assert.NotContains(t, query, "c.datetime <=")
	assert.Contains(t, query, "ORDER BY c.duration ASC, c.id")
	assert.Contains(t, query, "LIMIT $4 OFFSET $5")
	assert.Equal(t, []any{"math", "MT1", minDate, 10, 20}, args)
}

func TestBuildCharbonListQueryDefaults(t *testing.T) {
	query, args := buildCharbonListQuery(model.CharbonFilter{Limit: 10, Sort: "bogus"})

	assert.NotContains(t, query, "\n\tWHERE ")
	assert.Equal(t, 1, strings.Count(query, "WHERE"), "only the host aggregate filter")
	assert.Contains(t, query, "ORDER BY c.datetime DESC, c.id")
	assert.Contains(t, query, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{10, 0}, args)
	assert.Equal(t, 1, strings.Count(query, "GROUP BY"))
}

func TestAnnouncementOrderBy(t *testing.T) {
	assert.Equal(t, "title ASC", announcementOrderBy(model.AnnouncementSortNameAsc))
	assert.Equal(t, "datetime DESC", announcementOrderBy(""))
	assert.Equal(t, "datetime DESC", announcementOrderBy("drop table"))
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/d?sslmode=disable", migrateURL("postgres://u:p@h:5432/d?sslmode=disable"))
	assert.Equal(t, "pgx5://u@h/d", migrateURL("postgresql://u@h/d"))
	assert.Equal(t, "pgx5://h/d", migrateURL("pgx5://h/d"))
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsNoRows(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("other")))

	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))

	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.True(t, IsConstraintViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.True(t, IsConstraintViolation(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	assert.False(t, IsConstraintViolation(errors.New("plain")))
}
