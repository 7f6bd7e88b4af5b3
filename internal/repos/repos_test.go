package repos

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"transit_manage/internal/config"
	"transit_manage/internal/models"
)

var ctx = context.Background()

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestDB opens a private in-memory store migrated with the production
// models. One connection keeps every query on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), config.GormConfig(gormlogger.Discard))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, config.Migrate(db))
	return db
}

func newTestRepos(t *testing.T) *Repos {
	t.Helper()
	return New(newTestDB(t), testLogger())
}

func ptr[T any](v T) *T {
	return &v
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
}

func seedMember(t *testing.T, r *Repos, name string, routeID *uint) *models.Member {
	t.Helper()
	m, err := r.Member.Create(ctx, nil, models.MemberInput{
		Name:      name,
		Gender:    models.GenderMale,
		BirthYear: 1985,
		Origin:    "Harbin",
		Phone:     "13800000000",
		IDNumber:  "230100198501010000",
		RouteID:   routeID,
	})
	require.NoError(t, err)
	return m
}
