package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"transit_manage/internal/models"
)

type recordFixture struct {
	fleet  *models.Fleet
	route  *models.Route
	driver *models.Member
}

func newRecordFixture(t *testing.T, r *Repos) recordFixture {
	t.Helper()
	fleet, err := r.Fleet.Create(ctx, nil, models.FleetInput{Name: ptr("Fleet 7")})
	require.NoError(t, err)
	route, err := r.Route.Create(ctx, nil, models.RouteInput{FleetID: &fleet.ID})
	require.NoError(t, err)
	for _, name := range []string{"speeding", "illegal parking", "red light"} {
		_, err := r.Violation.Create(ctx, nil, models.ViolationInput{Name: name})
		require.NoError(t, err)
	}
	return recordFixture{fleet: fleet, route: route, driver: seedMember(t, r, "Driver Gao", &route.ID)}
}

func recordInput(driverID uint, name string, d int) models.ViolationRecordInput {
	return models.ViolationRecordInput{
		DriverID:      driverID,
		Location:      "Main St",
		ViolationName: name,
		Time:          day(d),
	}
}

func TestViolationRecordRepo_CreateDerivesRouteAndFleet(t *testing.T) {
	r := newTestRepos(t)
	fx := newRecordFixture(t, r)

	record, err := r.ViolationRecord.Create(ctx, nil, recordInput(fx.driver.ID, "speeding", 1))
	require.NoError(t, err)
	require.NotNil(t, record.RouteID)
	require.NotNil(t, record.FleetID)
	assert.Equal(t, fx.route.ID, *record.RouteID)
	assert.Equal(t, fx.fleet.ID, *record.FleetID)

	got, err := r.ViolationRecord.Get(ctx, nil, record.ID)
	require.NoError(t, err)
	assert.Equal(t, fx.route.ID, *got.RouteID)
	assert.Equal(t, fx.fleet.ID, *got.FleetID)
	assert.True(t, day(1).Equal(got.Time))
}

func TestViolationRecordRepo_DriverWithoutRoute(t *testing.T) {
	r := newTestRepos(t)
	driver := seedMember(t, r, "Driver Tan", nil)

	record, err := r.ViolationRecord.Create(ctx, nil, recordInput(driver.ID, "speeding", 1))
	require.NoError(t, err)
	assert.Nil(t, record.RouteID)
	assert.Nil(t, record.FleetID)
}

func TestViolationRecordRepo_ExplicitValuesWin(t *testing.T) {
	r := newTestRepos(t)
	fx := newRecordFixture(t, r)
	otherRoute, err := r.Route.Create(ctx, nil, models.RouteInput{FleetID: &fx.fleet.ID})
	require.NoError(t, err)

	t.Run("explicit route leaves fleet unset", func(t *testing.T) {
		in := recordInput(fx.driver.ID, "speeding", 1)
		in.RouteID = models.Some(otherRoute.ID)
		record, err := r.ViolationRecord.Create(ctx, nil, in)
		require.NoError(t, err)
		assert.Equal(t, otherRoute.ID, *record.RouteID)
		assert.Nil(t, record.FleetID)
	})

	t.Run("explicit null route", func(t *testing.T) {
		in := recordInput(fx.driver.ID, "speeding", 1)
		in.RouteID = models.Null[uint]()
		record, err := r.ViolationRecord.Create(ctx, nil, in)
		require.NoError(t, err)
		assert.Nil(t, record.RouteID)
		assert.Nil(t, record.FleetID)
	})

	t.Run("explicit fleet with derived route", func(t *testing.T) {
		in := recordInput(fx.driver.ID, "speeding", 1)
		in.FleetID = models.Some[uint](77)
		record, err := r.ViolationRecord.Create(ctx, nil, in)
		require.NoError(t, err)
		assert.Equal(t, fx.route.ID, *record.RouteID)
		assert.Equal(t, uint(77), *record.FleetID)
	})

	t.Run("explicit null fleet with derived route", func(t *testing.T) {
		in := recordInput(fx.driver.ID, "speeding", 1)
		in.FleetID = models.Null[uint]()
		record, err := r.ViolationRecord.Create(ctx, nil, in)
		require.NoError(t, err)
		assert.Equal(t, fx.route.ID, *record.RouteID)
		assert.Nil(t, record.FleetID)
	})
}

func TestViolationRecordRepo_UnknownDriverFailsDerivation(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.ViolationRecord.Create(ctx, nil, recordInput(404, "speeding", 1))
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := r.ViolationRecord.List(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestViolationRecordRepo_UpdateDerivesAgain(t *testing.T) {
	r := newTestRepos(t)
	fx := newRecordFixture(t, r)

	in := recordInput(fx.driver.ID, "speeding", 1)
	in.RouteID = models.Null[uint]()
	record, err := r.ViolationRecord.Create(ctx, nil, in)
	require.NoError(t, err)
	require.Nil(t, record.RouteID)

	updated, err := r.ViolationRecord.Update(ctx, nil, record, recordInput(fx.driver.ID, "red light", 2))
	require.NoError(t, err)
	assert.Equal(t, record.ID, updated.ID)
	assert.Equal(t, "red light", updated.ViolationName)
	assert.Equal(t, fx.route.ID, *updated.RouteID)
	assert.Equal(t, fx.fleet.ID, *updated.FleetID)
	assert.True(t, day(2).Equal(updated.Time))

	_, err = r.ViolationRecord.Update(ctx, nil, &models.ViolationRecord{ID: 999}, recordInput(fx.driver.ID, "speeding", 1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViolationRecordRepo_StatByFleet(t *testing.T) {
	r := newTestRepos(t)
	fx := newRecordFixture(t, r)

	for i, name := range []string{"speeding", "speeding", "illegal parking"} {
		_, err := r.ViolationRecord.Create(ctx, nil, recordInput(fx.driver.ID, name, 10+i))
		require.NoError(t, err)
	}
	// outside the window
	_, err := r.ViolationRecord.Create(ctx, nil, recordInput(fx.driver.ID, "speeding", 20))
	require.NoError(t, err)
	// another fleet
	outsider := recordInput(fx.driver.ID, "red light", 11)
	outsider.FleetID = models.Some(fx.fleet.ID + 1)
	_, err = r.ViolationRecord.Create(ctx, nil, outsider)
	require.NoError(t, err)

	stats, err := r.ViolationRecord.StatByFleet(ctx, nil, day(10), day(12), fx.fleet.ID)
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, s := range stats {
		counts[s.ViolationName] = s.Count
	}
	assert.Equal(t, map[string]int64{"speeding": 2, "illegal parking": 1}, counts)

	empty, err := r.ViolationRecord.StatByFleet(ctx, nil, day(1), day(2), fx.fleet.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestViolationRecordRepo_ListByDriver(t *testing.T) {
	r := newTestRepos(t)
	fx := newRecordFixture(t, r)
	other := seedMember(t, r, "Driver Kong", nil)

	for d := 1; d <= 5; d++ {
		_, err := r.ViolationRecord.Create(ctx, nil, recordInput(fx.driver.ID, "speeding", d))
		require.NoError(t, err)
	}
	_, err := r.ViolationRecord.Create(ctx, nil, recordInput(other.ID, "speeding", 3))
	require.NoError(t, err)

	got, err := r.ViolationRecord.ListByDriver(ctx, nil, day(2), day(4), fx.driver.ID, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, day(4).Equal(got[0].Time))
	assert.True(t, day(2).Equal(got[2].Time))
	for _, rec := range got {
		assert.Equal(t, fx.driver.ID, rec.DriverID)
	}

	paged, err := r.ViolationRecord.ListByDriver(ctx, nil, day(1), day(5), fx.driver.ID, &models.Pagination{Page: 2, Size: 2})
	require.NoError(t, err)
	require.Len(t, paged, 2)
	assert.True(t, day(3).Equal(paged[0].Time))
	assert.True(t, day(2).Equal(paged[1].Time))

	_, err = r.ViolationRecord.ListByDriver(ctx, nil, day(1), day(5), fx.driver.ID, &models.Pagination{Page: 0, Size: 2})
	assert.ErrorIs(t, err, models.ErrInvalidPagination)
}

func TestViolationRecordRepo_Relations(t *testing.T) {
	r := newTestRepos(t)
	fx := newRecordFixture(t, r)
	recorder := seedMember(t, r, "Inspector Lin", nil)
	bus, err := r.Bus.Create(ctx, nil, models.BusInput{Number: "HB-001", RouteID: &fx.route.ID})
	require.NoError(t, err)

	in := recordInput(fx.driver.ID, "speeding", 1)
	in.BusNumber = &bus.Number
	in.RecorderID = &recorder.ID
	record, err := r.ViolationRecord.Create(ctx, nil, in)
	require.NoError(t, err)

	driver, err := r.ViolationRecord.Driver(ctx, nil, record)
	require.NoError(t, err)
	assert.Equal(t, fx.driver.ID, driver.ID)

	gotRecorder, err := r.ViolationRecord.Recorder(ctx, nil, record)
	require.NoError(t, err)
	assert.Equal(t, recorder.ID, gotRecorder.ID)

	gotBus, err := r.ViolationRecord.Bus(ctx, nil, record)
	require.NoError(t, err)
	assert.Equal(t, bus, gotBus)

	gotFleet, err := r.ViolationRecord.Fleet(ctx, nil, record)
	require.NoError(t, err)
	assert.Equal(t, fx.fleet.ID, gotFleet.ID)

	gotRoute, err := r.ViolationRecord.Route(ctx, nil, record)
	require.NoError(t, err)
	assert.Equal(t, fx.route.ID, gotRoute.ID)

	violation, err := r.ViolationRecord.Violation(ctx, nil, record)
	require.NoError(t, err)
	assert.Equal(t, "speeding", violation.Name)

	bare, err := r.ViolationRecord.Create(ctx, nil, recordInput(fx.driver.ID, "speeding", 2))
	require.NoError(t, err)
	_, err = r.ViolationRecord.Recorder(ctx, nil, bare)
	assert.ErrorIs(t, err, ErrMissingRelation)
	_, err = r.ViolationRecord.Bus(ctx, nil, bare)
	assert.ErrorIs(t, err, ErrMissingRelation)
}

func TestViolationRecordRepo_SharedTransactionRollsBack(t *testing.T) {
	r := newTestRepos(t)
	fx := newRecordFixture(t, r)

	err := r.Transaction(ctx, func(tx *gorm.DB) error {
		if _, err := r.ViolationRecord.Create(ctx, tx, recordInput(fx.driver.ID, "speeding", 1)); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.EqualError(t, err, "abort")

	all, err := r.ViolationRecord.List(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

// sqlRecorder keeps every statement gorm traces.
type sqlRecorder struct {
	gormlogger.Interface
	statements []string
}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func TestViolationRecordRepo_StatByFleetQuotesIdentifiersOnce(t *testing.T) {
	db := newTestDB(t)
	r := New(db, testLogger())
	fx := newRecordFixture(t, r)
	_, err := r.ViolationRecord.Create(ctx, nil, recordInput(fx.driver.ID, "speeding", 10))
	require.NoError(t, err)

	rec := &sqlRecorder{Interface: gormlogger.Discard}
	stats, err := r.ViolationRecord.StatByFleet(ctx, db.Session(&gorm.Session{Logger: rec}), day(1), day(31), fx.fleet.ID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, models.ViolationStat{ViolationName: "speeding", Count: 1}, *stats[0])

	require.Len(t, rec.statements, 1)
	sql := rec.statements[0]
	assert.Contains(t, sql, "GROUP BY `violationName`")
	assert.NotContains(t, sql, "`\"")
}
