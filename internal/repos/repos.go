package repos

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transit_manage/internal/models"
)

// Foreign key names used in MissingRelationError.
const (
	FieldCompanyID     = "companyId"
	FieldCaptainID     = "captainId"
	FieldFleetID       = "fleetId"
	FieldRouteID       = "routeId"
	FieldDriverID      = "driverId"
	FieldRecorderID    = "recorderId"
	FieldBusNumber     = "busNumber"
	FieldViolationName = "violationName"
	FieldStopName      = "stopName"
)

// Repos bundles every repository over one shared store handle.
type Repos struct {
	db *gorm.DB

	Company         CompanyRepo
	Fleet           FleetRepo
	Route           RouteRepo
	Member          MemberRepo
	Bus             BusRepo
	Stop            StopRepo
	StopRoute       StopRouteRepo
	Violation       ViolationRepo
	ViolationRecord ViolationRecordRepo
}

func New(db *gorm.DB, log *logrus.Logger) *Repos {
	log.Info("Wiring repos...")
	return &Repos{
		db:              db,
		Company:         NewCompanyRepo(db, log),
		Fleet:           NewFleetRepo(db, log),
		Route:           NewRouteRepo(db, log),
		Member:          NewMemberRepo(db, log),
		Bus:             NewBusRepo(db, log),
		Stop:            NewStopRepo(db, log),
		StopRoute:       NewStopRouteRepo(db, log),
		Violation:       NewViolationRepo(db, log),
		ViolationRecord: NewViolationRecordRepo(db, log),
	}
}

// Transaction runs fn in one transaction on the shared handle. Pass the
// tx it hands out to every repository call that must share the unit.
func (r *Repos) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// base is embedded by every repository.
type base struct {
	db  *gorm.DB
	log *logrus.Entry
	now func() time.Time
}

func newBase(db *gorm.DB, log *logrus.Logger, name string) base {
	return base{db: db, log: log.WithField("repo", name), now: time.Now}
}

// conn picks the caller's transaction when one is given.
func (b base) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return b.db
}

// stamp returns t, or the current time when t is zero.
func (b base) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return b.now()
	}
	return t
}

func col(name string) clause.Column {
	return clause.Column{Name: name}
}

func eq(column string, value any) clause.Eq {
	return clause.Eq{Column: col(column), Value: value}
}

func desc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: col(column), Desc: true}
}

func asc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: col(column)}
}

// take fetches exactly one row matching column = key.
func take[T any](ctx context.Context, db *gorm.DB, entity, column string, key any) (*T, error) {
	var out T
	err := db.WithContext(ctx).Where(eq(column, key)).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: entity, Key: key}
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// query describes a canonically ordered, optionally paged listing.
type query struct {
	order []clause.OrderByColumn
	where []clause.Expression
	page  *models.Pagination
}

func find[T any](ctx context.Context, db *gorm.DB, q query) ([]*T, error) {
	results := []*T{}
	stmt := db.WithContext(ctx)
	if len(q.where) > 0 {
		stmt = stmt.Clauses(clause.Where{Exprs: q.where})
	}
	stmt = stmt.Clauses(clause.OrderBy{Columns: q.order})
	if q.page != nil {
		if err := q.page.Validate(); err != nil {
			return nil, err
		}
		stmt = stmt.Limit(q.page.Limit()).Offset(q.page.Offset())
	}
	if err := stmt.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// keyFilter turns an optional key set into an IN condition. A non-nil
// empty set reports empty so callers can skip the query entirely.
func keyFilter[K any](column string, keys []K) (expr clause.Expression, empty bool) {
	if keys == nil {
		return nil, false
	}
	if len(keys) == 0 {
		return nil, true
	}
	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = k
	}
	return clause.IN{Column: col(column), Values: values}, false
}

// list runs find with an optional key set filter.
func list[T any, K any](ctx context.Context, db *gorm.DB, column string, keys []K, q query) ([]*T, error) {
	expr, empty := keyFilter(column, keys)
	if empty {
		if q.page != nil {
			if err := q.page.Validate(); err != nil {
				return nil, err
			}
		}
		return []*T{}, nil
	}
	if expr != nil {
		q.where = append(q.where, expr)
	}
	return find[T](ctx, db, q)
}

// replace overwrites every column in values on the row at column = key and
// returns the row as found under newKey afterwards.
func replace[T any](ctx context.Context, db *gorm.DB, entity, column string, key, newKey any, values map[string]any) (*T, error) {
	var out *T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model T
		res := tx.Model(&model).Where(eq(column, key)).Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Entity: entity, Key: key}
		}
		row, err := take[T](ctx, tx, entity, column, newKey)
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// remove deletes the row at column = key and returns its last state.
func remove[T any](ctx context.Context, db *gorm.DB, entity, column string, key any) (*T, error) {
	var out *T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := take[T](ctx, tx, entity, column, key)
		if err != nil {
			return err
		}
		var model T
		if err := tx.Where(eq(column, key)).Delete(&model).Error; err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// resolveID follows an optional surrogate foreign key.
func resolveID[T any](field string, id *uint, get func(uint) (*T, error)) (*T, error) {
	if id == nil || *id == 0 {
		return nil, &MissingRelationError{Field: field}
	}
	return get(*id)
}

// resolveName follows an optional natural-key foreign key.
func resolveName[T any](field string, name *string, get func(string) (*T, error)) (*T, error) {
	if name == nil || *name == "" {
		return nil, &MissingRelationError{Field: field}
	}
	return get(*name)
}
