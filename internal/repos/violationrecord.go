package repos

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transit_manage/internal/models"
)

type ViolationRecordRepo interface {
	Get(ctx context.Context, tx *gorm.DB, id uint) (*models.ViolationRecord, error)
	List(ctx context.Context, tx *gorm.DB, page *models.Pagination, ids []uint) ([]*models.ViolationRecord, error)
	ListByDriver(ctx context.Context, tx *gorm.DB, start, end time.Time, driverID uint, page *models.Pagination) ([]*models.ViolationRecord, error)
	StatByFleet(ctx context.Context, tx *gorm.DB, start, end time.Time, fleetID uint) ([]*models.ViolationStat, error)
	Create(ctx context.Context, tx *gorm.DB, in models.ViolationRecordInput) (*models.ViolationRecord, error)
	Update(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord, in models.ViolationRecordInput) (*models.ViolationRecord, error)
	Delete(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.ViolationRecord, error)

	Driver(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Member, error)
	Recorder(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Member, error)
	Bus(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Bus, error)
	Fleet(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Fleet, error)
	Route(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Route, error)
	Violation(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Violation, error)
}

type violationRecordRepo struct {
	base
}

func NewViolationRecordRepo(db *gorm.DB, baseLog *logrus.Logger) ViolationRecordRepo {
	return &violationRecordRepo{base: newBase(db, baseLog, "ViolationRecordRepo")}
}

var violationRecordOrder = []clause.OrderByColumn{desc("time"), desc("id")}

func inWindow(start, end time.Time) []clause.Expression {
	return []clause.Expression{
		clause.Gte{Column: col("time"), Value: start},
		clause.Lte{Column: col("time"), Value: end},
	}
}

func (vrr *violationRecordRepo) Get(ctx context.Context, tx *gorm.DB, id uint) (*models.ViolationRecord, error) {
	return take[models.ViolationRecord](ctx, vrr.conn(tx), "violation record", "id", id)
}

func (vrr *violationRecordRepo) List(ctx context.Context, tx *gorm.DB, page *models.Pagination, ids []uint) ([]*models.ViolationRecord, error) {
	return list[models.ViolationRecord](ctx, vrr.conn(tx), "id", ids, query{order: violationRecordOrder, page: page})
}

// ListByDriver returns the driver's records with time in [start, end].
func (vrr *violationRecordRepo) ListByDriver(ctx context.Context, tx *gorm.DB, start, end time.Time, driverID uint, page *models.Pagination) ([]*models.ViolationRecord, error) {
	return find[models.ViolationRecord](ctx, vrr.conn(tx), query{
		where: append(inWindow(start, end), eq("driverId", driverID)),
		order: violationRecordOrder,
		page:  page,
	})
}

// StatByFleet counts the fleet's records with time in [start, end] per
// violation name. Names without a match are absent; rows are unordered.
func (vrr *violationRecordRepo) StatByFleet(ctx context.Context, tx *gorm.DB, start, end time.Time, fleetID uint) ([]*models.ViolationStat, error) {
	stats := []*models.ViolationStat{}
	err := vrr.conn(tx).WithContext(ctx).
		Model(&models.ViolationRecord{}).
		Select("?, COUNT(*) AS ?", col("violationName"), col("count")).
		Clauses(
			clause.Where{Exprs: append(inWindow(start, end), eq("fleetId", fleetID))},
			clause.GroupBy{Columns: []clause.Column{col("violationName")}},
		).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Create derives the route and fleet when they are unset and inserts the
// record, all in one transaction.
func (vrr *violationRecordRepo) Create(ctx context.Context, tx *gorm.DB, in models.ViolationRecordInput) (*models.ViolationRecord, error) {
	var record *models.ViolationRecord
	err := vrr.conn(tx).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		routeID, fleetID, err := deriveRouteAndFleet(ctx, tx, in.DriverID, in.RouteID, in.FleetID)
		if err != nil {
			return err
		}
		row := &models.ViolationRecord{
			DriverID:      in.DriverID,
			BusNumber:     in.BusNumber,
			FleetID:       fleetID,
			RouteID:       routeID,
			Location:      in.Location,
			ViolationName: in.ViolationName,
			RecorderID:    in.RecorderID,
			Time:          vrr.stamp(in.Time),
		}
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		record = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	vrr.log.WithFields(logrus.Fields{
		"id":       record.ID,
		"route_id": record.RouteID,
		"fleet_id": record.FleetID,
	}).Debug("violation record created")
	return record, nil
}

// Update replaces every editable field of the record keyed by record.ID,
// deriving the route and fleet the same way Create does.
func (vrr *violationRecordRepo) Update(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord, in models.ViolationRecordInput) (*models.ViolationRecord, error) {
	var updated *models.ViolationRecord
	err := vrr.conn(tx).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		routeID, fleetID, err := deriveRouteAndFleet(ctx, tx, in.DriverID, in.RouteID, in.FleetID)
		if err != nil {
			return err
		}
		row, err := replace[models.ViolationRecord](ctx, tx, "violation record", "id", record.ID, record.ID, map[string]any{
			"driverId":      in.DriverID,
			"busNumber":     in.BusNumber,
			"fleetId":       fleetID,
			"routeId":       routeID,
			"location":      in.Location,
			"violationName": in.ViolationName,
			"recorderId":    in.RecorderID,
			"time":          vrr.stamp(in.Time),
		})
		if err != nil {
			return err
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (vrr *violationRecordRepo) Delete(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.ViolationRecord, error) {
	return remove[models.ViolationRecord](ctx, vrr.conn(tx), "violation record", "id", record.ID)
}

func (vrr *violationRecordRepo) Driver(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Member, error) {
	id := record.DriverID
	return resolveID(FieldDriverID, &id, func(id uint) (*models.Member, error) {
		return getMember(ctx, vrr.conn(tx), id)
	})
}

func (vrr *violationRecordRepo) Recorder(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Member, error) {
	return resolveID(FieldRecorderID, record.RecorderID, func(id uint) (*models.Member, error) {
		return getMember(ctx, vrr.conn(tx), id)
	})
}

func (vrr *violationRecordRepo) Bus(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Bus, error) {
	return resolveName(FieldBusNumber, record.BusNumber, func(number string) (*models.Bus, error) {
		return getBus(ctx, vrr.conn(tx), number)
	})
}

func (vrr *violationRecordRepo) Fleet(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Fleet, error) {
	return resolveID(FieldFleetID, record.FleetID, func(id uint) (*models.Fleet, error) {
		return getFleet(ctx, vrr.conn(tx), id)
	})
}

func (vrr *violationRecordRepo) Route(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Route, error) {
	return resolveID(FieldRouteID, record.RouteID, func(id uint) (*models.Route, error) {
		return getRoute(ctx, vrr.conn(tx), id)
	})
}

func (vrr *violationRecordRepo) Violation(ctx context.Context, tx *gorm.DB, record *models.ViolationRecord) (*models.Violation, error) {
	name := record.ViolationName
	return resolveName(FieldViolationName, &name, func(name string) (*models.Violation, error) {
		return getViolation(ctx, vrr.conn(tx), name)
	})
}
