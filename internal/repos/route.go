package repos

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transit_manage/internal/models"
)

type RouteRepo interface {
	Get(ctx context.Context, tx *gorm.DB, id uint) (*models.Route, error)
	List(ctx context.Context, tx *gorm.DB, page *models.Pagination, ids []uint) ([]*models.Route, error)
	Create(ctx context.Context, tx *gorm.DB, in models.RouteInput) (*models.Route, error)
	Update(ctx context.Context, tx *gorm.DB, route *models.Route, in models.RouteInput) (*models.Route, error)
	Delete(ctx context.Context, tx *gorm.DB, route *models.Route) (*models.Route, error)
	Fleet(ctx context.Context, tx *gorm.DB, route *models.Route) (*models.Fleet, error)
	Captain(ctx context.Context, tx *gorm.DB, route *models.Route) (*models.Member, error)
	Resolve(ctx context.Context, tx *gorm.DB, field string, id *uint) (*models.Route, error)
}

type routeRepo struct {
	base
}

func NewRouteRepo(db *gorm.DB, baseLog *logrus.Logger) RouteRepo {
	return &routeRepo{base: newBase(db, baseLog, "RouteRepo")}
}

func getRoute(ctx context.Context, db *gorm.DB, id uint) (*models.Route, error) {
	return take[models.Route](ctx, db, "route", "id", id)
}

func (rr *routeRepo) Get(ctx context.Context, tx *gorm.DB, id uint) (*models.Route, error) {
	return getRoute(ctx, rr.conn(tx), id)
}

func (rr *routeRepo) List(ctx context.Context, tx *gorm.DB, page *models.Pagination, ids []uint) ([]*models.Route, error) {
	return list[models.Route](ctx, rr.conn(tx), "id", ids, query{
		order: []clause.OrderByColumn{desc("createdAt"), desc("id")},
		page:  page,
	})
}

func (rr *routeRepo) Create(ctx context.Context, tx *gorm.DB, in models.RouteInput) (*models.Route, error) {
	route := &models.Route{
		FleetID:   in.FleetID,
		CaptainID: in.CaptainID,
		CreatedAt: rr.stamp(in.CreatedAt),
	}
	if err := rr.conn(tx).WithContext(ctx).Create(route).Error; err != nil {
		return nil, err
	}
	rr.log.WithField("id", route.ID).Debug("route created")
	return route, nil
}

func (rr *routeRepo) Update(ctx context.Context, tx *gorm.DB, route *models.Route, in models.RouteInput) (*models.Route, error) {
	return replace[models.Route](ctx, rr.conn(tx), "route", "id", route.ID, route.ID, map[string]any{
		"fleetId":   in.FleetID,
		"captainId": in.CaptainID,
		"createdAt": rr.stamp(in.CreatedAt),
	})
}

func (rr *routeRepo) Delete(ctx context.Context, tx *gorm.DB, route *models.Route) (*models.Route, error) {
	return remove[models.Route](ctx, rr.conn(tx), "route", "id", route.ID)
}

func (rr *routeRepo) Fleet(ctx context.Context, tx *gorm.DB, route *models.Route) (*models.Fleet, error) {
	return resolveID(FieldFleetID, route.FleetID, func(id uint) (*models.Fleet, error) {
		return getFleet(ctx, rr.conn(tx), id)
	})
}

func (rr *routeRepo) Captain(ctx context.Context, tx *gorm.DB, route *models.Route) (*models.Member, error) {
	return resolveID(FieldCaptainID, route.CaptainID, func(id uint) (*models.Member, error) {
		return getMember(ctx, rr.conn(tx), id)
	})
}

func (rr *routeRepo) Resolve(ctx context.Context, tx *gorm.DB, field string, id *uint) (*models.Route, error) {
	return resolveID(field, id, func(id uint) (*models.Route, error) {
		return getRoute(ctx, rr.conn(tx), id)
	})
}
