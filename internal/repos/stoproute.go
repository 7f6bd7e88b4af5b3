package repos

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transit_manage/internal/models"
)

type StopRouteRepo interface {
	AddStops(ctx context.Context, tx *gorm.DB, routeID uint, stopNames []string) ([]*models.StopRoute, error)
	ListByRoute(ctx context.Context, tx *gorm.DB, routeID uint) ([]*models.StopRoute, error)
	Route(ctx context.Context, tx *gorm.DB, stopRoute *models.StopRoute) (*models.Route, error)
	Stop(ctx context.Context, tx *gorm.DB, stopRoute *models.StopRoute) (*models.Stop, error)
}

type stopRouteRepo struct {
	base
}

func NewStopRouteRepo(db *gorm.DB, baseLog *logrus.Logger) StopRouteRepo {
	return &stopRouteRepo{base: newBase(db, baseLog, "StopRouteRepo")}
}

// AddStops inserts one row per name, numbered 1..n in input order.
// Duplicates are kept; an empty list inserts nothing.
func (srr *stopRouteRepo) AddStops(ctx context.Context, tx *gorm.DB, routeID uint, stopNames []string) ([]*models.StopRoute, error) {
	rows := make([]*models.StopRoute, 0, len(stopNames))
	if len(stopNames) == 0 {
		return rows, nil
	}
	for i, name := range stopNames {
		rows = append(rows, &models.StopRoute{RouteID: routeID, ID: i + 1, StopName: name})
	}
	if err := srr.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	srr.log.WithFields(logrus.Fields{"route_id": routeID, "stops": len(rows)}).Debug("stops added to route")
	return rows, nil
}

func (srr *stopRouteRepo) ListByRoute(ctx context.Context, tx *gorm.DB, routeID uint) ([]*models.StopRoute, error) {
	return find[models.StopRoute](ctx, srr.conn(tx), query{
		where: []clause.Expression{eq("routeId", routeID)},
		order: []clause.OrderByColumn{asc("id")},
	})
}

func (srr *stopRouteRepo) Route(ctx context.Context, tx *gorm.DB, stopRoute *models.StopRoute) (*models.Route, error) {
	id := stopRoute.RouteID
	return resolveID(FieldRouteID, &id, func(id uint) (*models.Route, error) {
		return getRoute(ctx, srr.conn(tx), id)
	})
}

func (srr *stopRouteRepo) Stop(ctx context.Context, tx *gorm.DB, stopRoute *models.StopRoute) (*models.Stop, error) {
	name := stopRoute.StopName
	return resolveName(FieldStopName, &name, func(name string) (*models.Stop, error) {
		return getStop(ctx, srr.conn(tx), name)
	})
}
