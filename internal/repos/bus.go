package repos

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transit_manage/internal/models"
)

type BusRepo interface {
	Get(ctx context.Context, tx *gorm.DB, number string) (*models.Bus, error)
	List(ctx context.Context, tx *gorm.DB, page *models.Pagination, numbers []string) ([]*models.Bus, error)
	ListByRoute(ctx context.Context, tx *gorm.DB, routeID uint, page *models.Pagination) ([]*models.Bus, error)
	Create(ctx context.Context, tx *gorm.DB, in models.BusInput) (*models.Bus, error)
	Update(ctx context.Context, tx *gorm.DB, bus *models.Bus, in models.BusInput) (*models.Bus, error)
	Delete(ctx context.Context, tx *gorm.DB, bus *models.Bus) (*models.Bus, error)
	Route(ctx context.Context, tx *gorm.DB, bus *models.Bus) (*models.Route, error)
	Resolve(ctx context.Context, tx *gorm.DB, field string, number *string) (*models.Bus, error)
}

type busRepo struct {
	base
}

func NewBusRepo(db *gorm.DB, baseLog *logrus.Logger) BusRepo {
	return &busRepo{base: newBase(db, baseLog, "BusRepo")}
}

func getBus(ctx context.Context, db *gorm.DB, number string) (*models.Bus, error) {
	return take[models.Bus](ctx, db, "bus", "number", number)
}

var busOrder = []clause.OrderByColumn{asc("number")}

func (br *busRepo) Get(ctx context.Context, tx *gorm.DB, number string) (*models.Bus, error) {
	return getBus(ctx, br.conn(tx), number)
}

func (br *busRepo) List(ctx context.Context, tx *gorm.DB, page *models.Pagination, numbers []string) ([]*models.Bus, error) {
	return list[models.Bus](ctx, br.conn(tx), "number", numbers, query{order: busOrder, page: page})
}

func (br *busRepo) ListByRoute(ctx context.Context, tx *gorm.DB, routeID uint, page *models.Pagination) ([]*models.Bus, error) {
	return find[models.Bus](ctx, br.conn(tx), query{
		where: []clause.Expression{eq("routeId", routeID)},
		order: busOrder,
		page:  page,
	})
}

func (br *busRepo) Create(ctx context.Context, tx *gorm.DB, in models.BusInput) (*models.Bus, error) {
	bus := &models.Bus{
		Number:      in.Number,
		RouteID:     in.RouteID,
		Capacity:    in.Capacity,
		Brand:       in.Brand,
		FactoryYear: in.FactoryYear,
	}
	if err := br.conn(tx).WithContext(ctx).Create(bus).Error; err != nil {
		return nil, err
	}
	br.log.WithField("number", bus.Number).Debug("bus created")
	return bus, nil
}

// Update targets bus.Number; in.Number becomes the plate afterwards.
func (br *busRepo) Update(ctx context.Context, tx *gorm.DB, bus *models.Bus, in models.BusInput) (*models.Bus, error) {
	return replace[models.Bus](ctx, br.conn(tx), "bus", "number", bus.Number, in.Number, map[string]any{
		"number":      in.Number,
		"routeId":     in.RouteID,
		"capacity":    in.Capacity,
		"brand":       in.Brand,
		"factoryYear": in.FactoryYear,
	})
}

func (br *busRepo) Delete(ctx context.Context, tx *gorm.DB, bus *models.Bus) (*models.Bus, error) {
	return remove[models.Bus](ctx, br.conn(tx), "bus", "number", bus.Number)
}

func (br *busRepo) Route(ctx context.Context, tx *gorm.DB, bus *models.Bus) (*models.Route, error) {
	return resolveID(FieldRouteID, bus.RouteID, func(id uint) (*models.Route, error) {
		return getRoute(ctx, br.conn(tx), id)
	})
}

func (br *busRepo) Resolve(ctx context.Context, tx *gorm.DB, field string, number *string) (*models.Bus, error) {
	return resolveName(field, number, func(number string) (*models.Bus, error) {
		return getBus(ctx, br.conn(tx), number)
	})
}
