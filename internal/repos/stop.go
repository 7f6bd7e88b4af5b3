package repos

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transit_manage/internal/models"
)

type StopRepo interface {
	Get(ctx context.Context, tx *gorm.DB, name string) (*models.Stop, error)
	List(ctx context.Context, tx *gorm.DB, page *models.Pagination, names []string) ([]*models.Stop, error)
	Create(ctx context.Context, tx *gorm.DB, in models.StopInput) (*models.Stop, error)
	Update(ctx context.Context, tx *gorm.DB, stop *models.Stop, in models.StopInput) (*models.Stop, error)
	Delete(ctx context.Context, tx *gorm.DB, stop *models.Stop) (*models.Stop, error)
	Resolve(ctx context.Context, tx *gorm.DB, field string, name *string) (*models.Stop, error)
}

type stopRepo struct {
	base
}

func NewStopRepo(db *gorm.DB, baseLog *logrus.Logger) StopRepo {
	return &stopRepo{base: newBase(db, baseLog, "StopRepo")}
}

func getStop(ctx context.Context, db *gorm.DB, name string) (*models.Stop, error) {
	return take[models.Stop](ctx, db, "stop", "name", name)
}

func (sr *stopRepo) Get(ctx context.Context, tx *gorm.DB, name string) (*models.Stop, error) {
	return getStop(ctx, sr.conn(tx), name)
}

func (sr *stopRepo) List(ctx context.Context, tx *gorm.DB, page *models.Pagination, names []string) ([]*models.Stop, error) {
	return list[models.Stop](ctx, sr.conn(tx), "name", names, query{
		order: []clause.OrderByColumn{asc("name")},
		page:  page,
	})
}

func (sr *stopRepo) Create(ctx context.Context, tx *gorm.DB, in models.StopInput) (*models.Stop, error) {
	stop := &models.Stop{Name: in.Name, Location: in.Location}
	if err := sr.conn(tx).WithContext(ctx).Create(stop).Error; err != nil {
		return nil, err
	}
	return stop, nil
}

func (sr *stopRepo) Update(ctx context.Context, tx *gorm.DB, stop *models.Stop, in models.StopInput) (*models.Stop, error) {
	return replace[models.Stop](ctx, sr.conn(tx), "stop", "name", stop.Name, in.Name, map[string]any{
		"name":     in.Name,
		"location": in.Location,
	})
}

func (sr *stopRepo) Delete(ctx context.Context, tx *gorm.DB, stop *models.Stop) (*models.Stop, error) {
	return remove[models.Stop](ctx, sr.conn(tx), "stop", "name", stop.Name)
}

func (sr *stopRepo) Resolve(ctx context.Context, tx *gorm.DB, field string, name *string) (*models.Stop, error) {
	return resolveName(field, name, func(name string) (*models.Stop, error) {
		return getStop(ctx, sr.conn(tx), name)
	})
}
