package repos

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transit_manage/internal/models"
)

type ViolationRepo interface {
	Get(ctx context.Context, tx *gorm.DB, name string) (*models.Violation, error)
	List(ctx context.Context, tx *gorm.DB, page *models.Pagination, names []string) ([]*models.Violation, error)
	Create(ctx context.Context, tx *gorm.DB, in models.ViolationInput) (*models.Violation, error)
	Update(ctx context.Context, tx *gorm.DB, violation *models.Violation, in models.ViolationInput) (*models.Violation, error)
	Delete(ctx context.Context, tx *gorm.DB, violation *models.Violation) (*models.Violation, error)
	Resolve(ctx context.Context, tx *gorm.DB, field string, name *string) (*models.Violation, error)
}

type violationRepo struct {
	base
}

func NewViolationRepo(db *gorm.DB, baseLog *logrus.Logger) ViolationRepo {
	return &violationRepo{base: newBase(db, baseLog, "ViolationRepo")}
}

func getViolation(ctx context.Context, db *gorm.DB, name string) (*models.Violation, error) {
	return take[models.Violation](ctx, db, "violation", "name", name)
}

func (vr *violationRepo) Get(ctx context.Context, tx *gorm.DB, name string) (*models.Violation, error) {
	return getViolation(ctx, vr.conn(tx), name)
}

func (vr *violationRepo) List(ctx context.Context, tx *gorm.DB, page *models.Pagination, names []string) ([]*models.Violation, error) {
	return list[models.Violation](ctx, vr.conn(tx), "name", names, query{
		order: []clause.OrderByColumn{asc("name")},
		page:  page,
	})
}

func (vr *violationRepo) Create(ctx context.Context, tx *gorm.DB, in models.ViolationInput) (*models.Violation, error) {
	violation := &models.Violation{Name: in.Name, Penalty: in.Penalty}
	if err := vr.conn(tx).WithContext(ctx).Create(violation).Error; err != nil {
		return nil, err
	}
	return violation, nil
}

func (vr *violationRepo) Update(ctx context.Context, tx *gorm.DB, violation *models.Violation, in models.ViolationInput) (*models.Violation, error) {
	return replace[models.Violation](ctx, vr.conn(tx), "violation", "name", violation.Name, in.Name, map[string]any{
		"name":    in.Name,
		"penalty": in.Penalty,
	})
}

func (vr *violationRepo) Delete(ctx context.Context, tx *gorm.DB, violation *models.Violation) (*models.Violation, error) {
	return remove[models.Violation](ctx, vr.conn(tx), "violation", "name", violation.Name)
}

func (vr *violationRepo) Resolve(ctx context.Context, tx *gorm.DB, field string, name *string) (*models.Violation, error) {
	return resolveName(field, name, func(name string) (*models.Violation, error) {
		return getViolation(ctx, vr.conn(tx), name)
	})
}
