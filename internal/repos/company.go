package repos

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transit_manage/internal/models"
)

type CompanyRepo interface {
	Get(ctx context.Context, tx *gorm.DB, id uint) (*models.Company, error)
	List(ctx context.Context, tx *gorm.DB, page *models.Pagination, ids []uint) ([]*models.Company, error)
	Create(ctx context.Context, tx *gorm.DB, in models.CompanyInput) (*models.Company, error)
	Update(ctx context.Context, tx *gorm.DB, company *models.Company, in models.CompanyInput) (*models.Company, error)
	Delete(ctx context.Context, tx *gorm.DB, company *models.Company) (*models.Company, error)
	Resolve(ctx context.Context, tx *gorm.DB, field string, id *uint) (*models.Company, error)
}

type companyRepo struct {
	base
}

func NewCompanyRepo(db *gorm.DB, baseLog *logrus.Logger) CompanyRepo {
	return &companyRepo{base: newBase(db, baseLog, "CompanyRepo")}
}

func getCompany(ctx context.Context, db *gorm.DB, id uint) (*models.Company, error) {
	return take[models.Company](ctx, db, "company", "id", id)
}

func (cr *companyRepo) Get(ctx context.Context, tx *gorm.DB, id uint) (*models.Company, error) {
	return getCompany(ctx, cr.conn(tx), id)
}

func (cr *companyRepo) List(ctx context.Context, tx *gorm.DB, page *models.Pagination, ids []uint) ([]*models.Company, error) {
	return list[models.Company](ctx, cr.conn(tx), "id", ids, query{
		order: []clause.OrderByColumn{desc("createdAt"), desc("id")},
		page:  page,
	})
}

func (cr *companyRepo) Create(ctx context.Context, tx *gorm.DB, in models.CompanyInput) (*models.Company, error) {
	company := &models.Company{
		Name:      in.Name,
		Place:     in.Place,
		CreatedAt: cr.stamp(in.CreatedAt),
	}
	if err := cr.conn(tx).WithContext(ctx).Create(company).Error; err != nil {
		return nil, err
	}
	cr.log.WithField("id", company.ID).Debug("company created")
	return company, nil
}

// Update rewrites every editable field of the company row keyed by company.ID.
func (cr *companyRepo) Update(ctx context.Context, tx *gorm.DB, company *models.Company, in models.CompanyInput) (*models.Company, error) {
	return replace[models.Company](ctx, cr.conn(tx), "company", "id", company.ID, company.ID, map[string]any{
		"name":      in.Name,
		"place":     in.Place,
		"createdAt": cr.stamp(in.CreatedAt),
	})
}

func (cr *companyRepo) Delete(ctx context.Context, tx *gorm.DB, company *models.Company) (*models.Company, error) {
	return remove[models.Company](ctx, cr.conn(tx), "company", "id", company.ID)
}

func (cr *companyRepo) Resolve(ctx context.Context, tx *gorm.DB, field string, id *uint) (*models.Company, error) {
	return resolveID(field, id, func(id uint) (*models.Company, error) {
		return getCompany(ctx, cr.conn(tx), id)
	})
}
