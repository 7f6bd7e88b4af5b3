package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transit_manage/internal/models"
)

type FleetRepo interface {
	Get(ctx context.Context, tx *gorm.DB, id uint) (*models.Fleet, error)
	GetByCaptain(ctx context.Context, tx *gorm.DB, memberID uint) (*models.Fleet, error)
	List(ctx context.Context, tx *gorm.DB, page *models.Pagination, ids []uint) ([]*models.Fleet, error)
	Create(ctx context.Context, tx *gorm.DB, in models.FleetInput) (*models.Fleet, error)
	Update(ctx context.Context, tx *gorm.DB, fleet *models.Fleet, in models.FleetInput) (*models.Fleet, error)
	Delete(ctx context.Context, tx *gorm.DB, fleet *models.Fleet) (*models.Fleet, error)
	Company(ctx context.Context, tx *gorm.DB, fleet *models.Fleet) (*models.Company, error)
	Captain(ctx context.Context, tx *gorm.DB, fleet *models.Fleet) (*models.Member, error)
	Resolve(ctx context.Context, tx *gorm.DB, field string, id *uint) (*models.Fleet, error)
}

type fleetRepo struct {
	base
}

func NewFleetRepo(db *gorm.DB, baseLog *logrus.Logger) FleetRepo {
	return &fleetRepo{base: newBase(db, baseLog, "FleetRepo")}
}

func getFleet(ctx context.Context, db *gorm.DB, id uint) (*models.Fleet, error) {
	return take[models.Fleet](ctx, db, "fleet", "id", id)
}

func (fr *fleetRepo) Get(ctx context.Context, tx *gorm.DB, id uint) (*models.Fleet, error) {
	return getFleet(ctx, fr.conn(tx), id)
}

// GetByCaptain returns the fleet led by memberID.
func (fr *fleetRepo) GetByCaptain(ctx context.Context, tx *gorm.DB, memberID uint) (*models.Fleet, error) {
	var fleet models.Fleet
	err := fr.conn(tx).WithContext(ctx).
		Where(eq("captainId", memberID)).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{asc("id")}}).
		Take(&fleet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "fleet", Key: fmt.Sprintf("captainId=%d", memberID)}
	}
	if err != nil {
		return nil, err
	}
	return &fleet, nil
}

func (fr *fleetRepo) List(ctx context.Context, tx *gorm.DB, page *models.Pagination, ids []uint) ([]*models.Fleet, error) {
	return list[models.Fleet](ctx, fr.conn(tx), "id", ids, query{
		order: []clause.OrderByColumn{desc("createdAt"), desc("id")},
		page:  page,
	})
}

func (fr *fleetRepo) Create(ctx context.Context, tx *gorm.DB, in models.FleetInput) (*models.Fleet, error) {
	fleet := &models.Fleet{
		Name:      in.Name,
		CompanyID: in.CompanyID,
		CaptainID: in.CaptainID,
		CreatedAt: fr.stamp(in.CreatedAt),
	}
	if err := fr.conn(tx).WithContext(ctx).Create(fleet).Error; err != nil {
		return nil, err
	}
	fr.log.WithField("id", fleet.ID).Debug("fleet created")
	return fleet, nil
}

func (fr *fleetRepo) Update(ctx context.Context, tx *gorm.DB, fleet *models.Fleet, in models.FleetInput) (*models.Fleet, error) {
	return replace[models.Fleet](ctx, fr.conn(tx), "fleet", "id", fleet.ID, fleet.ID, map[string]any{
		"name":      in.Name,
		"companyId": in.CompanyID,
		"captainId": in.CaptainID,
		"createdAt": fr.stamp(in.CreatedAt),
	})
}

func (fr *fleetRepo) Delete(ctx context.Context, tx *gorm.DB, fleet *models.Fleet) (*models.Fleet, error) {
	return remove[models.Fleet](ctx, fr.conn(tx), "fleet", "id", fleet.ID)
}

func (fr *fleetRepo) Company(ctx context.Context, tx *gorm.DB, fleet *models.Fleet) (*models.Company, error) {
	return resolveID(FieldCompanyID, fleet.CompanyID, func(id uint) (*models.Company, error) {
		return getCompany(ctx, fr.conn(tx), id)
	})
}

func (fr *fleetRepo) Captain(ctx context.Context, tx *gorm.DB, fleet *models.Fleet) (*models.Member, error) {
	return resolveID(FieldCaptainID, fleet.CaptainID, func(id uint) (*models.Member, error) {
		return getMember(ctx, fr.conn(tx), id)
	})
}

func (fr *fleetRepo) Resolve(ctx context.Context, tx *gorm.DB, field string, id *uint) (*models.Fleet, error) {
	return resolveID(field, id, func(id uint) (*models.Fleet, error) {
		return getFleet(ctx, fr.conn(tx), id)
	})
}
