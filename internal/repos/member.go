package repos

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transit_manage/internal/models"
)

type MemberRepo interface {
	Get(ctx context.Context, tx *gorm.DB, id uint) (*models.Member, error)
	List(ctx context.Context, tx *gorm.DB, page *models.Pagination, ids []uint) ([]*models.Member, error)
	ListByFleet(ctx context.Context, tx *gorm.DB, fleetID uint, page *models.Pagination) ([]*models.Member, error)
	Create(ctx context.Context, tx *gorm.DB, in models.MemberInput) (*models.Member, error)
	Update(ctx context.Context, tx *gorm.DB, member *models.Member, in models.MemberInput) (*models.Member, error)
	Delete(ctx context.Context, tx *gorm.DB, member *models.Member) (*models.Member, error)
	Route(ctx context.Context, tx *gorm.DB, member *models.Member) (*models.Route, error)
	Resolve(ctx context.Context, tx *gorm.DB, field string, id *uint) (*models.Member, error)
}

type memberRepo struct {
	base
}

func NewMemberRepo(db *gorm.DB, baseLog *logrus.Logger) MemberRepo {
	return &memberRepo{base: newBase(db, baseLog, "MemberRepo")}
}

func getMember(ctx context.Context, db *gorm.DB, id uint) (*models.Member, error) {
	return take[models.Member](ctx, db, "member", "id", id)
}

var memberOrder = []clause.OrderByColumn{desc("joinedAt"), desc("id")}

func (mr *memberRepo) Get(ctx context.Context, tx *gorm.DB, id uint) (*models.Member, error) {
	return getMember(ctx, mr.conn(tx), id)
}

func (mr *memberRepo) List(ctx context.Context, tx *gorm.DB, page *models.Pagination, ids []uint) ([]*models.Member, error) {
	return list[models.Member](ctx, mr.conn(tx), "id", ids, query{order: memberOrder, page: page})
}

// ListByFleet returns members assigned to any route of the fleet.
func (mr *memberRepo) ListByFleet(ctx context.Context, tx *gorm.DB, fleetID uint, page *models.Pagination) ([]*models.Member, error) {
	db := mr.conn(tx)
	routeIDs := db.Session(&gorm.Session{NewDB: true}).
		Model(&models.Route{}).
		Select("id").
		Where(eq("fleetId", fleetID))
	return find[models.Member](ctx, db, query{
		where: []clause.Expression{clause.Expr{SQL: "? IN (?)", Vars: []any{col("routeId"), routeIDs}}},
		order: memberOrder,
		page:  page,
	})
}

func (mr *memberRepo) Create(ctx context.Context, tx *gorm.DB, in models.MemberInput) (*models.Member, error) {
	job := in.Job
	if job == "" {
		job = models.JobDriver
	}
	member := &models.Member{
		Name:      in.Name,
		Gender:    in.Gender,
		BirthYear: in.BirthYear,
		Origin:    in.Origin,
		JoinedAt:  mr.stamp(in.JoinedAt),
		Phone:     in.Phone,
		IDNumber:  in.IDNumber,
		Job:       job,
		RouteID:   in.RouteID,
	}
	if err := mr.conn(tx).WithContext(ctx).Create(member).Error; err != nil {
		return nil, err
	}
	mr.log.WithField("id", member.ID).Debug("member created")
	return member, nil
}

// Update rewrites every editable field. Job is not editable.
func (mr *memberRepo) Update(ctx context.Context, tx *gorm.DB, member *models.Member, in models.MemberInput) (*models.Member, error) {
	return replace[models.Member](ctx, mr.conn(tx), "member", "id", member.ID, member.ID, map[string]any{
		"name":      in.Name,
		"gender":    in.Gender,
		"birthYear": in.BirthYear,
		"origin":    in.Origin,
		"joinedAt":  mr.stamp(in.JoinedAt),
		"phone":     in.Phone,
		"idNumber":  in.IDNumber,
		"routeId":   in.RouteID,
	})
}

func (mr *memberRepo) Delete(ctx context.Context, tx *gorm.DB, member *models.Member) (*models.Member, error) {
	return remove[models.Member](ctx, mr.conn(tx), "member", "id", member.ID)
}

func (mr *memberRepo) Route(ctx context.Context, tx *gorm.DB, member *models.Member) (*models.Route, error) {
	return resolveID(FieldRouteID, member.RouteID, func(id uint) (*models.Route, error) {
		return getRoute(ctx, mr.conn(tx), id)
	})
}

func (mr *memberRepo) Resolve(ctx context.Context, tx *gorm.DB, field string, id *uint) (*models.Member, error) {
	return resolveID(field, id, func(id uint) (*models.Member, error) {
		return getMember(ctx, mr.conn(tx), id)
	})
}
