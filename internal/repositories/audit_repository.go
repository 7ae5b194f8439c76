package repositories

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mapsplanner/internal/models/db_models"
)

type AuditListFilter struct {
	Action       *db_models.EAuditAction
	TargetModel  db_models.EAuditTarget
	TargetID     string
	CreatedStart *time.Time
	CreatedEnd   *time.Time
}

type AuditRepository interface {
	Insert(ctx context.Context, entry *db_models.AuditLog) error
	ListScoped(ctx context.Context, user *db_models.User, impersonate string, page int, filter AuditListFilter) ([]db_models.AuditLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (a *auditRepository) Insert(ctx context.Context, entry *db_models.AuditLog) error {
	return a.db.WithContext(ctx).Create(entry).Error
}

func (a *auditRepository) ListScoped(
	ctx context.Context,
	user *db_models.User,
	impersonate string,
	page int,
	filter AuditListFilter,
) ([]db_models.AuditLog, error) {

	query := a.db.WithContext(ctx).
		Scopes(
			OwnerScope(user, impersonate),
			CreatedBetween(filter.CreatedStart, filter.CreatedEnd),
			OrderDesc("created_at"),
			Paginate(page),
		)

	if filter.Action != nil {
		query = query.Where("action = ?", *filter.Action)
	}
	if filter.TargetModel != "" {
		query = query.Where(datatypes.JSONQuery("extra").Equals(string(filter.TargetModel), "target", "model"))
	}
	if filter.TargetID != "" {
		query = query.Where(datatypes.JSONQuery("extra").Equals(filter.TargetID, "target", "id"))
	}

	var entries []db_models.AuditLog
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
