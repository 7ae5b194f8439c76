package repositories

import (
	"time"

	"gorm.io/gorm"

	"mapsplanner/internal/models/db_models"
)

const PageSize = 10

// ImpersonateAll lifts the ownership filter entirely (administrators only).
const ImpersonateAll = "all"

// OwnerScope restricts a query to rows the requesting user may see.
// Non-administrators are always pinned to their own rows; an administrator
// may pass a target user id, or ImpersonateAll for an unfiltered view.
func OwnerScope(user *db_models.User, impersonate string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if impersonate == "" || !user.IsAdministrator {
			return db.Where("user_id = ?", user.ID)
		}
		if impersonate == ImpersonateAll {
			return db
		}
		return db.Where("user_id = ?", impersonate)
	}
}

func Paginate(page int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		offset := (page - 1) * PageSize
		return db.Offset(offset).Limit(PageSize)
	}
}

func OrderDesc(field string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(field + " DESC")
	}
}

// CreatedBetween filters on the unix creation timestamp; either bound may
// be nil, meaning unbounded on that side.
func CreatedBetween(start, end *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != nil {
			db = db.Where("created_at >= ?", start.Unix())
		}
		if end != nil {
			db = db.Where("created_at <= ?", end.Unix())
		}
		return db
	}
}
