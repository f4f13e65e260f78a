package auditstore

import (
	dbmodels "erp-tools-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ActivityLog) error
	List(filter ListFilter) (list []dbmodels.ActivityLog, err error)
	ListCount(filter ListFilter) (count int64, err error)
}

type ListFilter struct {
	UserID string
	Module string
	Action string
	Page   int
	Limit  int
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ActivityLog) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) listQuery(filter ListFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.ActivityLog{})
	if filter.UserID != "" {
		tx = tx.Where("user_id = ?", filter.UserID)
	}
	if filter.Module != "" {
		tx = tx.Where("module = ?", filter.Module)
	}
	if filter.Action != "" {
		tx = tx.Where("action = ?", filter.Action)
	}
	return tx
}

func (i impl) List(filter ListFilter) (list []dbmodels.ActivityLog, err error) {
	list = []dbmodels.ActivityLog{}
	err = i.listQuery(filter).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter ListFilter) (count int64, err error) {
	err = i.listQuery(filter).Count(&count).Error
	return count, err
}
