package interviewstore

import (
	"erp-tools-backend/models"
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	GetByID(id string) (rec *dbmodels.Interview, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter ListFilter) (list []dbmodels.Interview, err error)
	ListCount(filter ListFilter) (count int64, err error)
	ListUpcoming(limit int) (list []dbmodels.Interview, err error)
}

type ListFilter struct {
	Status        models.InterviewStatus
	InterviewerID string
	Page          int
	Limit         int
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Where("id = ?", id).
		Preload("JobTitle").
		Preload("Interviewer").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Interview{}).
		Error
}

func (i impl) listQuery(filter ListFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Interview{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.InterviewerID != "" {
		tx = tx.Where("interviewer_id = ?", filter.InterviewerID)
	}
	return tx
}

func (i impl) List(filter ListFilter) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.listQuery(filter).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Preload("JobTitle").
		Preload("Interviewer").
		Order("scheduled_at desc").
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

func (i impl) ListUpcoming(limit int) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Where("status = ?", models.InterviewStatusPlanned).
		Where("scheduled_at >= now()").
		Order("scheduled_at").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
