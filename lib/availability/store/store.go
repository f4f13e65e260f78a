package availabilitystore

import (
	"erp-tools-backend/models"
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Availability) (id string, err error)
	GetByID(id string) (rec *dbmodels.Availability, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter ListFilter) (list []dbmodels.Availability, err error)
	ListCount(filter ListFilter) (count int64, err error)
	CountPending() (count int64, err error)
}

type ListFilter struct {
	EmployeeID string
	Status     models.AvailabilityStatus
	Page       int
	Limit      int
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Availability) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Availability, error) {
	rec := dbmodels.Availability{}
	err := i.db.
		Where("id = ?", id).
		Preload("Employee").
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
		Model(&dbmodels.Availability{}).
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
		Delete(&dbmodels.Availability{}).
		Error
}

func (i impl) listQuery(filter ListFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Availability{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	return tx
}

func (i impl) List(filter ListFilter) (list []dbmodels.Availability, err error) {
	list = []dbmodels.Availability{}
	err = i.listQuery(filter).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Preload("Employee").
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

func (i impl) CountPending() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Availability{}).
		Where("status = ?", models.AvailabilityStatusRequested).
		Count(&count).
		Error
	return count, err
}
