package trainingplanstore

import (
	"erp-tools-backend/models"
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.TrainingPlan) (id string, err error)
	GetByID(id string) (rec *dbmodels.TrainingPlan, err error)
	FindByEmployeeYear(employeeID string, year int) (rec *dbmodels.TrainingPlan, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter ListFilter) (list []dbmodels.TrainingPlan, err error)
	ListCount(filter ListFilter) (count int64, err error)
	CountByStatus() (rows []StatusCountRow, err error)
}

type ListFilter struct {
	EmployeeID string
	Year       int
	Status     models.TrainingPlanStatus
	Page       int
	Limit      int
}

type StatusCountRow struct {
	Status models.TrainingPlanStatus
	Count  int64
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TrainingPlan) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.TrainingPlan, error) {
	rec := dbmodels.TrainingPlan{}
	err := i.db.
		Where("id = ?", id).
		Preload("Employee").
		Preload("Items").
		Preload("Items.Course").
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

func (i impl) FindByEmployeeYear(employeeID string, year int) (*dbmodels.TrainingPlan, error) {
	rec := dbmodels.TrainingPlan{}
	err := i.db.
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Preload("Items").
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
		Model(&dbmodels.TrainingPlan{}).
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
		Delete(&dbmodels.TrainingPlan{}).
		Error
}

func (i impl) listQuery(filter ListFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.TrainingPlan{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Year != 0 {
		tx = tx.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	return tx
}

func (i impl) List(filter ListFilter) (list []dbmodels.TrainingPlan, err error) {
	list = []dbmodels.TrainingPlan{}
	err = i.listQuery(filter).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Preload("Employee").
		Preload("Items").
		Preload("Items.Course").
		Order("year desc, created_at desc").
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

func (i impl) CountByStatus() (rows []StatusCountRow, err error) {
	rows = []StatusCountRow{}
	err = i.db.
		Model(&dbmodels.TrainingPlan{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
