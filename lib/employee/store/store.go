package employeestore

import (
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	GetByUserID(userID string) (rec *dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter ListFilter) (list []dbmodels.Employee, err error)
	ListCount(filter ListFilter) (count int64, err error)
	ListByJobTitle(jobTitleID string) (list []dbmodels.Employee, err error)
	ListHr() (list []dbmodels.Employee, err error)
	ListFinance() (list []dbmodels.Employee, err error)
	ListHiredAfter(days int) (list []dbmodels.Employee, err error)
	CountByDepartment() (rows []CountRow, err error)
}

type ListFilter struct {
	DepartmentID string
	JobTitleID   string
	ManagerID    string
	Search       string
	Page         int
	Limit        int
}

type CountRow struct {
	Name  string
	Count int64
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		Preload("Department").
		Preload("JobTitle").
		Preload("Manager").
		Preload("SecondManager").
		Preload("User").
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

func (i impl) GetByUserID(userID string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("user_id = ?", userID).
		Preload("Department").
		Preload("JobTitle").
		Preload("Manager").
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
		Model(&dbmodels.Employee{}).
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
		Delete(&dbmodels.Employee{}).
		Error
}

func (i impl) listQuery(filter ListFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Employee{})
	if filter.DepartmentID != "" {
		tx = tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.JobTitleID != "" {
		tx = tx.Where("job_title_id = ?", filter.JobTitleID)
	}
	if filter.ManagerID != "" {
		tx = tx.Where("manager_id = ? OR second_manager_id = ?", filter.ManagerID, filter.ManagerID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
	}
	return tx
}

func (i impl) List(filter ListFilter) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.listQuery(filter).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Preload("Department").
		Preload("JobTitle").
		Preload("Manager").
		Order("last_name, first_name").
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

func (i impl) ListByJobTitle(jobTitleID string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Where("job_title_id = ?", jobTitleID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListHr() (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Where("is_hr = true").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListFinance() (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Where("is_finance = true").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListHiredAfter(days int) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Where("hire_date >= now() - make_interval(days => ?)", days).
		Preload("Department").
		Preload("JobTitle").
		Order("hire_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountByDepartment() (rows []CountRow, err error) {
	rows = []CountRow{}
	err = i.db.
		Model(&dbmodels.Employee{}).
		Select("coalesce(departments.name, 'Без подразделения') as name, count(*) as count").
		Joins("left join departments on departments.id = employees.department_id").
		Group("departments.name").
		Order("count desc").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
