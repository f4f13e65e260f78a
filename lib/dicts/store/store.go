package dictsstore

import (
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	// подразделения
	CreateDepartment(rec dbmodels.Department) (id string, err error)
	GetDepartment(id string) (rec *dbmodels.Department, err error)
	UpdateDepartment(id string, updMap map[string]interface{}) error
	DeleteDepartment(id string) error
	ListDepartments() (list []dbmodels.Department, err error)
	// должности
	CreateJobTitle(rec dbmodels.JobTitle) (id string, err error)
	GetJobTitle(id string) (rec *dbmodels.JobTitle, err error)
	UpdateJobTitle(id string, updMap map[string]interface{}) error
	DeleteJobTitle(id string) error
	ListJobTitles() (list []dbmodels.JobTitle, err error)
	// навыки
	CreateSkill(rec dbmodels.Skill) (id string, err error)
	GetSkill(id string) (rec *dbmodels.Skill, err error)
	UpdateSkill(id string, updMap map[string]interface{}) error
	DeleteSkill(id string) error
	ListSkills() (list []dbmodels.Skill, err error)
	// валюты
	CreateCurrency(rec dbmodels.Currency) (id string, err error)
	GetCurrency(id string) (rec *dbmodels.Currency, err error)
	UpdateCurrency(id string, updMap map[string]interface{}) error
	DeleteCurrency(id string) error
	ListCurrencies() (list []dbmodels.Currency, err error)
	SetDefaultCurrency(id string) error
	// реквизиты компании
	GetCompanySettings() (rec *dbmodels.CompanySettings, err error)
	SaveCompanySettings(rec dbmodels.CompanySettings) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) create(rec interface{}) error {
	return i.db.
		Save(rec).
		Error
}

func (i impl) getByID(id string, rec interface{}) (found bool, err error) {
	err = i.db.
		Where("id = ?", id).
		First(rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) update(model interface{}, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(model).
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

func (i impl) CreateDepartment(rec dbmodels.Department) (id string, err error) {
	if err = i.create(&rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetDepartment(id string) (*dbmodels.Department, error) {
	rec := dbmodels.Department{}
	found, err := i.getByID(id, &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (i impl) UpdateDepartment(id string, updMap map[string]interface{}) error {
	return i.update(&dbmodels.Department{}, id, updMap)
}

func (i impl) DeleteDepartment(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Department{}).
		Error
}

func (i impl) ListDepartments() (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	err = i.db.
		Preload("Parent").
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateJobTitle(rec dbmodels.JobTitle) (id string, err error) {
	if err = i.create(&rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetJobTitle(id string) (*dbmodels.JobTitle, error) {
	rec := dbmodels.JobTitle{}
	err := i.db.
		Where("id = ?", id).
		Preload("Department").
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

func (i impl) UpdateJobTitle(id string, updMap map[string]interface{}) error {
	return i.update(&dbmodels.JobTitle{}, id, updMap)
}

func (i impl) DeleteJobTitle(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.JobTitle{}).
		Error
}

func (i impl) ListJobTitles() (list []dbmodels.JobTitle, err error) {
	list = []dbmodels.JobTitle{}
	err = i.db.
		Preload("Department").
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateSkill(rec dbmodels.Skill) (id string, err error) {
	if err = i.create(&rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetSkill(id string) (*dbmodels.Skill, error) {
	rec := dbmodels.Skill{}
	found, err := i.getByID(id, &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (i impl) UpdateSkill(id string, updMap map[string]interface{}) error {
	return i.update(&dbmodels.Skill{}, id, updMap)
}

func (i impl) DeleteSkill(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Skill{}).
		Error
}

func (i impl) ListSkills() (list []dbmodels.Skill, err error) {
	list = []dbmodels.Skill{}
	err = i.db.
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateCurrency(rec dbmodels.Currency) (id string, err error) {
	if err = i.create(&rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetCurrency(id string) (*dbmodels.Currency, error) {
	rec := dbmodels.Currency{}
	found, err := i.getByID(id, &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (i impl) UpdateCurrency(id string, updMap map[string]interface{}) error {
	return i.update(&dbmodels.Currency{}, id, updMap)
}

func (i impl) DeleteCurrency(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Currency{}).
		Error
}

func (i impl) ListCurrencies() (list []dbmodels.Currency, err error) {
	list = []dbmodels.Currency{}
	err = i.db.
		Order("code").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// SetDefaultCurrency признак по умолчанию в одной транзакции
// снимается со всех прочих валют
func (i impl) SetDefaultCurrency(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.Currency{}).
			Where("id <> ?", id).
			Where("is_default = true").
			Update("is_default", false).
			Error
		if err != nil {
			return err
		}
		res := tx.
			Model(&dbmodels.Currency{}).
			Where("id = ?", id).
			Update("is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("запись не найдена")
		}
		return nil
	})
}

func (i impl) GetCompanySettings() (*dbmodels.CompanySettings, error) {
	rec := dbmodels.CompanySettings{}
	err := i.db.
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

func (i impl) SaveCompanySettings(rec dbmodels.CompanySettings) error {
	return i.db.
		Save(&rec).
		Error
}
