package rolestore

import (
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Role) (id string, err error)
	GetByID(id string) (rec *dbmodels.Role, err error)
	GetByIDs(ids []string) (list []dbmodels.Role, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.Role, err error)
	GetPermission(roleID string, module string) (rec *dbmodels.RolePermission, err error)
	SavePermission(rec dbmodels.RolePermission) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Role) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Role, error) {
	rec := dbmodels.Role{}
	err := i.db.
		Where("id = ?", id).
		Preload("Permissions").
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

func (i impl) GetByIDs(ids []string) (list []dbmodels.Role, err error) {
	list = []dbmodels.Role{}
	err = i.db.
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Role{}).
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
		Delete(&dbmodels.Role{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}

func (i impl) List() (list []dbmodels.Role, err error) {
	list = []dbmodels.Role{}
	err = i.db.
		Preload("Permissions").
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetPermission(roleID string, module string) (*dbmodels.RolePermission, error) {
	rec := dbmodels.RolePermission{}
	err := i.db.
		Where("role_id = ?", roleID).
		Where("module = ?", module).
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

func (i impl) SavePermission(rec dbmodels.RolePermission) error {
	return i.db.
		Save(&rec).
		Error
}
