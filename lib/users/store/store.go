package usersstore

import (
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(search string, page, limit int) (list []dbmodels.User, err error)
	ListCount(search string) (count int64, err error)
	SetRoles(id string, roles []dbmodels.Role) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("id = ?", id).
		Preload("Roles.Permissions").
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

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("email = ?", email).
		Preload("Roles.Permissions").
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
		Model(&dbmodels.User{}).
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
		Select("Roles").
		Delete(&dbmodels.User{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}

func (i impl) listQuery(search string) *gorm.DB {
	tx := i.db.Model(&dbmodels.User{})
	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", like, like, like)
	}
	return tx
}

func (i impl) List(search string, page, limit int) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	err = i.listQuery(search).
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Roles").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(search string) (count int64, err error) {
	err = i.listQuery(search).Count(&count).Error
	return count, err
}

func (i impl) SetRoles(id string, roles []dbmodels.Role) error {
	rec := dbmodels.User{BaseModel: dbmodels.BaseModel{ID: id}}
	return i.db.
		Model(&rec).
		Association("Roles").
		Replace(roles)
}
