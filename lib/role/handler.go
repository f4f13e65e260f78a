package rolehandler

import (
	"erp-tools-backend/db"
	"erp-tools-backend/lib/access"
	rolestore "erp-tools-backend/lib/role/store"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	roleapimodels "erp-tools-backend/models/api/role"
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data roleapimodels.RoleData) (id string, err error)
	GetByID(id string) (item roleapimodels.RoleView, err error)
	Update(id string, data roleapimodels.RoleData) error
	Delete(id string) error
	List() (list []roleapimodels.RoleView, err error)
	SetPermission(id string, data roleapimodels.SetPermissionData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: rolestore.NewInstance(db.DB),
	}
}

type impl struct {
	store rolestore.Provider
}

func (i impl) Create(data roleapimodels.RoleData) (id string, err error) {
	rec := dbmodels.Role{
		Name:        data.Name,
		Description: data.Description,
	}
	for module, level := range data.Permissions {
		rec.Permissions = append(rec.Permissions, dbmodels.RolePermission{
			Module:       module,
			Access:       level,
			Capabilities: access.CapabilityStrings(access.RecomputeGrantedCapabilities(level)),
		})
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("Ошибка создания роли")
		return "", err
	}
	log.WithField("rec_id", id).Info("Создана роль")
	return id, nil
}

func (i impl) GetByID(id string) (item roleapimodels.RoleView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return roleapimodels.RoleView{}, err
	}
	return roleapimodels.RoleConvert(*rec), nil
}

func (i impl) Update(id string, data roleapimodels.RoleData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"Name":        data.Name,
		"Description": data.Description,
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления роли")
		return err
	}
	for module, level := range data.Permissions {
		err = i.setPermission(rec.ID, roleapimodels.SetPermissionData{Module: module, Access: level})
		if err != nil {
			return err
		}
	}
	logger.Info("обновлена роль")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления роли")
		return err
	}
	logger.Info("удалена роль")
	return nil
}

func (i impl) List() (list []roleapimodels.RoleView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка ролей")
		return nil, err
	}
	result := make([]roleapimodels.RoleView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, roleapimodels.RoleConvert(rec))
	}
	return result, nil
}

// SetPermission смена уровня доступа роли к модулю.
// Набор CRUD-прав пересчитывается из уровня целиком,
// от прежнего уровня ничего не остается.
func (i impl) SetPermission(id string, data roleapimodels.SetPermissionData) error {
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	return i.setPermission(id, data)
}

func (i impl) setPermission(roleID string, data roleapimodels.SetPermissionData) error {
	logger := log.
		WithField("rec_id", roleID).
		WithField("module", data.Module)
	perm, err := i.store.GetPermission(roleID, string(data.Module))
	if err != nil {
		logger.WithError(err).Error("ошибка получения разрешения роли")
		return err
	}
	if perm == nil {
		perm = &dbmodels.RolePermission{
			RoleID: roleID,
			Module: data.Module,
		}
	}
	perm.Access = data.Access
	perm.Capabilities = access.CapabilityStrings(access.RecomputeGrantedCapabilities(data.Access))
	err = i.store.SavePermission(*perm)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения разрешения роли")
		return err
	}
	logger.
		WithField("access", data.Access).
		Info("обновлен уровень доступа роли")
	return nil
}

func (i impl) getRec(id string) (*dbmodels.Role, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения роли")
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("роль не найдена")
	}
	return rec, nil
}
