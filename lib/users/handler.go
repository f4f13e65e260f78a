package usershandler

import (
	"erp-tools-backend/db"
	rolestore "erp-tools-backend/lib/role/store"
	usersstore "erp-tools-backend/lib/users/store"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	usersapimodels "erp-tools-backend/models/api/users"
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Create(data usersapimodels.UserCreateData) (id string, err error)
	GetByID(id string) (item usersapimodels.UserView, err error)
	Update(id string, data usersapimodels.UserEditData) error
	Delete(id string) error
	List(filter usersapimodels.UserFilter) (list []usersapimodels.UserView, rowCount int64, err error)
	ChangePassword(id, password string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     usersstore.NewInstance(db.DB),
		roleStore: rolestore.NewInstance(db.DB),
	}
}

type impl struct {
	store     usersstore.Provider
	roleStore rolestore.Provider
}

func (i impl) Create(data usersapimodels.UserCreateData) (id string, err error) {
	logger := log.WithField("email", data.Email)
	exist, err := i.store.FindByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя по почте")
		return "", err
	}
	if exist != nil {
		return "", apperrors.NewValidation("пользователь с такой почтой уже существует")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.WithError(err).Error("ошибка хеширования пароля")
		return "", err
	}
	rec := dbmodels.User{
		Email:       data.Email,
		Password:    string(hash),
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		IsActive:    true,
		IsSuperuser: data.IsSuperuser,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("Ошибка создания пользователя")
		return "", err
	}
	if len(data.RoleIDs) != 0 {
		err = i.setRoles(id, data.RoleIDs)
		if err != nil {
			return "", err
		}
	}
	logger.WithField("rec_id", id).Info("Создан пользователь")
	return id, nil
}

func (i impl) GetByID(id string) (item usersapimodels.UserView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	return usersapimodels.UserConvert(*rec), nil
}

func (i impl) Update(id string, data usersapimodels.UserEditData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"FirstName": data.FirstName,
		"LastName":  data.LastName,
	}
	if data.IsActive != nil {
		updMap["IsActive"] = *data.IsActive
	}
	if data.IsSuperuser != nil {
		updMap["IsSuperuser"] = *data.IsSuperuser
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления пользователя")
		return err
	}
	if data.RoleIDs != nil {
		err = i.setRoles(rec.ID, data.RoleIDs)
		if err != nil {
			return err
		}
	}
	logger.Info("обновлен пользователь")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления пользователя")
		return err
	}
	logger.Info("удален пользователь")
	return nil
}

func (i impl) List(filter usersapimodels.UserFilter) (list []usersapimodels.UserView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	rowCount, err = i.store.ListCount(filter.Search)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка пользователей")
		return nil, 0, err
	}
	recList, err := i.store.List(filter.Search, page, limit)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка пользователей")
		return nil, 0, err
	}
	result := make([]usersapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, usersapimodels.UserConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ChangePassword(id, password string) error {
	logger := log.WithField("rec_id", id)
	if len(password) < 8 {
		return apperrors.NewValidation("пароль должен содержать не менее 8 символов")
	}
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.WithError(err).Error("ошибка хеширования пароля")
		return err
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"Password": string(hash)})
	if err != nil {
		logger.WithError(err).Error("ошибка смены пароля")
		return err
	}
	logger.Info("изменен пароль пользователя")
	return nil
}

func (i impl) setRoles(id string, roleIDs []string) error {
	roles, err := i.roleStore.GetByIDs(roleIDs)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения ролей")
		return err
	}
	if len(roles) != len(roleIDs) {
		return apperrors.NewValidation("указана несуществующая роль")
	}
	err = i.store.SetRoles(id, roles)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка назначения ролей")
		return errors.Wrap(err, "ошибка назначения ролей")
	}
	return nil
}

func (i impl) getRec(id string) (*dbmodels.User, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения пользователя")
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("пользователь не найден")
	}
	return rec, nil
}
