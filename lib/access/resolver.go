package access

import (
	"erp-tools-backend/db"
	usersstore "erp-tools-backend/lib/users/store"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	"erp-tools-backend/models"
	dbmodels "erp-tools-backend/models/db"
)

type Provider interface {
	Resolve(userID string, module models.Module) (models.AccessLevel, error)
	ResolveAll(userID string) (map[models.Module]models.AccessLevel, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

// Resolve итоговый уровень доступа пользователя к модулю.
// Берется максимум по всем ролям пользователя, суперпользователь
// получает ADMIN безусловно.
func (i impl) Resolve(userID string, module models.Module) (models.AccessLevel, error) {
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return models.AccessNone, err
	}
	if rec == nil {
		return models.AccessNone, apperrors.NewNotFound("пользователь не найден")
	}
	return resolveForUser(*rec, module), nil
}

func (i impl) ResolveAll(userID string) (map[models.Module]models.AccessLevel, error) {
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("пользователь не найден")
	}
	result := make(map[models.Module]models.AccessLevel, len(models.AllModules))
	for _, module := range models.AllModules {
		result[module] = resolveForUser(*rec, module)
	}
	return result, nil
}

func resolveForUser(rec dbmodels.User, module models.Module) models.AccessLevel {
	if rec.IsSuperuser {
		return models.AccessAdmin
	}
	level := models.AccessNone
	for _, role := range rec.Roles {
		level = models.MaxAccess(level, role.AccessFor(module))
	}
	return level
}
