package roleapimodels

import (
	"erp-tools-backend/models"
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
)

type RoleData struct {
	Name        string                               `json:"name"`
	Description string                               `json:"description"`
	Permissions map[models.Module]models.AccessLevel `json:"permissions"`
}

func (r RoleData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название роли")
	}
	for module, level := range r.Permissions {
		if !level.IsValid() {
			return errors.Errorf("недопустимый уровень доступа %v для модуля %v", level, module)
		}
	}
	return nil
}

type SetPermissionData struct {
	Module models.Module      `json:"module"`
	Access models.AccessLevel `json:"access"`
}

func (r SetPermissionData) Validate() error {
	if r.Module == "" {
		return errors.New("не указан модуль")
	}
	if !r.Access.IsValid() {
		return errors.Errorf("недопустимый уровень доступа: %v", r.Access)
	}
	return nil
}

type PermissionView struct {
	Module       models.Module      `json:"module"`
	Access       models.AccessLevel `json:"access"`
	AccessName   string             `json:"access_name"`
	Capabilities []string           `json:"capabilities"`
}

type RoleView struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Permissions []PermissionView `json:"permissions"`
}

func RoleConvert(rec dbmodels.Role) RoleView {
	view := RoleView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Permissions: make([]PermissionView, 0, len(rec.Permissions)),
	}
	for _, perm := range rec.Permissions {
		view.Permissions = append(view.Permissions, PermissionView{
			Module:       perm.Module,
			Access:       perm.Access,
			AccessName:   perm.Access.ToHuman(),
			Capabilities: perm.Capabilities,
		})
	}
	return view
}
