package dbmodels

import (
	"erp-tools-backend/models"

	"github.com/lib/pq"
)

type Role struct {
	BaseModel
	Name        string `gorm:"type:varchar(150);uniqueIndex"`
	Description string
	Permissions []RolePermission `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

// RolePermission уровень доступа роли к модулю.
// Capabilities - производный набор CRUD-прав, пересчитывается
// из уровня при каждом изменении (см. lib/access).
type RolePermission struct {
	BaseModel
	RoleID       string             `gorm:"type:varchar(36);uniqueIndex:idx_role_module"`
	Module       models.Module      `gorm:"type:varchar(50);uniqueIndex:idx_role_module"`
	Access       models.AccessLevel `gorm:"type:varchar(50)"`
	Capabilities pq.StringArray     `gorm:"type:text[]"`
}

// AccessFor уровень доступа роли к модулю, NO_ACCESS если не задан
func (r Role) AccessFor(module models.Module) models.AccessLevel {
	for _, perm := range r.Permissions {
		if perm.Module == module {
			return perm.Access
		}
	}
	return models.AccessNone
}
