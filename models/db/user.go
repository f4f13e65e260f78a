package dbmodels

import (
	"time"
)

type User struct {
	BaseModel
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	IsActive    bool
	IsSuperuser bool
	Roles       []Role `gorm:"many2many:user_roles"`
	LastLogin   time.Time
}

func (r User) GetFullName() string {
	return r.FirstName + " " + r.LastName
}
