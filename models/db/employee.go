package dbmodels

import (
	"fmt"
	"time"
)

type Employee struct {
	BaseModel
	FirstName       string `gorm:"type:varchar(150)"`
	LastName        string `gorm:"type:varchar(150)"`
	Email           string `gorm:"type:varchar(255)"`
	Phone           string `gorm:"type:varchar(30)"`
	DepartmentID    *string
	Department      *Department
	JobTitleID      *string
	JobTitle        *JobTitle
	ManagerID       *string
	Manager         *Employee `gorm:"foreignKey:ManagerID"`
	SecondManagerID *string
	SecondManager   *Employee `gorm:"foreignKey:SecondManagerID"`
	IsHr            bool
	IsFinance       bool
	HireDate        *time.Time
	// учетная запись, не более одного сотрудника на пользователя
	UserID *string `gorm:"type:varchar(36);uniqueIndex"`
	User   *User
}

func (r Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
