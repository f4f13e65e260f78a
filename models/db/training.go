package dbmodels

import (
	"erp-tools-backend/models"
	"time"
)

type TrainingCourse struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex"`
	Description string
	Provider    string `gorm:"type:varchar(255)"`
	DurationHrs int
	Skills      []TrainingSkill `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// TrainingPlan один план на сотрудника в год
type TrainingPlan struct {
	BaseModel
	EmployeeID        string `gorm:"type:varchar(36);uniqueIndex:idx_plan_employee_year"`
	Employee          *Employee
	Year              int                       `gorm:"uniqueIndex:idx_plan_employee_year"`
	Status            models.TrainingPlanStatus `gorm:"type:varchar(50);index"`
	ApprovedByManager bool
	ApprovedByHr      bool
	ApprovedByFinance bool
	ManagerNotes      string
	HrNotes           string
	FinanceNotes      string
	Items             []TrainingPlanItem `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

func (r TrainingPlan) HasCourse(courseID string) bool {
	for _, item := range r.Items {
		if item.CourseID == courseID {
			return true
		}
	}
	return false
}

type TrainingPlanItem struct {
	BaseModel
	PlanID        string `gorm:"type:varchar(36);index"`
	CourseID      string `gorm:"type:varchar(36)"`
	Course        *TrainingCourse
	Quarter       int
	Priority      int
	Status        models.TrainingItemStatus `gorm:"type:varchar(50);index"`
	ScheduledDate *time.Time
	CompletedDate *time.Time
	// оценки 1..5, выставляются после завершения
	EmployeeRating   *int
	EmployeeComments string
	ManagerRating    *int
	ManagerComments  string
}
