package dbmodels

import (
	"erp-tools-backend/models"
	"time"
)

type Availability struct {
	BaseModel
	EmployeeID        string `gorm:"type:varchar(36);index"`
	Employee          *Employee
	DateFrom          *time.Time
	DateTo            *time.Time
	Reason            string
	Status            models.AvailabilityStatus `gorm:"type:varchar(50);index"`
	ApprovedByManager bool
	ApprovedByHr      bool
	ManagerNotes      string
	HrNotes           string
}

// ReadyForApproval обе стороны согласовали, статус еще не переведен
func (r Availability) ReadyForApproval() bool {
	return r.Status == models.AvailabilityStatusRequested &&
		r.ApprovedByManager && r.ApprovedByHr
}
