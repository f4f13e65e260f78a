package dbmodels

import (
	"erp-tools-backend/models"
	"time"
)

type Mission struct {
	BaseModel
	EmployeeID string `gorm:"type:varchar(36);index"`
	Employee   *Employee
	Purpose    string
	Location   string `gorm:"type:varchar(255)"`
	DateFrom   *time.Time
	DateTo     *time.Time
	Status     models.MissionStatus `gorm:"type:varchar(50);index"`
	// флаги согласования выставляются только вперед, сбрасываются лишь при отклонении
	ApprovedByManager bool
	ApprovedByHr      bool
	ApprovedByFinance bool
	ManagerNotes      string
	HrNotes           string
	FinanceNotes      string
	Report            string
	ReportSubmitted   bool
	ReportDate        *time.Time
	// ключ файла приказа о командировке в хранилище
	OrderFileKey string `gorm:"type:varchar(255)"`
}
