package dbmodels

import (
	"erp-tools-backend/models"
	"time"
)

type Interview struct {
	BaseModel
	CandidateName string `gorm:"type:varchar(255)"`
	CandidateMail string `gorm:"type:varchar(255)"`
	JobTitleID    *string
	JobTitle      *JobTitle
	InterviewerID *string
	Interviewer   *Employee `gorm:"foreignKey:InterviewerID"`
	ScheduledAt   *time.Time
	Status        models.InterviewStatus `gorm:"type:varchar(50);index"`
	Notes         string
}
