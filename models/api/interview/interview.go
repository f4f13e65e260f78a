package interviewapimodels

import (
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"
	dbmodels "erp-tools-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type InterviewData struct {
	CandidateName string     `json:"candidate_name"`
	CandidateMail string     `json:"candidate_mail"`
	JobTitleID    string     `json:"job_title_id"`
	InterviewerID string     `json:"interviewer_id"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	Notes         string     `json:"notes"`
}

func (r InterviewData) Validate() error {
	if r.CandidateName == "" {
		return errors.New("не указано имя кандидата")
	}
	if r.ScheduledAt == nil {
		return errors.New("не указана дата интервью")
	}
	return nil
}

type InterviewFilter struct {
	apimodels.Pagination
	Status        models.InterviewStatus `json:"status"`
	InterviewerID string                 `json:"interviewer_id"`
}

type InterviewView struct {
	ID              string                 `json:"id"`
	CandidateName   string                 `json:"candidate_name"`
	CandidateMail   string                 `json:"candidate_mail,omitempty"`
	JobTitleID      string                 `json:"job_title_id,omitempty"`
	JobTitleName    string                 `json:"job_title_name,omitempty"`
	InterviewerID   string                 `json:"interviewer_id,omitempty"`
	InterviewerName string                 `json:"interviewer_name,omitempty"`
	ScheduledAt     *time.Time             `json:"scheduled_at"`
	Status          models.InterviewStatus `json:"status"`
	Notes           string                 `json:"notes,omitempty"`
}

func InterviewConvert(rec dbmodels.Interview) InterviewView {
	view := InterviewView{
		ID:            rec.ID,
		CandidateName: rec.CandidateName,
		CandidateMail: rec.CandidateMail,
		ScheduledAt:   rec.ScheduledAt,
		Status:        rec.Status,
		Notes:         rec.Notes,
	}
	if rec.JobTitleID != nil {
		view.JobTitleID = *rec.JobTitleID
	}
	if rec.JobTitle != nil {
		view.JobTitleName = rec.JobTitle.Name
	}
	if rec.InterviewerID != nil {
		view.InterviewerID = *rec.InterviewerID
	}
	if rec.Interviewer != nil {
		view.InterviewerName = rec.Interviewer.GetFullName()
	}
	return view
}
