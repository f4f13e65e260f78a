package availabilityapimodels

import (
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"
	dbmodels "erp-tools-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type AvailabilityData struct {
	EmployeeID string     `json:"employee_id"`
	DateFrom   *time.Time `json:"date_from"`
	DateTo     *time.Time `json:"date_to"`
	Reason     string     `json:"reason"`
}

func (r AvailabilityData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.DateFrom == nil || r.DateTo == nil {
		return errors.New("не указан период")
	}
	if r.DateTo.Before(*r.DateFrom) {
		return errors.New("дата окончания раньше даты начала")
	}
	return nil
}

type ApproveData struct {
	Notes string `json:"notes"`
}

func (r ApproveData) Validate() error {
	return nil
}

type RejectData struct {
	Party models.ApproverParty `json:"party"`
	Notes string               `json:"notes"`
}

func (r RejectData) Validate() error {
	switch r.Party {
	case models.PartyManager, models.PartyHr:
		return nil
	}
	return errors.Errorf("не указана сторона отклонения: %v", r.Party)
}

type AvailabilityFilter struct {
	apimodels.Pagination
	EmployeeID string                    `json:"employee_id"`
	Status     models.AvailabilityStatus `json:"status"`
}

type AvailabilityView struct {
	ID                string                    `json:"id"`
	EmployeeID        string                    `json:"employee_id"`
	EmployeeName      string                    `json:"employee_name,omitempty"`
	DateFrom          *time.Time                `json:"date_from"`
	DateTo            *time.Time                `json:"date_to"`
	Reason            string                    `json:"reason,omitempty"`
	Status            models.AvailabilityStatus `json:"status"`
	StatusName        string                    `json:"status_name"`
	ApprovedByManager bool                      `json:"approved_by_manager"`
	ApprovedByHr      bool                      `json:"approved_by_hr"`
	ManagerNotes      string                    `json:"manager_notes,omitempty"`
	HrNotes           string                    `json:"hr_notes,omitempty"`
}

func AvailabilityConvert(rec dbmodels.Availability) AvailabilityView {
	view := AvailabilityView{
		ID:                rec.ID,
		EmployeeID:        rec.EmployeeID,
		DateFrom:          rec.DateFrom,
		DateTo:            rec.DateTo,
		Reason:            rec.Reason,
		Status:            rec.Status,
		StatusName:        rec.Status.ToHuman(),
		ApprovedByManager: rec.ApprovedByManager,
		ApprovedByHr:      rec.ApprovedByHr,
		ManagerNotes:      rec.ManagerNotes,
		HrNotes:           rec.HrNotes,
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	return view
}
