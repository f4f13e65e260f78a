package missionapimodels

import (
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"
	dbmodels "erp-tools-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type MissionData struct {
	EmployeeID string     `json:"employee_id"`
	Purpose    string     `json:"purpose"`
	Location   string     `json:"location"`
	DateFrom   *time.Time `json:"date_from"`
	DateTo     *time.Time `json:"date_to"`
}

func (r MissionData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.Location == "" {
		return errors.New("не указано место командировки")
	}
	if r.DateFrom == nil || r.DateTo == nil {
		return errors.New("не указаны даты командировки")
	}
	if r.DateTo.Before(*r.DateFrom) {
		return errors.New("дата окончания раньше даты начала")
	}
	return nil
}

// ApproveData примечание согласующей стороны
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
	case models.PartyManager, models.PartyHr, models.PartyFinance:
		return nil
	}
	return errors.Errorf("не указана сторона отклонения: %v", r.Party)
}

type ReportData struct {
	Report string `json:"report"`
}

func (r ReportData) Validate() error {
	if strings.TrimSpace(r.Report) == "" {
		return errors.New("не заполнен отчет о командировке")
	}
	return nil
}

type BulkData struct {
	IDs []string `json:"ids"`
}

func (r BulkData) Validate() error {
	if len(r.IDs) == 0 {
		return errors.New("не указаны записи")
	}
	return nil
}

type MissionFilter struct {
	apimodels.Pagination
	EmployeeID string               `json:"employee_id"`
	Status     models.MissionStatus `json:"status"`
}

type MissionView struct {
	ID                string               `json:"id"`
	EmployeeID        string               `json:"employee_id"`
	EmployeeName      string               `json:"employee_name,omitempty"`
	Purpose           string               `json:"purpose"`
	Location          string               `json:"location"`
	DateFrom          *time.Time           `json:"date_from"`
	DateTo            *time.Time           `json:"date_to"`
	Status            models.MissionStatus `json:"status"`
	StatusName        string               `json:"status_name"`
	ApprovedByManager bool                 `json:"approved_by_manager"`
	ApprovedByHr      bool                 `json:"approved_by_hr"`
	ApprovedByFinance bool                 `json:"approved_by_finance"`
	ManagerNotes      string               `json:"manager_notes,omitempty"`
	HrNotes           string               `json:"hr_notes,omitempty"`
	FinanceNotes      string               `json:"finance_notes,omitempty"`
	Report            string               `json:"report,omitempty"`
	ReportSubmitted   bool                 `json:"report_submitted"`
	ReportDate        *time.Time           `json:"report_date,omitempty"`
	OrderFileKey      string               `json:"order_file_key,omitempty"`
}

func MissionConvert(rec dbmodels.Mission) MissionView {
	view := MissionView{
		ID:                rec.ID,
		EmployeeID:        rec.EmployeeID,
		Purpose:           rec.Purpose,
		Location:          rec.Location,
		DateFrom:          rec.DateFrom,
		DateTo:            rec.DateTo,
		Status:            rec.Status,
		StatusName:        rec.Status.ToHuman(),
		ApprovedByManager: rec.ApprovedByManager,
		ApprovedByHr:      rec.ApprovedByHr,
		ApprovedByFinance: rec.ApprovedByFinance,
		ManagerNotes:      rec.ManagerNotes,
		HrNotes:           rec.HrNotes,
		FinanceNotes:      rec.FinanceNotes,
		Report:            rec.Report,
		ReportSubmitted:   rec.ReportSubmitted,
		ReportDate:        rec.ReportDate,
		OrderFileKey:      rec.OrderFileKey,
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	return view
}
