package employeeapimodels

import (
	apimodels "erp-tools-backend/models/api"
	dbmodels "erp-tools-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type EmployeeData struct {
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	DepartmentID    string     `json:"department_id"`
	JobTitleID      string     `json:"job_title_id"`
	ManagerID       string     `json:"manager_id"`
	SecondManagerID string     `json:"second_manager_id"`
	IsHr            bool       `json:"is_hr"`
	IsFinance       bool       `json:"is_finance"`
	HireDate        *time.Time `json:"hire_date"`
	UserID          string     `json:"user_id"`
}

func (r EmployeeData) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("не указаны фамилия и имя сотрудника")
	}
	return nil
}

type EmployeeFilter struct {
	apimodels.Pagination
	DepartmentID string `json:"department_id"`
	JobTitleID   string `json:"job_title_id"`
	ManagerID    string `json:"manager_id"`
	Search       string `json:"search"`
}

type EmployeeView struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	DepartmentID   string     `json:"department_id,omitempty"`
	DepartmentName string     `json:"department_name,omitempty"`
	JobTitleID     string     `json:"job_title_id,omitempty"`
	JobTitleName   string     `json:"job_title_name,omitempty"`
	ManagerID      string     `json:"manager_id,omitempty"`
	ManagerName    string     `json:"manager_name,omitempty"`
	IsHr           bool       `json:"is_hr"`
	IsFinance      bool       `json:"is_finance"`
	HireDate       *time.Time `json:"hire_date,omitempty"`
	UserID         string     `json:"user_id,omitempty"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		FullName:  rec.GetFullName(),
		Email:     rec.Email,
		Phone:     rec.Phone,
		IsHr:      rec.IsHr,
		IsFinance: rec.IsFinance,
		HireDate:  rec.HireDate,
	}
	if rec.DepartmentID != nil {
		view.DepartmentID = *rec.DepartmentID
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	if rec.JobTitleID != nil {
		view.JobTitleID = *rec.JobTitleID
	}
	if rec.JobTitle != nil {
		view.JobTitleName = rec.JobTitle.Name
	}
	if rec.ManagerID != nil {
		view.ManagerID = *rec.ManagerID
	}
	if rec.Manager != nil {
		view.ManagerName = rec.Manager.GetFullName()
	}
	if rec.UserID != nil {
		view.UserID = *rec.UserID
	}
	return view
}
