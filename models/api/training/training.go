package trainingapimodels

import (
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"
	dbmodels "erp-tools-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type CourseData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
	DurationHrs int    `json:"duration_hrs"`
}

func (r CourseData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название курса")
	}
	return nil
}

type CourseView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Provider    string `json:"provider,omitempty"`
	DurationHrs int    `json:"duration_hrs,omitempty"`
}

func CourseConvert(rec dbmodels.TrainingCourse) CourseView {
	return CourseView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Provider:    rec.Provider,
		DurationHrs: rec.DurationHrs,
	}
}

type PlanData struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
}

func (r PlanData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.Year < 2000 || r.Year > 2100 {
		return errors.New("не указан год плана")
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
	case models.PartyManager, models.PartyHr, models.PartyFinance:
		return nil
	}
	return errors.Errorf("не указана сторона отклонения: %v", r.Party)
}

type PlanFilter struct {
	apimodels.Pagination
	EmployeeID string                    `json:"employee_id"`
	Year       int                       `json:"year"`
	Status     models.TrainingPlanStatus `json:"status"`
}

type ItemData struct {
	CourseID string `json:"course_id"`
	Quarter  int    `json:"quarter"`
	Priority int    `json:"priority"`
}

func (r ItemData) Validate() error {
	if r.CourseID == "" {
		return errors.New("не указан курс")
	}
	if r.Quarter < 1 || r.Quarter > 4 {
		return errors.New("квартал должен быть от 1 до 4")
	}
	if r.Priority < models.ItemPriorityLow || r.Priority > models.ItemPriorityHigh {
		return errors.New("приоритет должен быть от 1 до 3")
	}
	return nil
}

type ScheduleData struct {
	Date *time.Time `json:"date"`
}

func (r ScheduleData) Validate() error {
	if r.Date == nil {
		return errors.New("не указана дата обучения")
	}
	return nil
}

type CompleteData struct {
	Date     *time.Time `json:"date"`
	Rating   *int       `json:"rating"`
	Comments string     `json:"comments"`
}

func (r CompleteData) Validate() error {
	if r.Date == nil {
		return errors.New("не указана дата завершения")
	}
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		return errors.New("оценка должна быть от 1 до 5")
	}
	return nil
}

type EvaluationData struct {
	Rating   *int   `json:"rating"`
	Comments string `json:"comments"`
}

func (r EvaluationData) Validate() error {
	if r.Rating == nil {
		return errors.New("не указана оценка руководителя")
	}
	if *r.Rating < 1 || *r.Rating > 5 {
		return errors.New("оценка должна быть от 1 до 5")
	}
	return nil
}

type ItemView struct {
	ID               string                    `json:"id"`
	PlanID           string                    `json:"plan_id"`
	CourseID         string                    `json:"course_id"`
	CourseName       string                    `json:"course_name,omitempty"`
	Quarter          int                       `json:"quarter"`
	Priority         int                       `json:"priority"`
	Status           models.TrainingItemStatus `json:"status"`
	StatusName       string                    `json:"status_name"`
	ScheduledDate    *time.Time                `json:"scheduled_date,omitempty"`
	CompletedDate    *time.Time                `json:"completed_date,omitempty"`
	EmployeeRating   *int                      `json:"employee_rating,omitempty"`
	EmployeeComments string                    `json:"employee_comments,omitempty"`
	ManagerRating    *int                      `json:"manager_rating,omitempty"`
	ManagerComments  string                    `json:"manager_comments,omitempty"`
}

func ItemConvert(rec dbmodels.TrainingPlanItem) ItemView {
	view := ItemView{
		ID:               rec.ID,
		PlanID:           rec.PlanID,
		CourseID:         rec.CourseID,
		Quarter:          rec.Quarter,
		Priority:         rec.Priority,
		Status:           rec.Status,
		StatusName:       rec.Status.ToHuman(),
		ScheduledDate:    rec.ScheduledDate,
		CompletedDate:    rec.CompletedDate,
		EmployeeRating:   rec.EmployeeRating,
		EmployeeComments: rec.EmployeeComments,
		ManagerRating:    rec.ManagerRating,
		ManagerComments:  rec.ManagerComments,
	}
	if rec.Course != nil {
		view.CourseName = rec.Course.Name
	}
	return view
}

type PlanView struct {
	ID                string                    `json:"id"`
	EmployeeID        string                    `json:"employee_id"`
	EmployeeName      string                    `json:"employee_name,omitempty"`
	Year              int                       `json:"year"`
	Status            models.TrainingPlanStatus `json:"status"`
	StatusName        string                    `json:"status_name"`
	ApprovedByManager bool                      `json:"approved_by_manager"`
	ApprovedByHr      bool                      `json:"approved_by_hr"`
	ApprovedByFinance bool                      `json:"approved_by_finance"`
	ManagerNotes      string                    `json:"manager_notes,omitempty"`
	HrNotes           string                    `json:"hr_notes,omitempty"`
	FinanceNotes      string                    `json:"finance_notes,omitempty"`
	Items             []ItemView                `json:"items"`
}

func PlanConvert(rec dbmodels.TrainingPlan) PlanView {
	view := PlanView{
		ID:                rec.ID,
		EmployeeID:        rec.EmployeeID,
		Year:              rec.Year,
		Status:            rec.Status,
		StatusName:        rec.Status.ToHuman(),
		ApprovedByManager: rec.ApprovedByManager,
		ApprovedByHr:      rec.ApprovedByHr,
		ApprovedByFinance: rec.ApprovedByFinance,
		ManagerNotes:      rec.ManagerNotes,
		HrNotes:           rec.HrNotes,
		FinanceNotes:      rec.FinanceNotes,
		Items:             make([]ItemView, 0, len(rec.Items)),
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	for _, item := range rec.Items {
		view.Items = append(view.Items, ItemConvert(item))
	}
	return view
}
