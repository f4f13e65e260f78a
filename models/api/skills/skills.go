package skillsapimodels

import (
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
)

type EmployeeSkillData struct {
	EmployeeID string `json:"employee_id"`
	SkillID    string `json:"skill_id"`
	Level      int    `json:"level"`
}

func (r EmployeeSkillData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.SkillID == "" {
		return errors.New("не указан навык")
	}
	if r.Level < 1 || r.Level > 5 {
		return errors.New("уровень навыка должен быть от 1 до 5")
	}
	return nil
}

type EmployeeSkillView struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	SkillID    string `json:"skill_id"`
	SkillName  string `json:"skill_name,omitempty"`
	Level      int    `json:"level"`
	Notes      string `json:"notes,omitempty"`
}

func EmployeeSkillConvert(rec dbmodels.EmployeeSkill) EmployeeSkillView {
	view := EmployeeSkillView{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		SkillID:    rec.SkillID,
		Level:      rec.Level,
		Notes:      rec.Notes,
	}
	if rec.Skill != nil {
		view.SkillName = rec.Skill.Name
	}
	return view
}

type JobRequirementData struct {
	JobTitleID    string `json:"job_title_id"`
	SkillID       string `json:"skill_id"`
	RequiredLevel int    `json:"required_level"`
	Importance    int    `json:"importance"`
}

func (r JobRequirementData) Validate() error {
	if r.JobTitleID == "" {
		return errors.New("не указана должность")
	}
	if r.SkillID == "" {
		return errors.New("не указан навык")
	}
	if r.RequiredLevel < 1 || r.RequiredLevel > 5 {
		return errors.New("требуемый уровень должен быть от 1 до 5")
	}
	if r.Importance < 1 || r.Importance > 3 {
		return errors.New("важность должна быть от 1 до 3")
	}
	return nil
}

type JobRequirementView struct {
	ID            string `json:"id"`
	JobTitleID    string `json:"job_title_id"`
	JobTitleName  string `json:"job_title_name,omitempty"`
	SkillID       string `json:"skill_id"`
	SkillName     string `json:"skill_name,omitempty"`
	RequiredLevel int    `json:"required_level"`
	Importance    int    `json:"importance"`
}

func JobRequirementConvert(rec dbmodels.JobSkillRequirement) JobRequirementView {
	view := JobRequirementView{
		ID:            rec.ID,
		JobTitleID:    rec.JobTitleID,
		SkillID:       rec.SkillID,
		RequiredLevel: rec.RequiredLevel,
		Importance:    rec.Importance,
	}
	if rec.JobTitle != nil {
		view.JobTitleName = rec.JobTitle.Name
	}
	if rec.Skill != nil {
		view.SkillName = rec.Skill.Name
	}
	return view
}

type TrainingSkillData struct {
	CourseID string `json:"course_id"`
	SkillID  string `json:"skill_id"`
	Level    int    `json:"level"`
}

func (r TrainingSkillData) Validate() error {
	if r.CourseID == "" {
		return errors.New("не указан курс")
	}
	if r.SkillID == "" {
		return errors.New("не указан навык")
	}
	if r.Level < 1 || r.Level > 5 {
		return errors.New("уровень навыка должен быть от 1 до 5")
	}
	return nil
}

type TrainingSkillView struct {
	ID         string `json:"id"`
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name,omitempty"`
	SkillID    string `json:"skill_id"`
	SkillName  string `json:"skill_name,omitempty"`
	Level      int    `json:"level"`
}

func TrainingSkillConvert(rec dbmodels.TrainingSkill) TrainingSkillView {
	view := TrainingSkillView{
		ID:       rec.ID,
		CourseID: rec.CourseID,
		SkillID:  rec.SkillID,
		Level:    rec.Level,
	}
	if rec.Course != nil {
		view.CourseName = rec.Course.Name
	}
	if rec.Skill != nil {
		view.SkillName = rec.Skill.Name
	}
	return view
}
