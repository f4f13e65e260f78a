package skillsstore

import (
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	// навыки сотрудника
	SaveEmployeeSkill(rec dbmodels.EmployeeSkill) (id string, err error)
	GetEmployeeSkill(employeeID, skillID string) (rec *dbmodels.EmployeeSkill, err error)
	ListEmployeeSkills(employeeID string) (list []dbmodels.EmployeeSkill, err error)
	DeleteEmployeeSkill(id string) error
	// требования должности
	SaveJobRequirement(rec dbmodels.JobSkillRequirement) (id string, err error)
	GetJobRequirement(jobTitleID, skillID string) (rec *dbmodels.JobSkillRequirement, err error)
	ListJobRequirements(jobTitleID string) (list []dbmodels.JobSkillRequirement, err error)
	DeleteJobRequirement(id string) error
	// навыки курсов
	SaveTrainingSkill(rec dbmodels.TrainingSkill) (id string, err error)
	ListTrainingSkills(courseID string) (list []dbmodels.TrainingSkill, err error)
	DeleteTrainingSkill(id string) error
	// покрытие: сколько требований должностей закрыто навыками сотрудников
	SkillCoverage() (rows []CoverageRow, err error)
}

// CoverageRow строка отчета покрытия навыков по должностям
type CoverageRow struct {
	SkillID       string
	SkillName     string
	JobTitleName  string
	RequiredLevel int
	Required      int64
	Covered       int64
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveEmployeeSkill(rec dbmodels.EmployeeSkill) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetEmployeeSkill(employeeID, skillID string) (*dbmodels.EmployeeSkill, error) {
	rec := dbmodels.EmployeeSkill{}
	err := i.db.
		Where("employee_id = ?", employeeID).
		Where("skill_id = ?", skillID).
		Preload("Skill").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListEmployeeSkills(employeeID string) (list []dbmodels.EmployeeSkill, err error) {
	list = []dbmodels.EmployeeSkill{}
	err = i.db.
		Where("employee_id = ?", employeeID).
		Preload("Skill").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteEmployeeSkill(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.EmployeeSkill{}).
		Error
}

func (i impl) SaveJobRequirement(rec dbmodels.JobSkillRequirement) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetJobRequirement(jobTitleID, skillID string) (*dbmodels.JobSkillRequirement, error) {
	rec := dbmodels.JobSkillRequirement{}
	err := i.db.
		Where("job_title_id = ?", jobTitleID).
		Where("skill_id = ?", skillID).
		Preload("Skill").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListJobRequirements(jobTitleID string) (list []dbmodels.JobSkillRequirement, err error) {
	list = []dbmodels.JobSkillRequirement{}
	err = i.db.
		Where("job_title_id = ?", jobTitleID).
		Preload("Skill").
		Order("importance desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteJobRequirement(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.JobSkillRequirement{}).
		Error
}

func (i impl) SaveTrainingSkill(rec dbmodels.TrainingSkill) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListTrainingSkills(courseID string) (list []dbmodels.TrainingSkill, err error) {
	list = []dbmodels.TrainingSkill{}
	err = i.db.
		Where("course_id = ?", courseID).
		Preload("Skill").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteTrainingSkill(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.TrainingSkill{}).
		Error
}

// SkillCoverage по каждому требованию должности считается число
// сотрудников на должности и число достигших требуемого уровня
func (i impl) SkillCoverage() (rows []CoverageRow, err error) {
	rows = []CoverageRow{}
	err = i.db.
		Model(&dbmodels.JobSkillRequirement{}).
		Select(`skills.id as skill_id,
			skills.name as skill_name,
			job_titles.name as job_title_name,
			job_skill_requirements.required_level,
			count(employees.id) as required,
			count(employee_skills.id) filter (where employee_skills.level >= job_skill_requirements.required_level) as covered`).
		Joins("join skills on skills.id = job_skill_requirements.skill_id").
		Joins("join job_titles on job_titles.id = job_skill_requirements.job_title_id").
		Joins("left join employees on employees.job_title_id = job_skill_requirements.job_title_id").
		Joins("left join employee_skills on employee_skills.employee_id = employees.id and employee_skills.skill_id = job_skill_requirements.skill_id").
		Group("skills.id, skills.name, job_titles.name, job_skill_requirements.required_level").
		Order("job_titles.name, skills.name").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
