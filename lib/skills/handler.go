package skillshandler

import (
	"erp-tools-backend/db"
	employeestore "erp-tools-backend/lib/employee/store"
	"erp-tools-backend/lib/skillgap"
	skillsstore "erp-tools-backend/lib/skills/store"
	initchecker "erp-tools-backend/lib/utils/init-checker"
	skillsapimodels "erp-tools-backend/models/api/skills"
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	SaveEmployeeSkill(data skillsapimodels.EmployeeSkillData) (id string, err error)
	ListEmployeeSkills(employeeID string) (list []skillsapimodels.EmployeeSkillView, err error)
	DeleteEmployeeSkill(id string) error
	SaveJobRequirement(data skillsapimodels.JobRequirementData) (id string, err error)
	ListJobRequirements(jobTitleID string) (list []skillsapimodels.JobRequirementView, err error)
	DeleteJobRequirement(id string) error
	SaveTrainingSkill(data skillsapimodels.TrainingSkillData) (id string, err error)
	ListTrainingSkills(courseID string) (list []skillsapimodels.TrainingSkillView, err error)
	DeleteTrainingSkill(id string) error
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("skillgap", skillgap.Instance)
	Instance = impl{
		store:         skillsstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         skillsstore.Provider
	employeeStore employeestore.Provider
}

// SaveEmployeeSkill после сохранения проверяется разрыв
// с требованиями должности
func (i impl) SaveEmployeeSkill(data skillsapimodels.EmployeeSkillData) (id string, err error) {
	logger := log.
		WithField("employee_id", data.EmployeeID).
		WithField("skill_id", data.SkillID)
	rec, err := i.store.GetEmployeeSkill(data.EmployeeID, data.SkillID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения навыка сотрудника")
		return "", err
	}
	if rec == nil {
		rec = &dbmodels.EmployeeSkill{
			EmployeeID: data.EmployeeID,
			SkillID:    data.SkillID,
		}
	}
	rec.Level = data.Level
	id, err = i.store.SaveEmployeeSkill(*rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения навыка сотрудника")
		return "", err
	}
	logger.WithField("rec_id", id).Info("сохранен навык сотрудника")
	err = skillgap.Instance.OnSkillChanged(data.EmployeeID, data.SkillID)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (i impl) ListEmployeeSkills(employeeID string) (list []skillsapimodels.EmployeeSkillView, err error) {
	recList, err := i.store.ListEmployeeSkills(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("ошибка получения навыков сотрудника")
		return nil, err
	}
	result := make([]skillsapimodels.EmployeeSkillView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, skillsapimodels.EmployeeSkillConvert(rec))
	}
	return result, nil
}

func (i impl) DeleteEmployeeSkill(id string) error {
	err := i.store.DeleteEmployeeSkill(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка удаления навыка сотрудника")
		return err
	}
	return nil
}

// SaveJobRequirement новое требование проверяется на разрыв
// для всех сотрудников на должности
func (i impl) SaveJobRequirement(data skillsapimodels.JobRequirementData) (id string, err error) {
	logger := log.
		WithField("job_title_id", data.JobTitleID).
		WithField("skill_id", data.SkillID)
	rec, err := i.store.GetJobRequirement(data.JobTitleID, data.SkillID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения требования должности")
		return "", err
	}
	if rec == nil {
		rec = &dbmodels.JobSkillRequirement{
			JobTitleID: data.JobTitleID,
			SkillID:    data.SkillID,
		}
	}
	rec.RequiredLevel = data.RequiredLevel
	rec.Importance = data.Importance
	id, err = i.store.SaveJobRequirement(*rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения требования должности")
		return "", err
	}
	logger.WithField("rec_id", id).Info("сохранено требование должности")
	employees, err := i.employeeStore.ListByJobTitle(data.JobTitleID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения сотрудников должности")
		return "", err
	}
	for _, employee := range employees {
		err = skillgap.Instance.OnSkillChanged(employee.ID, data.SkillID)
		if err != nil {
			return "", err
		}
	}
	return id, nil
}

func (i impl) ListJobRequirements(jobTitleID string) (list []skillsapimodels.JobRequirementView, err error) {
	recList, err := i.store.ListJobRequirements(jobTitleID)
	if err != nil {
		log.WithField("job_title_id", jobTitleID).WithError(err).Error("ошибка получения требований должности")
		return nil, err
	}
	result := make([]skillsapimodels.JobRequirementView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, skillsapimodels.JobRequirementConvert(rec))
	}
	return result, nil
}

func (i impl) DeleteJobRequirement(id string) error {
	err := i.store.DeleteJobRequirement(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка удаления требования должности")
		return err
	}
	return nil
}

func (i impl) SaveTrainingSkill(data skillsapimodels.TrainingSkillData) (id string, err error) {
	rec := dbmodels.TrainingSkill{
		CourseID: data.CourseID,
		SkillID:  data.SkillID,
		Level:    data.Level,
	}
	id, err = i.store.SaveTrainingSkill(rec)
	if err != nil {
		log.WithField("course_id", data.CourseID).WithError(err).Error("ошибка сохранения навыка курса")
		return "", err
	}
	return id, nil
}

func (i impl) ListTrainingSkills(courseID string) (list []skillsapimodels.TrainingSkillView, err error) {
	recList, err := i.store.ListTrainingSkills(courseID)
	if err != nil {
		log.WithField("course_id", courseID).WithError(err).Error("ошибка получения навыков курса")
		return nil, err
	}
	result := make([]skillsapimodels.TrainingSkillView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, skillsapimodels.TrainingSkillConvert(rec))
	}
	return result, nil
}

func (i impl) DeleteTrainingSkill(id string) error {
	err := i.store.DeleteTrainingSkill(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка удаления навыка курса")
		return err
	}
	return nil
}
