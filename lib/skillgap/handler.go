package skillgap

import (
	"fmt"
	"time"

	"erp-tools-backend/db"
	employeestore "erp-tools-backend/lib/employee/store"
	skillsstore "erp-tools-backend/lib/skills/store"
	trainingcoursestore "erp-tools-backend/lib/training/course-store"
	trainingitemstore "erp-tools-backend/lib/training/item-store"
	trainingplanstore "erp-tools-backend/lib/training/plan-store"
	"erp-tools-backend/lib/utils/helpers"
	"erp-tools-backend/models"
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// Provider закрытие разрывов между навыками сотрудника и требованиями
// должности через план обучения.
type Provider interface {
	// OnSkillChanged вызывается после изменения навыка сотрудника
	// или требования должности: при разрыве подбирается курс
	// и добавляется в черновик плана текущего года
	OnSkillChanged(employeeID, skillID string) error
	// OnCourseCompleted вызывается после завершения пункта плана:
	// уровни навыков подтягиваются до уровня курса, но никогда не понижаются
	OnCourseCompleted(employeeID, courseID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db.DB),
		skillsStore:   skillsstore.NewInstance(db.DB),
		courseStore:   trainingcoursestore.NewInstance(db.DB),
		planStore:     trainingplanstore.NewInstance(db.DB),
		itemStore:     trainingitemstore.NewInstance(db.DB),
	}
}

type impl struct {
	employeeStore employeestore.Provider
	skillsStore   skillsstore.Provider
	courseStore   trainingcoursestore.Provider
	planStore     trainingplanstore.Provider
	itemStore     trainingitemstore.Provider
}

func (i impl) OnSkillChanged(employeeID, skillID string) error {
	logger := log.
		WithField("employee_id", employeeID).
		WithField("skill_id", skillID)
	employee, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения сотрудника")
		return err
	}
	if employee == nil || employee.JobTitleID == nil {
		return nil
	}
	requirement, err := i.skillsStore.GetJobRequirement(*employee.JobTitleID, skillID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения требования должности")
		return err
	}
	if requirement == nil {
		return nil
	}
	current := 0
	employeeSkill, err := i.skillsStore.GetEmployeeSkill(employeeID, skillID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения навыка сотрудника")
		return err
	}
	if employeeSkill != nil {
		current = employeeSkill.Level
	}
	if current >= requirement.RequiredLevel {
		return nil
	}
	return i.enroll(employeeID, *requirement, logger)
}

// enroll в черновик плана добавляется курс, закрывающий разрыв.
// Повторный вызов с тем же разрывом ничего не добавляет.
func (i impl) enroll(employeeID string, requirement dbmodels.JobSkillRequirement, logger *log.Entry) error {
	courses, err := i.courseStore.ListBySkill(requirement.SkillID, requirement.RequiredLevel)
	if err != nil {
		logger.WithError(err).Error("ошибка подбора курса")
		return err
	}
	if len(courses) == 0 {
		logger.Debug("нет курса, закрывающего разрыв по навыку")
		return nil
	}
	plan, err := i.findOrCreateDraftPlan(employeeID)
	if err != nil {
		return err
	}
	if plan == nil {
		return nil
	}
	for _, course := range courses {
		if plan.HasCourse(course.ID) {
			logger.WithField("course_id", course.ID).Debug("курс уже есть в плане")
			return nil
		}
	}
	course := courses[0]
	item := dbmodels.TrainingPlanItem{
		PlanID:   plan.ID,
		CourseID: course.ID,
		Quarter:  1,
		Priority: models.ItemPriorityHigh,
		Status:   models.TrainingItemStatusPlanned,
	}
	itemID, err := i.itemStore.Create(item)
	if err != nil {
		logger.WithError(err).Error("ошибка добавления курса в план обучения")
		return err
	}
	logger.
		WithField("plan_id", plan.ID).
		WithField("item_id", itemID).
		WithField("course_id", course.ID).
		Info("курс добавлен в план обучения по разрыву навыка")
	return nil
}

// findOrCreateDraftPlan план текущего года; если он уже ушел
// на согласование, автозапись не выполняется
func (i impl) findOrCreateDraftPlan(employeeID string) (*dbmodels.TrainingPlan, error) {
	logger := log.WithField("employee_id", employeeID)
	year := time.Now().Year()
	plan, err := i.planStore.FindByEmployeeYear(employeeID, year)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска плана обучения")
		return nil, err
	}
	if plan != nil {
		if plan.Status != models.TrainingPlanStatusDraft {
			logger.WithField("plan_id", plan.ID).Debug("план уже на согласовании, автозапись пропущена")
			return nil, nil
		}
		return plan, nil
	}
	rec := dbmodels.TrainingPlan{
		EmployeeID: employeeID,
		Year:       year,
		Status:     models.TrainingPlanStatusDraft,
	}
	id, err := i.planStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания плана обучения")
		return nil, err
	}
	logger.WithField("plan_id", id).Info("создан черновик плана обучения")
	return i.planStore.GetByID(id)
}

func (i impl) OnCourseCompleted(employeeID, courseID string) error {
	logger := log.
		WithField("employee_id", employeeID).
		WithField("course_id", courseID)
	course, err := i.courseStore.GetByID(courseID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения курса")
		return err
	}
	if course == nil {
		return nil
	}
	for _, courseSkill := range course.Skills {
		err = i.raiseSkill(employeeID, course.Name, courseSkill, logger)
		if err != nil {
			return err
		}
	}
	return nil
}

func (i impl) raiseSkill(employeeID, courseName string, courseSkill dbmodels.TrainingSkill, logger *log.Entry) error {
	rec, err := i.skillsStore.GetEmployeeSkill(employeeID, courseSkill.SkillID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения навыка сотрудника")
		return err
	}
	note := fmt.Sprintf("%s: уровень %d по итогам курса %q", helpers.FormatDate(time.Now()), courseSkill.Level, courseName)
	if rec == nil {
		rec = &dbmodels.EmployeeSkill{
			EmployeeID: employeeID,
			SkillID:    courseSkill.SkillID,
			Level:      courseSkill.Level,
			Notes:      note,
		}
	} else {
		if rec.Level >= courseSkill.Level {
			return nil
		}
		rec.Level = courseSkill.Level
		if rec.Notes != "" {
			note = rec.Notes + "\n" + note
		}
		rec.Notes = note
	}
	_, err = i.skillsStore.SaveEmployeeSkill(*rec)
	if err != nil {
		logger.WithError(err).Error("ошибка повышения уровня навыка")
		return err
	}
	logger.
		WithField("skill_id", courseSkill.SkillID).
		WithField("level", courseSkill.Level).
		Info("уровень навыка повышен по итогам обучения")
	return nil
}
