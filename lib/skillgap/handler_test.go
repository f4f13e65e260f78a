package skillgap

import (
	"fmt"
	"testing"
	"time"

	employeestore "erp-tools-backend/lib/employee/store"
	skillsstore "erp-tools-backend/lib/skills/store"
	trainingplanstore "erp-tools-backend/lib/training/plan-store"
	"erp-tools-backend/lib/utils/helpers"
	"erp-tools-backend/models"
	dbmodels "erp-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeEmployeeStore struct {
	recs map[string]*dbmodels.Employee
}

func (f *fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) {
	return "", nil
}

func (f *fakeEmployeeStore) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeEmployeeStore) GetByUserID(userID string) (*dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeEmployeeStore) Delete(id string) error {
	return nil
}

func (f *fakeEmployeeStore) List(filter employeestore.ListFilter) ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) ListCount(filter employeestore.ListFilter) (int64, error) {
	return 0, nil
}

func (f *fakeEmployeeStore) ListByJobTitle(jobTitleID string) ([]dbmodels.Employee, error) {
	list := []dbmodels.Employee{}
	for _, rec := range f.recs {
		if rec.JobTitleID != nil && *rec.JobTitleID == jobTitleID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeEmployeeStore) ListHr() ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) ListFinance() ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) ListHiredAfter(days int) ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) CountByDepartment() ([]employeestore.CountRow, error) {
	return nil, nil
}

type fakeSkillsStore struct {
	employeeSkills map[string]*dbmodels.EmployeeSkill
	requirements   map[string]*dbmodels.JobSkillRequirement
}

func skillKey(ownerID, skillID string) string {
	return fmt.Sprintf("%s/%s", ownerID, skillID)
}

func (f *fakeSkillsStore) SaveEmployeeSkill(rec dbmodels.EmployeeSkill) (string, error) {
	if rec.ID == "" {
		rec.ID = "new-skill"
	}
	f.employeeSkills[skillKey(rec.EmployeeID, rec.SkillID)] = &rec
	return rec.ID, nil
}

func (f *fakeSkillsStore) GetEmployeeSkill(employeeID, skillID string) (*dbmodels.EmployeeSkill, error) {
	rec, ok := f.employeeSkills[skillKey(employeeID, skillID)]
	if !ok {
		return nil, nil
	}
	recCopy := *rec
	return &recCopy, nil
}

func (f *fakeSkillsStore) ListEmployeeSkills(employeeID string) ([]dbmodels.EmployeeSkill, error) {
	return nil, nil
}

func (f *fakeSkillsStore) DeleteEmployeeSkill(id string) error {
	return nil
}

func (f *fakeSkillsStore) SaveJobRequirement(rec dbmodels.JobSkillRequirement) (string, error) {
	f.requirements[skillKey(rec.JobTitleID, rec.SkillID)] = &rec
	return rec.ID, nil
}

func (f *fakeSkillsStore) GetJobRequirement(jobTitleID, skillID string) (*dbmodels.JobSkillRequirement, error) {
	rec, ok := f.requirements[skillKey(jobTitleID, skillID)]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeSkillsStore) ListJobRequirements(jobTitleID string) ([]dbmodels.JobSkillRequirement, error) {
	return nil, nil
}

func (f *fakeSkillsStore) DeleteJobRequirement(id string) error {
	return nil
}

func (f *fakeSkillsStore) SaveTrainingSkill(rec dbmodels.TrainingSkill) (string, error) {
	return "", nil
}

func (f *fakeSkillsStore) ListTrainingSkills(courseID string) ([]dbmodels.TrainingSkill, error) {
	return nil, nil
}

func (f *fakeSkillsStore) DeleteTrainingSkill(id string) error {
	return nil
}

func (f *fakeSkillsStore) SkillCoverage() ([]skillsstore.CoverageRow, error) {
	return nil, nil
}

type fakeCourseStore struct {
	recs map[string]*dbmodels.TrainingCourse
}

func (f *fakeCourseStore) Create(rec dbmodels.TrainingCourse) (string, error) {
	return "", nil
}

func (f *fakeCourseStore) GetByID(id string) (*dbmodels.TrainingCourse, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeCourseStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeCourseStore) Delete(id string) error {
	return nil
}

func (f *fakeCourseStore) List() ([]dbmodels.TrainingCourse, error) {
	return nil, nil
}

func (f *fakeCourseStore) ListBySkill(skillID string, minLevel int) ([]dbmodels.TrainingCourse, error) {
	list := []dbmodels.TrainingCourse{}
	for _, rec := range f.recs {
		for _, courseSkill := range rec.Skills {
			if courseSkill.SkillID == skillID && courseSkill.Level >= minLevel {
				list = append(list, *rec)
			}
		}
	}
	return list, nil
}

type fakePlanStore struct {
	recs map[string]*dbmodels.TrainingPlan
}

func (f *fakePlanStore) Create(rec dbmodels.TrainingPlan) (string, error) {
	rec.ID = "new-plan"
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakePlanStore) GetByID(id string) (*dbmodels.TrainingPlan, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	recCopy := *rec
	return &recCopy, nil
}

func (f *fakePlanStore) FindByEmployeeYear(employeeID string, year int) (*dbmodels.TrainingPlan, error) {
	for _, rec := range f.recs {
		if rec.EmployeeID == employeeID && rec.Year == year {
			recCopy := *rec
			return &recCopy, nil
		}
	}
	return nil, nil
}

func (f *fakePlanStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakePlanStore) Delete(id string) error {
	return nil
}

func (f *fakePlanStore) List(filter trainingplanstore.ListFilter) ([]dbmodels.TrainingPlan, error) {
	return nil, nil
}

func (f *fakePlanStore) ListCount(filter trainingplanstore.ListFilter) (int64, error) {
	return 0, nil
}

func (f *fakePlanStore) CountByStatus() ([]trainingplanstore.StatusCountRow, error) {
	return nil, nil
}

type fakeItemStore struct {
	planStore *fakePlanStore
	recs      map[string]*dbmodels.TrainingPlanItem
}

func (f *fakeItemStore) Create(rec dbmodels.TrainingPlanItem) (string, error) {
	rec.ID = fmt.Sprintf("item-%d", len(f.recs)+1)
	f.recs[rec.ID] = &rec
	plan := f.planStore.recs[rec.PlanID]
	plan.Items = append(plan.Items, rec)
	return rec.ID, nil
}

func (f *fakeItemStore) GetByID(id string) (*dbmodels.TrainingPlanItem, error) {
	return nil, nil
}

func (f *fakeItemStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeItemStore) Delete(id string) error {
	return nil
}

type testEnv struct {
	employeeStore *fakeEmployeeStore
	skillsStore   *fakeSkillsStore
	courseStore   *fakeCourseStore
	planStore     *fakePlanStore
	itemStore     *fakeItemStore
	handler       impl
}

func newTestEnv() testEnv {
	employeeStore := &fakeEmployeeStore{recs: map[string]*dbmodels.Employee{}}
	skillsStore := &fakeSkillsStore{
		employeeSkills: map[string]*dbmodels.EmployeeSkill{},
		requirements:   map[string]*dbmodels.JobSkillRequirement{},
	}
	courseStore := &fakeCourseStore{recs: map[string]*dbmodels.TrainingCourse{}}
	planStore := &fakePlanStore{recs: map[string]*dbmodels.TrainingPlan{}}
	itemStore := &fakeItemStore{planStore: planStore, recs: map[string]*dbmodels.TrainingPlanItem{}}
	return testEnv{
		employeeStore: employeeStore,
		skillsStore:   skillsStore,
		courseStore:   courseStore,
		planStore:     planStore,
		itemStore:     itemStore,
		handler: impl{
			employeeStore: employeeStore,
			skillsStore:   skillsStore,
			courseStore:   courseStore,
			planStore:     planStore,
			itemStore:     itemStore,
		},
	}
}

// gapScenario сотрудник на должности jt-1, требуется Go уровня 3,
// курс c-1 дает 4
func gapScenario() testEnv {
	env := newTestEnv()
	jobTitleID := "jt-1"
	env.employeeStore.recs["emp-1"] = &dbmodels.Employee{
		BaseModel:  dbmodels.BaseModel{ID: "emp-1"},
		JobTitleID: &jobTitleID,
	}
	env.skillsStore.requirements[skillKey("jt-1", "s-go")] = &dbmodels.JobSkillRequirement{
		JobTitleID:    "jt-1",
		SkillID:       "s-go",
		RequiredLevel: 3,
	}
	env.courseStore.recs["c-1"] = &dbmodels.TrainingCourse{
		BaseModel: dbmodels.BaseModel{ID: "c-1"},
		Name:      "Разработка на Go",
		Skills: []dbmodels.TrainingSkill{
			{CourseID: "c-1", SkillID: "s-go", Level: 4},
		},
	}
	return env
}

func TestOnSkillChanged(t *testing.T) {
	t.Run(`gap fills draft plan`, func(t *testing.T) {
		env := gapScenario()
		env.skillsStore.employeeSkills[skillKey("emp-1", "s-go")] = &dbmodels.EmployeeSkill{
			EmployeeID: "emp-1",
			SkillID:    "s-go",
			Level:      1,
		}

		require.Nil(t, env.handler.OnSkillChanged("emp-1", "s-go"))

		plan, err := env.planStore.FindByEmployeeYear("emp-1", time.Now().Year())
		require.Nil(t, err)
		require.NotNil(t, plan)
		require.Equal(t, models.TrainingPlanStatusDraft, plan.Status)
		require.Len(t, plan.Items, 1)
		item := plan.Items[0]
		require.Equal(t, "c-1", item.CourseID)
		require.Equal(t, 1, item.Quarter)
		require.Equal(t, models.ItemPriorityHigh, item.Priority)
		require.Equal(t, models.TrainingItemStatusPlanned, item.Status)
	})

	t.Run(`missing skill counts as level zero`, func(t *testing.T) {
		env := gapScenario()

		require.Nil(t, env.handler.OnSkillChanged("emp-1", "s-go"))
		require.Len(t, env.itemStore.recs, 1)
	})

	t.Run(`repeat call adds nothing`, func(t *testing.T) {
		env := gapScenario()

		require.Nil(t, env.handler.OnSkillChanged("emp-1", "s-go"))
		require.Nil(t, env.handler.OnSkillChanged("emp-1", "s-go"))
		require.Len(t, env.itemStore.recs, 1)
	})

	t.Run(`level at requirement does nothing`, func(t *testing.T) {
		env := gapScenario()
		env.skillsStore.employeeSkills[skillKey("emp-1", "s-go")] = &dbmodels.EmployeeSkill{
			EmployeeID: "emp-1",
			SkillID:    "s-go",
			Level:      3,
		}

		require.Nil(t, env.handler.OnSkillChanged("emp-1", "s-go"))
		require.Empty(t, env.itemStore.recs)
	})

	t.Run(`no suitable course does nothing`, func(t *testing.T) {
		env := gapScenario()
		env.courseStore.recs["c-1"].Skills[0].Level = 2

		require.Nil(t, env.handler.OnSkillChanged("emp-1", "s-go"))
		require.Empty(t, env.itemStore.recs)
	})

	t.Run(`submitted plan is not touched`, func(t *testing.T) {
		env := gapScenario()
		env.planStore.recs["p1"] = &dbmodels.TrainingPlan{
			BaseModel:  dbmodels.BaseModel{ID: "p1"},
			EmployeeID: "emp-1",
			Year:       time.Now().Year(),
			Status:     models.TrainingPlanStatusSubmitted,
		}

		require.Nil(t, env.handler.OnSkillChanged("emp-1", "s-go"))
		require.Empty(t, env.itemStore.recs)
	})

	t.Run(`employee without job title skipped`, func(t *testing.T) {
		env := gapScenario()
		env.employeeStore.recs["emp-1"].JobTitleID = nil

		require.Nil(t, env.handler.OnSkillChanged("emp-1", "s-go"))
		require.Empty(t, env.itemStore.recs)
	})
}

func TestOnCourseCompleted(t *testing.T) {
	t.Run(`skill raised to course level`, func(t *testing.T) {
		env := gapScenario()
		env.skillsStore.employeeSkills[skillKey("emp-1", "s-go")] = &dbmodels.EmployeeSkill{
			EmployeeID: "emp-1",
			SkillID:    "s-go",
			Level:      1,
			Notes:      "стартовая оценка",
		}

		require.Nil(t, env.handler.OnCourseCompleted("emp-1", "c-1"))

		rec := env.skillsStore.employeeSkills[skillKey("emp-1", "s-go")]
		require.Equal(t, 4, rec.Level)
		require.Contains(t, rec.Notes, "стартовая оценка")
		require.Contains(t, rec.Notes, helpers.FormatDate(time.Now()))
		require.Contains(t, rec.Notes, `"Разработка на Go"`)
	})

	t.Run(`new skill record is created`, func(t *testing.T) {
		env := gapScenario()

		require.Nil(t, env.handler.OnCourseCompleted("emp-1", "c-1"))

		rec := env.skillsStore.employeeSkills[skillKey("emp-1", "s-go")]
		require.NotNil(t, rec)
		require.Equal(t, 4, rec.Level)
	})

	t.Run(`level is never lowered`, func(t *testing.T) {
		env := gapScenario()
		env.skillsStore.employeeSkills[skillKey("emp-1", "s-go")] = &dbmodels.EmployeeSkill{
			EmployeeID: "emp-1",
			SkillID:    "s-go",
			Level:      5,
			Notes:      "эксперт",
		}

		require.Nil(t, env.handler.OnCourseCompleted("emp-1", "c-1"))

		rec := env.skillsStore.employeeSkills[skillKey("emp-1", "s-go")]
		require.Equal(t, 5, rec.Level)
		require.Equal(t, "эксперт", rec.Notes)
	})

	t.Run(`unknown course does nothing`, func(t *testing.T) {
		env := gapScenario()

		require.Nil(t, env.handler.OnCourseCompleted("emp-1", "missing"))
		require.Empty(t, env.skillsStore.employeeSkills)
	})
}
