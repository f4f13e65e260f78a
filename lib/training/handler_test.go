package traininghandler

import (
	"testing"
	"time"

	"erp-tools-backend/lib/notification"
	"erp-tools-backend/lib/skillgap"
	trainingplanstore "erp-tools-backend/lib/training/plan-store"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	"erp-tools-backend/models"
	trainingapimodels "erp-tools-backend/models/api/training"
	dbmodels "erp-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

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
	rec := f.recs[id]
	for field, value := range updMap {
		switch field {
		case "Status":
			rec.Status = value.(models.TrainingPlanStatus)
		case "ApprovedByManager":
			rec.ApprovedByManager = value.(bool)
		case "ApprovedByHr":
			rec.ApprovedByHr = value.(bool)
		case "ApprovedByFinance":
			rec.ApprovedByFinance = value.(bool)
		case "ManagerNotes":
			rec.ManagerNotes = value.(string)
		case "HrNotes":
			rec.HrNotes = value.(string)
		case "FinanceNotes":
			rec.FinanceNotes = value.(string)
		}
	}
	return nil
}

func (f *fakePlanStore) Delete(id string) error {
	delete(f.recs, id)
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
	rec.ID = "new-item"
	f.recs[rec.ID] = &rec
	plan := f.planStore.recs[rec.PlanID]
	plan.Items = append(plan.Items, rec)
	return rec.ID, nil
}

func (f *fakeItemStore) GetByID(id string) (*dbmodels.TrainingPlanItem, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	recCopy := *rec
	return &recCopy, nil
}

func (f *fakeItemStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	for field, value := range updMap {
		switch field {
		case "Status":
			rec.Status = value.(models.TrainingItemStatus)
		case "ScheduledDate":
			rec.ScheduledDate = value.(*time.Time)
		case "CompletedDate":
			rec.CompletedDate = value.(*time.Time)
		case "EmployeeRating":
			rec.EmployeeRating = value.(*int)
		case "EmployeeComments":
			rec.EmployeeComments = value.(string)
		case "ManagerRating":
			rec.ManagerRating = value.(*int)
		case "ManagerComments":
			rec.ManagerComments = value.(string)
		}
	}
	return nil
}

func (f *fakeItemStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

type fakeCourseStore struct {
	recs map[string]*dbmodels.TrainingCourse
}

func (f *fakeCourseStore) Create(rec dbmodels.TrainingCourse) (string, error) {
	rec.ID = "new-course"
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeCourseStore) GetByID(id string) (*dbmodels.TrainingCourse, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	recCopy := *rec
	return &recCopy, nil
}

func (f *fakeCourseStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeCourseStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *fakeCourseStore) List() ([]dbmodels.TrainingCourse, error) {
	return nil, nil
}

func (f *fakeCourseStore) ListBySkill(skillID string, minLevel int) ([]dbmodels.TrainingCourse, error) {
	return nil, nil
}

type fakeSkillGap struct {
	completed [][2]string
}

func (f *fakeSkillGap) OnSkillChanged(employeeID, skillID string) error {
	return nil
}

func (f *fakeSkillGap) OnCourseCompleted(employeeID, courseID string) error {
	f.completed = append(f.completed, [2]string{employeeID, courseID})
	return nil
}

type fakeDispatcher struct {
	events []models.StatusEvent
}

func (f *fakeDispatcher) Dispatch(event models.StatusEvent) {
	f.events = append(f.events, event)
}

type testEnv struct {
	planStore   *fakePlanStore
	itemStore   *fakeItemStore
	courseStore *fakeCourseStore
	gap         *fakeSkillGap
	dispatcher  *fakeDispatcher
	handler     impl
}

func newTestEnv() testEnv {
	planStore := &fakePlanStore{recs: map[string]*dbmodels.TrainingPlan{}}
	itemStore := &fakeItemStore{planStore: planStore, recs: map[string]*dbmodels.TrainingPlanItem{}}
	courseStore := &fakeCourseStore{recs: map[string]*dbmodels.TrainingCourse{}}
	gap := &fakeSkillGap{}
	skillgap.Instance = gap
	dispatcher := &fakeDispatcher{}
	notification.Instance = dispatcher
	return testEnv{
		planStore:   planStore,
		itemStore:   itemStore,
		courseStore: courseStore,
		gap:         gap,
		dispatcher:  dispatcher,
		handler: impl{
			planStore:   planStore,
			itemStore:   itemStore,
			courseStore: courseStore,
		},
	}
}

func (e testEnv) addPlan(id string, status models.TrainingPlanStatus) *dbmodels.TrainingPlan {
	rec := &dbmodels.TrainingPlan{
		BaseModel:  dbmodels.BaseModel{ID: id},
		EmployeeID: "emp-1",
		Year:       2026,
		Status:     status,
	}
	e.planStore.recs[id] = rec
	return rec
}

func (e testEnv) addCourse(id, name string) {
	e.courseStore.recs[id] = &dbmodels.TrainingCourse{
		BaseModel: dbmodels.BaseModel{ID: id},
		Name:      name,
	}
}

func (e testEnv) addItem(id, planID, courseID string, status models.TrainingItemStatus) {
	rec := &dbmodels.TrainingPlanItem{
		BaseModel: dbmodels.BaseModel{ID: id},
		PlanID:    planID,
		CourseID:  courseID,
		Status:    status,
	}
	e.itemStore.recs[id] = rec
	plan := e.planStore.recs[planID]
	plan.Items = append(plan.Items, *rec)
}

func TestPlanLifecycle(t *testing.T) {
	t.Run(`one plan per employee per year`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusDraft)

		_, err := env.handler.CreatePlan(trainingapimodels.PlanData{EmployeeID: "emp-1", Year: 2026})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindValidation, apperrors.GetKind(err))

		id, err := env.handler.CreatePlan(trainingapimodels.PlanData{EmployeeID: "emp-1", Year: 2027})
		require.Nil(t, err)
		require.NotEmpty(t, id)
	})

	t.Run(`empty plan is not submitted`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusDraft)

		err := env.handler.SubmitPlan("p1")
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindEmptyPlan, apperrors.GetKind(err))
		require.Equal(t, models.TrainingPlanStatusDraft, env.planStore.recs["p1"].Status)
	})

	t.Run(`submit and approval chain`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusDraft)
		env.addItem("i1", "p1", "c1", models.TrainingItemStatusPlanned)

		require.Nil(t, env.handler.SubmitPlan("p1"))
		require.Equal(t, models.TrainingPlanStatusSubmitted, env.planStore.recs["p1"].Status)

		err := env.handler.ApprovePlanHr("p1", trainingapimodels.ApproveData{})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))

		require.Nil(t, env.handler.ApprovePlanManager("p1", trainingapimodels.ApproveData{Notes: "ок"}))
		require.Nil(t, env.handler.ApprovePlanHr("p1", trainingapimodels.ApproveData{}))
		require.Nil(t, env.handler.ApprovePlanFinance("p1", trainingapimodels.ApproveData{}))
		require.Equal(t, models.TrainingPlanStatusApprovedFinance, env.planStore.recs["p1"].Status)
		require.Equal(t, "ок", env.planStore.recs["p1"].ManagerNotes)
	})

	t.Run(`reject resets approval flags`, func(t *testing.T) {
		env := newTestEnv()
		plan := env.addPlan("p1", models.TrainingPlanStatusApprovedManager)
		plan.ApprovedByManager = true

		err := env.handler.RejectPlan("p1", trainingapimodels.RejectData{Party: models.PartyHr, Notes: "скорректировать"})
		require.Nil(t, err)
		require.Equal(t, models.TrainingPlanStatusRejected, env.planStore.recs["p1"].Status)
		require.Equal(t, false, env.planStore.recs["p1"].ApprovedByManager)
		require.Equal(t, "скорректировать", env.planStore.recs["p1"].HrNotes)
	})

	t.Run(`complete requires all items finished`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusApprovedFinance)
		env.addItem("i1", "p1", "c1", models.TrainingItemStatusCompleted)
		env.addItem("i2", "p1", "c2", models.TrainingItemStatusInProgress)

		err := env.handler.CompletePlan("p1")
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindValidation, apperrors.GetKind(err))

		env.planStore.recs["p1"].Items[1].Status = models.TrainingItemStatusCancelled
		require.Nil(t, env.handler.CompletePlan("p1"))
		require.Equal(t, models.TrainingPlanStatusCompleted, env.planStore.recs["p1"].Status)
	})
}

func TestPlanItems(t *testing.T) {
	t.Run(`add item to draft`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusDraft)
		env.addCourse("c1", "Go для начинающих")

		id, err := env.handler.AddItem("p1", trainingapimodels.ItemData{CourseID: "c1", Quarter: 2, Priority: 1})
		require.Nil(t, err)
		require.Equal(t, models.TrainingItemStatusPlanned, env.itemStore.recs[id].Status)
		require.Equal(t, 2, env.itemStore.recs[id].Quarter)
	})

	t.Run(`duplicate course is rejected`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusDraft)
		env.addCourse("c1", "Go для начинающих")
		env.addItem("i1", "p1", "c1", models.TrainingItemStatusPlanned)

		_, err := env.handler.AddItem("p1", trainingapimodels.ItemData{CourseID: "c1", Quarter: 1, Priority: 1})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindValidation, apperrors.GetKind(err))
	})

	t.Run(`add item out of draft fails`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusSubmitted)
		env.addCourse("c1", "Go для начинающих")

		_, err := env.handler.AddItem("p1", trainingapimodels.ItemData{CourseID: "c1", Quarter: 1, Priority: 1})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
	})

	t.Run(`missing course check`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusDraft)

		_, err := env.handler.AddItem("p1", trainingapimodels.ItemData{CourseID: "missing", Quarter: 1, Priority: 1})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindNotFound, apperrors.GetKind(err))
	})

	t.Run(`schedule start complete`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusApprovedFinance)
		env.addItem("i1", "p1", "c1", models.TrainingItemStatusPlanned)
		date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

		require.Nil(t, env.handler.ScheduleItem("i1", trainingapimodels.ScheduleData{Date: &date}))
		require.Equal(t, models.TrainingItemStatusScheduled, env.itemStore.recs["i1"].Status)

		require.Nil(t, env.handler.StartItem("i1"))
		require.Equal(t, models.TrainingItemStatusInProgress, env.itemStore.recs["i1"].Status)

		rating := 5
		require.Nil(t, env.handler.CompleteItem("i1", trainingapimodels.CompleteData{Date: &date, Rating: &rating}))
		require.Equal(t, models.TrainingItemStatusCompleted, env.itemStore.recs["i1"].Status)
		require.Equal(t, &rating, env.itemStore.recs["i1"].EmployeeRating)
	})

	t.Run(`completion raises employee skills`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusApprovedFinance)
		env.addItem("i1", "p1", "c1", models.TrainingItemStatusScheduled)
		date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

		require.Nil(t, env.handler.CompleteItem("i1", trainingapimodels.CompleteData{Date: &date}))
		require.Equal(t, [][2]string{{"emp-1", "c1"}}, env.gap.completed)
	})

	t.Run(`complete from planned fails`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusApprovedFinance)
		env.addItem("i1", "p1", "c1", models.TrainingItemStatusPlanned)
		date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

		err := env.handler.CompleteItem("i1", trainingapimodels.CompleteData{Date: &date})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
		require.Empty(t, env.gap.completed)
	})

	t.Run(`manager evaluation only for completed`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusApprovedFinance)
		env.addItem("i1", "p1", "c1", models.TrainingItemStatusCompleted)
		rating := 4

		require.Nil(t, env.handler.EvaluateItem("i1", trainingapimodels.EvaluationData{Rating: &rating, Comments: "хорошо"}))
		require.Equal(t, &rating, env.itemStore.recs["i1"].ManagerRating)

		env.itemStore.recs["i1"].Status = models.TrainingItemStatusInProgress
		err := env.handler.EvaluateItem("i1", trainingapimodels.EvaluationData{Rating: &rating})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
	})

	t.Run(`remove item out of draft fails`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusSubmitted)
		env.addItem("i1", "p1", "c1", models.TrainingItemStatusPlanned)

		err := env.handler.RemoveItem("i1")
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
	})

	t.Run(`cancel terminal item fails`, func(t *testing.T) {
		env := newTestEnv()
		env.addPlan("p1", models.TrainingPlanStatusApprovedFinance)
		env.addItem("i1", "p1", "c1", models.TrainingItemStatusCompleted)

		err := env.handler.CancelItem("i1")
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
	})
}
