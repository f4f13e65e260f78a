package missionhandler

import (
	"testing"

	missionstore "erp-tools-backend/lib/mission/store"
	"erp-tools-backend/lib/notification"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	"erp-tools-backend/models"
	missionapimodels "erp-tools-backend/models/api/mission"
	dbmodels "erp-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeMissionStore struct {
	recs map[string]*dbmodels.Mission
}

func (f *fakeMissionStore) Create(rec dbmodels.Mission) (string, error) {
	rec.ID = "new-id"
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeMissionStore) GetByID(id string) (*dbmodels.Mission, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	recCopy := *rec
	return &recCopy, nil
}

func (f *fakeMissionStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	for field, value := range updMap {
		switch field {
		case "Status":
			rec.Status = value.(models.MissionStatus)
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
		case "Report":
			rec.Report = value.(string)
		case "ReportSubmitted":
			rec.ReportSubmitted = value.(bool)
		}
	}
	return nil
}

func (f *fakeMissionStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *fakeMissionStore) List(filter missionstore.ListFilter) ([]dbmodels.Mission, error) {
	return nil, nil
}

func (f *fakeMissionStore) ListCount(filter missionstore.ListFilter) (int64, error) {
	return 0, nil
}

func (f *fakeMissionStore) CountByStatus() ([]missionstore.StatusCountRow, error) {
	return nil, nil
}

type fakeDispatcher struct {
	events []models.StatusEvent
}

func (f *fakeDispatcher) Dispatch(event models.StatusEvent) {
	f.events = append(f.events, event)
}

func newTestHandler(recs ...*dbmodels.Mission) (*fakeMissionStore, *fakeDispatcher, impl) {
	store := &fakeMissionStore{recs: map[string]*dbmodels.Mission{}}
	for _, rec := range recs {
		store.recs[rec.ID] = rec
	}
	dispatcher := &fakeDispatcher{}
	notification.Instance = dispatcher
	return store, dispatcher, impl{store: store}
}

func mission(id string, status models.MissionStatus) *dbmodels.Mission {
	return &dbmodels.Mission{
		BaseModel:  dbmodels.BaseModel{ID: id},
		EmployeeID: "emp-1",
		Location:   "Казань",
		Status:     status,
	}
}

func TestMissionWorkflow(t *testing.T) {
	t.Run(`full approval chain`, func(t *testing.T) {
		store, dispatcher, handler := newTestHandler(mission("m1", models.MissionStatusDraft))

		require.Nil(t, handler.Submit("m1"))
		require.Equal(t, models.MissionStatusSubmitted, store.recs["m1"].Status)

		require.Nil(t, handler.ApproveManager("m1", missionapimodels.ApproveData{Notes: "ок"}))
		require.Equal(t, models.MissionStatusApprovedManager, store.recs["m1"].Status)
		require.Equal(t, true, store.recs["m1"].ApprovedByManager)
		require.Equal(t, "ок", store.recs["m1"].ManagerNotes)

		require.Nil(t, handler.ApproveHr("m1", missionapimodels.ApproveData{}))
		require.Nil(t, handler.ApproveFinance("m1", missionapimodels.ApproveData{}))
		require.Equal(t, models.MissionStatusApprovedFinance, store.recs["m1"].Status)

		require.Nil(t, handler.SubmitReport("m1", missionapimodels.ReportData{Report: "итоги"}))
		require.Equal(t, models.MissionStatusCompleted, store.recs["m1"].Status)
		require.Equal(t, true, store.recs["m1"].ReportSubmitted)

		require.Len(t, dispatcher.events, 5)
		first := dispatcher.events[0]
		require.Equal(t, models.MissionEntity, first.Entity)
		require.Equal(t, "emp-1", first.EmployeeID)
		require.Equal(t, string(models.MissionStatusDraft), first.OldStatus)
		require.Equal(t, string(models.MissionStatusSubmitted), first.NewStatus)
	})

	t.Run(`chain order is enforced`, func(t *testing.T) {
		store, dispatcher, handler := newTestHandler(mission("m1", models.MissionStatusSubmitted))

		err := handler.ApproveHr("m1", missionapimodels.ApproveData{})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
		// запись не изменилась, уведомлений нет
		require.Equal(t, models.MissionStatusSubmitted, store.recs["m1"].Status)
		require.Equal(t, false, store.recs["m1"].ApprovedByHr)
		require.Empty(t, dispatcher.events)
	})

	t.Run(`double approve fails`, func(t *testing.T) {
		_, _, handler := newTestHandler(mission("m1", models.MissionStatusSubmitted))

		require.Nil(t, handler.ApproveManager("m1", missionapimodels.ApproveData{}))
		err := handler.ApproveManager("m1", missionapimodels.ApproveData{})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
	})

	t.Run(`submit allowed only from draft`, func(t *testing.T) {
		_, _, handler := newTestHandler(mission("m1", models.MissionStatusCompleted))

		err := handler.Submit("m1")
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
	})

	t.Run(`empty report is refused`, func(t *testing.T) {
		store, dispatcher, handler := newTestHandler(mission("m1", models.MissionStatusApprovedFinance))

		for _, report := range []string{"", "   "} {
			err := handler.SubmitReport("m1", missionapimodels.ReportData{Report: report})
			require.NotNil(t, err)
			require.Equal(t, apperrors.KindValidation, apperrors.GetKind(err))
		}
		require.Equal(t, models.MissionStatusApprovedFinance, store.recs["m1"].Status)
		require.Equal(t, false, store.recs["m1"].ReportSubmitted)
		require.Empty(t, dispatcher.events)
	})

	t.Run(`reject resets approval flags`, func(t *testing.T) {
		rec := mission("m1", models.MissionStatusApprovedHr)
		rec.ApprovedByManager = true
		rec.ApprovedByHr = true
		store, _, handler := newTestHandler(rec)

		err := handler.Reject("m1", missionapimodels.RejectData{Party: models.PartyFinance, Notes: "нет бюджета"})
		require.Nil(t, err)
		require.Equal(t, models.MissionStatusRejected, store.recs["m1"].Status)
		require.Equal(t, false, store.recs["m1"].ApprovedByManager)
		require.Equal(t, false, store.recs["m1"].ApprovedByHr)
		require.Equal(t, false, store.recs["m1"].ApprovedByFinance)
		require.Equal(t, "нет бюджета", store.recs["m1"].FinanceNotes)
	})

	t.Run(`reject from draft fails`, func(t *testing.T) {
		_, _, handler := newTestHandler(mission("m1", models.MissionStatusDraft))

		err := handler.Reject("m1", missionapimodels.RejectData{Party: models.PartyManager})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
	})

	t.Run(`cancel from terminal fails`, func(t *testing.T) {
		_, _, handler := newTestHandler(mission("m1", models.MissionStatusRejected))

		err := handler.Cancel("m1")
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
	})

	t.Run(`not found check`, func(t *testing.T) {
		_, _, handler := newTestHandler()

		err := handler.Submit("missing")
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindNotFound, apperrors.GetKind(err))
	})
}

func TestBulkApproveManager(t *testing.T) {
	t.Run(`records in wrong status are skipped`, func(t *testing.T) {
		store, _, handler := newTestHandler(
			mission("m1", models.MissionStatusSubmitted),
			mission("m2", models.MissionStatusDraft),
			mission("m3", models.MissionStatusSubmitted),
		)

		approved, err := handler.BulkApproveManager([]string{"m1", "m2", "m3", "missing"})
		require.Nil(t, err)
		require.Equal(t, 2, approved)
		require.Equal(t, models.MissionStatusApprovedManager, store.recs["m1"].Status)
		require.Equal(t, models.MissionStatusDraft, store.recs["m2"].Status)
		require.Equal(t, models.MissionStatusApprovedManager, store.recs["m3"].Status)
	})
}

func TestOrderNumber(t *testing.T) {
	t.Run(`year and id prefix`, func(t *testing.T) {
		rec := mission("abcdef12-3456", models.MissionStatusCompleted)
		require.Equal(t, rec.CreatedAt.Format("2006")+"-abcdef12", orderNumber(rec))
	})
}
