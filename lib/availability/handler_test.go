package availabilityhandler

import (
	"testing"

	availabilitystore "erp-tools-backend/lib/availability/store"
	"erp-tools-backend/lib/notification"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	"erp-tools-backend/models"
	availabilityapimodels "erp-tools-backend/models/api/availability"
	dbmodels "erp-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeAvailabilityStore struct {
	recs map[string]*dbmodels.Availability
}

func (f *fakeAvailabilityStore) Create(rec dbmodels.Availability) (string, error) {
	rec.ID = "new-id"
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeAvailabilityStore) GetByID(id string) (*dbmodels.Availability, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	recCopy := *rec
	return &recCopy, nil
}

func (f *fakeAvailabilityStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	for field, value := range updMap {
		switch field {
		case "Status":
			rec.Status = value.(models.AvailabilityStatus)
		case "ApprovedByManager":
			rec.ApprovedByManager = value.(bool)
		case "ApprovedByHr":
			rec.ApprovedByHr = value.(bool)
		case "ManagerNotes":
			rec.ManagerNotes = value.(string)
		case "HrNotes":
			rec.HrNotes = value.(string)
		}
	}
	return nil
}

func (f *fakeAvailabilityStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *fakeAvailabilityStore) List(filter availabilitystore.ListFilter) ([]dbmodels.Availability, error) {
	return nil, nil
}

func (f *fakeAvailabilityStore) ListCount(filter availabilitystore.ListFilter) (int64, error) {
	return 0, nil
}

func (f *fakeAvailabilityStore) CountPending() (int64, error) {
	return 0, nil
}

type fakeDispatcher struct {
	events []models.StatusEvent
}

func (f *fakeDispatcher) Dispatch(event models.StatusEvent) {
	f.events = append(f.events, event)
}

func newTestHandler(rec *dbmodels.Availability) (*fakeAvailabilityStore, *fakeDispatcher, impl) {
	store := &fakeAvailabilityStore{recs: map[string]*dbmodels.Availability{}}
	if rec != nil {
		store.recs[rec.ID] = rec
	}
	dispatcher := &fakeDispatcher{}
	notification.Instance = dispatcher
	return store, dispatcher, impl{store: store}
}

func request(id string) *dbmodels.Availability {
	return &dbmodels.Availability{
		BaseModel:  dbmodels.BaseModel{ID: id},
		EmployeeID: "emp-1",
		Reason:     "отпуск",
		Status:     models.AvailabilityStatusRequested,
	}
}

func TestAvailabilityApproval(t *testing.T) {
	t.Run(`manager then hr`, func(t *testing.T) {
		store, dispatcher, handler := newTestHandler(request("a1"))

		require.Nil(t, handler.ApproveManager("a1", availabilityapimodels.ApproveData{Notes: "не против"}))
		// одной отметки недостаточно
		require.Equal(t, models.AvailabilityStatusRequested, store.recs["a1"].Status)
		require.Empty(t, dispatcher.events)

		require.Nil(t, handler.ApproveHr("a1", availabilityapimodels.ApproveData{}))
		require.Equal(t, models.AvailabilityStatusApproved, store.recs["a1"].Status)
		require.Len(t, dispatcher.events, 1)
		require.Equal(t, models.AvailabilityEntity, dispatcher.events[0].Entity)
		require.Equal(t, string(models.AvailabilityStatusApproved), dispatcher.events[0].NewStatus)
	})

	t.Run(`hr then manager`, func(t *testing.T) {
		store, dispatcher, handler := newTestHandler(request("a1"))

		require.Nil(t, handler.ApproveHr("a1", availabilityapimodels.ApproveData{}))
		require.Equal(t, models.AvailabilityStatusRequested, store.recs["a1"].Status)

		require.Nil(t, handler.ApproveManager("a1", availabilityapimodels.ApproveData{}))
		require.Equal(t, models.AvailabilityStatusApproved, store.recs["a1"].Status)
		require.Len(t, dispatcher.events, 1)
	})

	t.Run(`repeat approve after decision fails`, func(t *testing.T) {
		_, _, handler := newTestHandler(request("a1"))

		require.Nil(t, handler.ApproveManager("a1", availabilityapimodels.ApproveData{}))
		require.Nil(t, handler.ApproveHr("a1", availabilityapimodels.ApproveData{}))

		err := handler.ApproveManager("a1", availabilityapimodels.ApproveData{})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
	})
}

func TestAvailabilityReject(t *testing.T) {
	t.Run(`reject clears marks`, func(t *testing.T) {
		rec := request("a1")
		rec.ApprovedByManager = true
		store, dispatcher, handler := newTestHandler(rec)

		err := handler.Reject("a1", availabilityapimodels.RejectData{Party: models.PartyHr, Notes: "нет замены"})
		require.Nil(t, err)
		require.Equal(t, models.AvailabilityStatusRejected, store.recs["a1"].Status)
		require.Equal(t, false, store.recs["a1"].ApprovedByManager)
		require.Equal(t, "нет замены", store.recs["a1"].HrNotes)
		require.Len(t, dispatcher.events, 1)
		require.Equal(t, "нет замены", dispatcher.events[0].Comment)
	})

	t.Run(`reject after decision fails`, func(t *testing.T) {
		rec := request("a1")
		rec.Status = models.AvailabilityStatusApproved
		_, _, handler := newTestHandler(rec)

		err := handler.Reject("a1", availabilityapimodels.RejectData{Party: models.PartyManager})
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindInvalidTransition, apperrors.GetKind(err))
	})
}

func TestAvailabilityCancel(t *testing.T) {
	t.Run(`cancel pending request`, func(t *testing.T) {
		store, dispatcher, handler := newTestHandler(request("a1"))

		require.Nil(t, handler.Cancel("a1"))
		require.Equal(t, models.AvailabilityStatusCancelled, store.recs["a1"].Status)
		require.Len(t, dispatcher.events, 1)
	})

	t.Run(`cancel missing record`, func(t *testing.T) {
		_, _, handler := newTestHandler(nil)

		err := handler.Cancel("missing")
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindNotFound, apperrors.GetKind(err))
	})
}
