package availabilityhandler

import (
	"erp-tools-backend/db"
	availabilitystore "erp-tools-backend/lib/availability/store"
	"erp-tools-backend/lib/notification"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	"erp-tools-backend/models"
	availabilityapimodels "erp-tools-backend/models/api/availability"
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data availabilityapimodels.AvailabilityData) (id string, err error)
	GetByID(id string) (item availabilityapimodels.AvailabilityView, err error)
	List(filter availabilityapimodels.AvailabilityFilter) (list []availabilityapimodels.AvailabilityView, rowCount int64, err error)
	ApproveManager(id string, data availabilityapimodels.ApproveData) error
	ApproveHr(id string, data availabilityapimodels.ApproveData) error
	Reject(id string, data availabilityapimodels.RejectData) error
	Cancel(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: availabilitystore.NewInstance(db.DB),
	}
}

type impl struct {
	store availabilitystore.Provider
}

func (i impl) Create(data availabilityapimodels.AvailabilityData) (id string, err error) {
	rec := dbmodels.Availability{
		EmployeeID: data.EmployeeID,
		DateFrom:   data.DateFrom,
		DateTo:     data.DateTo,
		Reason:     data.Reason,
		Status:     models.AvailabilityStatusRequested,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("Ошибка создания заявки на отсутствие")
		return "", err
	}
	log.WithField("rec_id", id).Info("Создана заявка на отсутствие")
	return id, nil
}

func (i impl) GetByID(id string) (item availabilityapimodels.AvailabilityView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return availabilityapimodels.AvailabilityView{}, err
	}
	return availabilityapimodels.AvailabilityConvert(*rec), nil
}

func (i impl) List(filter availabilityapimodels.AvailabilityFilter) (list []availabilityapimodels.AvailabilityView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	storeFilter := availabilitystore.ListFilter{
		EmployeeID: filter.EmployeeID,
		Status:     filter.Status,
		Page:       page,
		Limit:      limit,
	}
	rowCount, err = i.store.ListCount(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка заявок на отсутствие")
		return nil, 0, err
	}
	recList, err := i.store.List(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка заявок на отсутствие")
		return nil, 0, err
	}
	result := make([]availabilityapimodels.AvailabilityView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, availabilityapimodels.AvailabilityConvert(rec))
	}
	return result, rowCount, nil
}

// ApproveManager порядок согласований не важен, статус меняется
// после отметки обеих сторон
func (i impl) ApproveManager(id string, data availabilityapimodels.ApproveData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.AvailabilityStatusRequested {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.AvailabilityStatusRequested.ToHuman())
	}
	updMap := map[string]interface{}{
		"ApprovedByManager": true,
		"ManagerNotes":      data.Notes,
	}
	rec.ApprovedByManager = true
	return i.applyApproval(rec, updMap, data.Notes)
}

func (i impl) ApproveHr(id string, data availabilityapimodels.ApproveData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.AvailabilityStatusRequested {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.AvailabilityStatusRequested.ToHuman())
	}
	updMap := map[string]interface{}{
		"ApprovedByHr": true,
		"HrNotes":      data.Notes,
	}
	rec.ApprovedByHr = true
	return i.applyApproval(rec, updMap, data.Notes)
}

func (i impl) applyApproval(rec *dbmodels.Availability, updMap map[string]interface{}, comment string) error {
	logger := log.WithField("rec_id", rec.ID)
	if rec.ReadyForApproval() {
		updMap["Status"] = models.AvailabilityStatusApproved
	}
	err := i.store.Update(rec.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка согласования заявки на отсутствие")
		return err
	}
	if rec.ReadyForApproval() {
		logger.Info("заявка на отсутствие согласована")
		notification.Instance.Dispatch(models.StatusEvent{
			Entity:     models.AvailabilityEntity,
			EntityID:   rec.ID,
			EmployeeID: rec.EmployeeID,
			OldStatus:  string(models.AvailabilityStatusRequested),
			NewStatus:  string(models.AvailabilityStatusApproved),
			Comment:    comment,
		})
		return nil
	}
	logger.Info("отмечено согласование заявки на отсутствие")
	return nil
}

func (i impl) Reject(id string, data availabilityapimodels.RejectData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.AvailabilityStatusRequested {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.AvailabilityStatusRequested.ToHuman())
	}
	updMap := map[string]interface{}{
		"Status":            models.AvailabilityStatusRejected,
		"ApprovedByManager": false,
		"ApprovedByHr":      false,
	}
	switch data.Party {
	case models.PartyManager:
		updMap["ManagerNotes"] = data.Notes
	case models.PartyHr:
		updMap["HrNotes"] = data.Notes
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка отклонения заявки на отсутствие")
		return err
	}
	log.WithField("rec_id", id).Info("отклонена заявка на отсутствие")
	notification.Instance.Dispatch(models.StatusEvent{
		Entity:     models.AvailabilityEntity,
		EntityID:   rec.ID,
		EmployeeID: rec.EmployeeID,
		OldStatus:  string(rec.Status),
		NewStatus:  string(models.AvailabilityStatusRejected),
		Comment:    data.Notes,
	})
	return nil
}

func (i impl) Cancel(id string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.AvailabilityStatusRequested {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.AvailabilityStatusRequested.ToHuman())
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"Status": models.AvailabilityStatusCancelled})
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка отмены заявки на отсутствие")
		return err
	}
	log.WithField("rec_id", id).Info("отменена заявка на отсутствие")
	notification.Instance.Dispatch(models.StatusEvent{
		Entity:     models.AvailabilityEntity,
		EntityID:   rec.ID,
		EmployeeID: rec.EmployeeID,
		OldStatus:  string(rec.Status),
		NewStatus:  string(models.AvailabilityStatusCancelled),
	})
	return nil
}

func (i impl) getRec(id string) (*dbmodels.Availability, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения заявки на отсутствие")
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("заявка на отсутствие не найдена")
	}
	return rec, nil
}
