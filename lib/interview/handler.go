package interviewhandler

import (
	"erp-tools-backend/db"
	interviewstore "erp-tools-backend/lib/interview/store"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	"erp-tools-backend/models"
	interviewapimodels "erp-tools-backend/models/api/interview"
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data interviewapimodels.InterviewData) (id string, err error)
	GetByID(id string) (item interviewapimodels.InterviewView, err error)
	Update(id string, data interviewapimodels.InterviewData) error
	Delete(id string) error
	List(filter interviewapimodels.InterviewFilter) (list []interviewapimodels.InterviewView, rowCount int64, err error)
	Complete(id string, notes string) error
	Cancel(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: interviewstore.NewInstance(db.DB),
	}
}

type impl struct {
	store interviewstore.Provider
}

func (i impl) Create(data interviewapimodels.InterviewData) (id string, err error) {
	rec := dbmodels.Interview{
		CandidateName: data.CandidateName,
		CandidateMail: data.CandidateMail,
		ScheduledAt:   data.ScheduledAt,
		Status:        models.InterviewStatusPlanned,
		Notes:         data.Notes,
	}
	if data.JobTitleID != "" {
		rec.JobTitleID = &data.JobTitleID
	}
	if data.InterviewerID != "" {
		rec.InterviewerID = &data.InterviewerID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("Ошибка создания интервью")
		return "", err
	}
	log.WithField("rec_id", id).Info("Создано интервью")
	return id, nil
}

func (i impl) GetByID(id string) (item interviewapimodels.InterviewView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	return interviewapimodels.InterviewConvert(*rec), nil
}

func (i impl) Update(id string, data interviewapimodels.InterviewData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.InterviewStatusPlanned {
		return apperrors.NewValidation("изменение доступно только для запланированного интервью")
	}
	updMap := map[string]interface{}{
		"CandidateName": data.CandidateName,
		"CandidateMail": data.CandidateMail,
		"ScheduledAt":   data.ScheduledAt,
		"Notes":         data.Notes,
	}
	if data.JobTitleID != "" {
		updMap["JobTitleID"] = data.JobTitleID
	}
	if data.InterviewerID != "" {
		updMap["InterviewerID"] = data.InterviewerID
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления интервью")
		return err
	}
	logger.Info("обновлено интервью")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления интервью")
		return err
	}
	logger.Info("удалено интервью")
	return nil
}

func (i impl) List(filter interviewapimodels.InterviewFilter) (list []interviewapimodels.InterviewView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	storeFilter := interviewstore.ListFilter{
		Status:        filter.Status,
		InterviewerID: filter.InterviewerID,
		Page:          page,
		Limit:         limit,
	}
	rowCount, err = i.store.ListCount(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка интервью")
		return nil, 0, err
	}
	recList, err := i.store.List(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка интервью")
		return nil, 0, err
	}
	result := make([]interviewapimodels.InterviewView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, interviewapimodels.InterviewConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Complete(id string, notes string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.InterviewStatusPlanned {
		return apperrors.NewValidation("интервью уже завершено или отменено")
	}
	updMap := map[string]interface{}{
		"Status": models.InterviewStatusDone,
	}
	if notes != "" {
		updMap["Notes"] = notes
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка завершения интервью")
		return err
	}
	logger.Info("завершено интервью")
	return nil
}

func (i impl) Cancel(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.InterviewStatusPlanned {
		return apperrors.NewValidation("интервью уже завершено или отменено")
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"Status": models.InterviewStatusCancelled})
	if err != nil {
		logger.WithError(err).Error("ошибка отмены интервью")
		return err
	}
	logger.Info("отменено интервью")
	return nil
}

func (i impl) getRec(id string) (*dbmodels.Interview, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения интервью")
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("интервью не найдено")
	}
	return rec, nil
}
