package audithandler

import (
	"erp-tools-backend/db"
	auditstore "erp-tools-backend/lib/audit/store"
	auditapimodels "erp-tools-backend/models/api/audit"
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Log ошибка записи журнала не прерывает обработку запроса
	Log(rec dbmodels.ActivityLog)
	List(filter auditapimodels.AuditFilter) (list []auditapimodels.AuditView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: auditstore.NewInstance(db.DB),
	}
}

type impl struct {
	store auditstore.Provider
}

func (i impl) Log(rec dbmodels.ActivityLog) {
	err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("module", rec.Module).
			WithField("action", rec.Action).
			WithError(err).
			Error("ошибка записи журнала действий")
	}
}

func (i impl) List(filter auditapimodels.AuditFilter) (list []auditapimodels.AuditView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	storeFilter := auditstore.ListFilter{
		UserID: filter.UserID,
		Module: filter.Module,
		Action: filter.Action,
		Page:   page,
		Limit:  limit,
	}
	rowCount, err = i.store.ListCount(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения журнала действий")
		return nil, 0, err
	}
	recList, err := i.store.List(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения журнала действий")
		return nil, 0, err
	}
	result := make([]auditapimodels.AuditView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, auditapimodels.AuditConvert(rec))
	}
	return result, rowCount, nil
}
