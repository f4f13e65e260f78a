package missionhandler

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"erp-tools-backend/db"
	dictsstore "erp-tools-backend/lib/dicts/store"
	pdfexport "erp-tools-backend/lib/export/pdf"
	filestorage "erp-tools-backend/lib/file-storage"
	missionstore "erp-tools-backend/lib/mission/store"
	"erp-tools-backend/lib/notification"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	"erp-tools-backend/models"
	missionapimodels "erp-tools-backend/models/api/mission"
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data missionapimodels.MissionData) (id string, err error)
	GetByID(id string) (item missionapimodels.MissionView, err error)
	Update(id string, data missionapimodels.MissionData) error
	Delete(id string) error
	List(filter missionapimodels.MissionFilter) (list []missionapimodels.MissionView, rowCount int64, err error)
	Submit(id string) error
	ApproveManager(id string, data missionapimodels.ApproveData) error
	ApproveHr(id string, data missionapimodels.ApproveData) error
	ApproveFinance(id string, data missionapimodels.ApproveData) error
	BulkApproveManager(ids []string) (approved int, err error)
	Reject(id string, data missionapimodels.RejectData) error
	Cancel(id string) error
	SubmitReport(id string, data missionapimodels.ReportData) error
	GenerateOrder(ctx context.Context, id string) (fileKey string, err error)
	DownloadOrder(ctx context.Context, id string) (body []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      missionstore.NewInstance(db.DB),
		dictsStore: dictsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      missionstore.Provider
	dictsStore dictsstore.Provider
}

func (i impl) Create(data missionapimodels.MissionData) (id string, err error) {
	rec := dbmodels.Mission{
		EmployeeID: data.EmployeeID,
		Purpose:    data.Purpose,
		Location:   data.Location,
		DateFrom:   data.DateFrom,
		DateTo:     data.DateTo,
		Status:     models.MissionStatusDraft,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("Ошибка создания командировки")
		return "", err
	}
	log.WithField("rec_id", id).Info("Создана командировка")
	return id, nil
}

func (i impl) GetByID(id string) (item missionapimodels.MissionView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return missionapimodels.MissionView{}, err
	}
	return missionapimodels.MissionConvert(*rec), nil
}

// Update правка реквизитов доступна только в черновике
func (i impl) Update(id string, data missionapimodels.MissionData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.MissionStatusDraft {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.MissionStatusDraft.ToHuman())
	}
	updMap := map[string]interface{}{
		"EmployeeID": data.EmployeeID,
		"Purpose":    data.Purpose,
		"Location":   data.Location,
		"DateFrom":   data.DateFrom,
		"DateTo":     data.DateTo,
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления командировки")
		return err
	}
	logger.Info("обновлена командировка")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.MissionStatusDraft {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.MissionStatusDraft.ToHuman())
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления командировки")
		return err
	}
	logger.Info("удалена командировка")
	return nil
}

func (i impl) List(filter missionapimodels.MissionFilter) (list []missionapimodels.MissionView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	storeFilter := missionstore.ListFilter{
		EmployeeID: filter.EmployeeID,
		Status:     filter.Status,
		Page:       page,
		Limit:      limit,
	}
	rowCount, err = i.store.ListCount(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка командировок")
		return nil, 0, err
	}
	recList, err := i.store.List(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка командировок")
		return nil, 0, err
	}
	result := make([]missionapimodels.MissionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, missionapimodels.MissionConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Submit(id string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.MissionStatusDraft {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.MissionStatusDraft.ToHuman())
	}
	return i.setStatus(rec, models.MissionStatusSubmitted, nil, "")
}

func (i impl) ApproveManager(id string, data missionapimodels.ApproveData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.MissionStatusSubmitted {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.MissionStatusSubmitted.ToHuman())
	}
	updMap := map[string]interface{}{
		"ApprovedByManager": true,
		"ManagerNotes":      data.Notes,
	}
	return i.setStatus(rec, models.MissionStatusApprovedManager, updMap, data.Notes)
}

func (i impl) ApproveHr(id string, data missionapimodels.ApproveData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.MissionStatusApprovedManager {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.MissionStatusApprovedManager.ToHuman())
	}
	updMap := map[string]interface{}{
		"ApprovedByHr": true,
		"HrNotes":      data.Notes,
	}
	return i.setStatus(rec, models.MissionStatusApprovedHr, updMap, data.Notes)
}

func (i impl) ApproveFinance(id string, data missionapimodels.ApproveData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.MissionStatusApprovedHr {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.MissionStatusApprovedHr.ToHuman())
	}
	updMap := map[string]interface{}{
		"ApprovedByFinance": true,
		"FinanceNotes":      data.Notes,
	}
	return i.setStatus(rec, models.MissionStatusApprovedFinance, updMap, data.Notes)
}

// BulkApproveManager записи не в подходящем статусе пропускаются,
// возвращается число согласованных
func (i impl) BulkApproveManager(ids []string) (approved int, err error) {
	for _, id := range ids {
		err = i.ApproveManager(id, missionapimodels.ApproveData{})
		if err != nil {
			if apperrors.IsBusiness(err) {
				log.WithField("rec_id", id).WithError(err).Debug("командировка пропущена при массовом согласовании")
				continue
			}
			return approved, err
		}
		approved++
	}
	return approved, nil
}

func (i impl) Reject(id string, data missionapimodels.RejectData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowReject() {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.MissionStatusSubmitted.ToHuman())
	}
	updMap := map[string]interface{}{
		"ApprovedByManager": false,
		"ApprovedByHr":      false,
		"ApprovedByFinance": false,
	}
	switch data.Party {
	case models.PartyManager:
		updMap["ManagerNotes"] = data.Notes
	case models.PartyHr:
		updMap["HrNotes"] = data.Notes
	case models.PartyFinance:
		updMap["FinanceNotes"] = data.Notes
	}
	return i.setStatus(rec, models.MissionStatusRejected, updMap, data.Notes)
}

func (i impl) Cancel(id string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowCancel() {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.MissionStatusDraft.ToHuman())
	}
	return i.setStatus(rec, models.MissionStatusCancelled, nil, "")
}

// SubmitReport отчет закрывает командировку, пустой отчет не принимается
func (i impl) SubmitReport(id string, data missionapimodels.ReportData) error {
	if strings.TrimSpace(data.Report) == "" {
		return apperrors.NewValidation("не заполнен отчет о командировке")
	}
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.MissionStatusApprovedFinance {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.MissionStatusApprovedFinance.ToHuman())
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"Report":          data.Report,
		"ReportSubmitted": true,
		"ReportDate":      &now,
	}
	return i.setStatus(rec, models.MissionStatusCompleted, updMap, "")
}

// GenerateOrder приказ формируется после полного согласования
func (i impl) GenerateOrder(ctx context.Context, id string) (fileKey string, err error) {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return "", err
	}
	if rec.Status != models.MissionStatusApprovedFinance && rec.Status != models.MissionStatusCompleted {
		return "", apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.MissionStatusApprovedFinance.ToHuman())
	}
	orderData := pdfexport.OrderData{
		OrderNumber: orderNumber(rec),
		Purpose:     rec.Purpose,
		Location:    rec.Location,
		DateFrom:    rec.DateFrom,
		DateTo:      rec.DateTo,
		CreatedAt:   time.Now(),
	}
	settings, err := i.dictsStore.GetCompanySettings()
	if err != nil {
		logger.WithError(err).Error("ошибка получения реквизитов компании")
		return "", err
	}
	if settings != nil {
		orderData.CompanyName = settings.CompanyName
	}
	if rec.Employee != nil {
		orderData.EmployeeName = rec.Employee.GetFullName()
		if rec.Employee.JobTitle != nil {
			orderData.JobTitle = rec.Employee.JobTitle.Name
		}
		if rec.Employee.Department != nil {
			orderData.Department = rec.Employee.Department.Name
		}
		if rec.Employee.Manager != nil {
			orderData.ManagerName = rec.Employee.Manager.GetFullName()
		}
	}
	pdfFile, err := pdfexport.GenerateMissionOrder(orderData)
	if err != nil {
		logger.WithError(err).Error("ошибка формирования приказа")
		return "", err
	}
	fileKey = fmt.Sprintf("missions/%s/order.pdf", rec.ID)
	err = filestorage.Instance.Upload(ctx, fileKey, bytes.NewReader(pdfFile), int64(len(pdfFile)), "application/pdf")
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки приказа в хранилище")
		return "", err
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"OrderFileKey": fileKey})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения ключа файла приказа")
		return "", err
	}
	logger.WithField("file_key", fileKey).Info("сформирован приказ о командировке")
	return fileKey, nil
}

func (i impl) DownloadOrder(ctx context.Context, id string) (body []byte, fileName string, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, "", err
	}
	if rec.OrderFileKey == "" {
		return nil, "", apperrors.NewNotFound("приказ еще не сформирован")
	}
	body, err = filestorage.Instance.Get(ctx, rec.OrderFileKey)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения файла приказа")
		return nil, "", err
	}
	return body, fmt.Sprintf("order_%s.pdf", orderNumber(rec)), nil
}

func (i impl) setStatus(rec *dbmodels.Mission, newStatus models.MissionStatus, updMap map[string]interface{}, comment string) error {
	logger := log.
		WithField("rec_id", rec.ID).
		WithField("new_status", newStatus)
	if updMap == nil {
		updMap = map[string]interface{}{}
	}
	updMap["Status"] = newStatus
	err := i.store.Update(rec.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка смены статуса командировки")
		return err
	}
	logger.Info("изменен статус командировки")
	notification.Instance.Dispatch(models.StatusEvent{
		Entity:     models.MissionEntity,
		EntityID:   rec.ID,
		EmployeeID: rec.EmployeeID,
		OldStatus:  string(rec.Status),
		NewStatus:  string(newStatus),
		Comment:    comment,
	})
	return nil
}

func (i impl) getRec(id string) (*dbmodels.Mission, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения командировки")
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("командировка не найдена")
	}
	return rec, nil
}

func orderNumber(rec *dbmodels.Mission) string {
	return fmt.Sprintf("%s-%s", rec.CreatedAt.Format("2006"), rec.ID[:8])
}
