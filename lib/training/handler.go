package traininghandler

import (
	"erp-tools-backend/db"
	"erp-tools-backend/lib/notification"
	"erp-tools-backend/lib/skillgap"
	trainingcoursestore "erp-tools-backend/lib/training/course-store"
	trainingitemstore "erp-tools-backend/lib/training/item-store"
	trainingplanstore "erp-tools-backend/lib/training/plan-store"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	initchecker "erp-tools-backend/lib/utils/init-checker"
	"erp-tools-backend/models"
	trainingapimodels "erp-tools-backend/models/api/training"
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// курсы
	CreateCourse(data trainingapimodels.CourseData) (id string, err error)
	GetCourse(id string) (item trainingapimodels.CourseView, err error)
	UpdateCourse(id string, data trainingapimodels.CourseData) error
	DeleteCourse(id string) error
	ListCourses() (list []trainingapimodels.CourseView, err error)
	// планы
	CreatePlan(data trainingapimodels.PlanData) (id string, err error)
	GetPlan(id string) (item trainingapimodels.PlanView, err error)
	DeletePlan(id string) error
	ListPlans(filter trainingapimodels.PlanFilter) (list []trainingapimodels.PlanView, rowCount int64, err error)
	SubmitPlan(id string) error
	ApprovePlanManager(id string, data trainingapimodels.ApproveData) error
	ApprovePlanHr(id string, data trainingapimodels.ApproveData) error
	ApprovePlanFinance(id string, data trainingapimodels.ApproveData) error
	RejectPlan(id string, data trainingapimodels.RejectData) error
	CompletePlan(id string) error
	// пункты плана
	AddItem(planID string, data trainingapimodels.ItemData) (id string, err error)
	RemoveItem(id string) error
	ScheduleItem(id string, data trainingapimodels.ScheduleData) error
	StartItem(id string) error
	CompleteItem(id string, data trainingapimodels.CompleteData) error
	EvaluateItem(id string, data trainingapimodels.EvaluationData) error
	CancelItem(id string) error
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("skillgap", skillgap.Instance)
	Instance = impl{
		planStore:   trainingplanstore.NewInstance(db.DB),
		itemStore:   trainingitemstore.NewInstance(db.DB),
		courseStore: trainingcoursestore.NewInstance(db.DB),
	}
}

type impl struct {
	planStore   trainingplanstore.Provider
	itemStore   trainingitemstore.Provider
	courseStore trainingcoursestore.Provider
}

func (i impl) CreateCourse(data trainingapimodels.CourseData) (id string, err error) {
	rec := dbmodels.TrainingCourse{
		Name:        data.Name,
		Description: data.Description,
		Provider:    data.Provider,
		DurationHrs: data.DurationHrs,
	}
	id, err = i.courseStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("Ошибка создания курса")
		return "", err
	}
	log.WithField("rec_id", id).Info("Создан курс")
	return id, nil
}

func (i impl) GetCourse(id string) (item trainingapimodels.CourseView, err error) {
	rec, err := i.courseStore.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения курса")
		return trainingapimodels.CourseView{}, err
	}
	if rec == nil {
		return trainingapimodels.CourseView{}, apperrors.NewNotFound("курс не найден")
	}
	return trainingapimodels.CourseConvert(*rec), nil
}

func (i impl) UpdateCourse(id string, data trainingapimodels.CourseData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"Name":        data.Name,
		"Description": data.Description,
		"Provider":    data.Provider,
		"DurationHrs": data.DurationHrs,
	}
	err := i.courseStore.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления курса")
		return err
	}
	logger.Info("обновлен курс")
	return nil
}

func (i impl) DeleteCourse(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.courseStore.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления курса")
		return err
	}
	logger.Info("удален курс")
	return nil
}

func (i impl) ListCourses() (list []trainingapimodels.CourseView, err error) {
	recList, err := i.courseStore.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка курсов")
		return nil, err
	}
	result := make([]trainingapimodels.CourseView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, trainingapimodels.CourseConvert(rec))
	}
	return result, nil
}

func (i impl) CreatePlan(data trainingapimodels.PlanData) (id string, err error) {
	logger := log.WithField("employee_id", data.EmployeeID)
	exist, err := i.planStore.FindByEmployeeYear(data.EmployeeID, data.Year)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска плана обучения")
		return "", err
	}
	if exist != nil {
		return "", apperrors.NewValidation("у сотрудника уже есть план обучения на этот год")
	}
	rec := dbmodels.TrainingPlan{
		EmployeeID: data.EmployeeID,
		Year:       data.Year,
		Status:     models.TrainingPlanStatusDraft,
	}
	id, err = i.planStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("Ошибка создания плана обучения")
		return "", err
	}
	logger.WithField("rec_id", id).Info("Создан план обучения")
	return id, nil
}

func (i impl) GetPlan(id string) (item trainingapimodels.PlanView, err error) {
	rec, err := i.getPlan(id)
	if err != nil {
		return trainingapimodels.PlanView{}, err
	}
	return trainingapimodels.PlanConvert(*rec), nil
}

func (i impl) DeletePlan(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getPlan(id)
	if err != nil {
		return err
	}
	if rec.Status != models.TrainingPlanStatusDraft {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.TrainingPlanStatusDraft.ToHuman())
	}
	err = i.planStore.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления плана обучения")
		return err
	}
	logger.Info("удален план обучения")
	return nil
}

func (i impl) ListPlans(filter trainingapimodels.PlanFilter) (list []trainingapimodels.PlanView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	storeFilter := trainingplanstore.ListFilter{
		EmployeeID: filter.EmployeeID,
		Year:       filter.Year,
		Status:     filter.Status,
		Page:       page,
		Limit:      limit,
	}
	rowCount, err = i.planStore.ListCount(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка планов обучения")
		return nil, 0, err
	}
	recList, err := i.planStore.List(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка планов обучения")
		return nil, 0, err
	}
	result := make([]trainingapimodels.PlanView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, trainingapimodels.PlanConvert(rec))
	}
	return result, rowCount, nil
}

// SubmitPlan пустой план на согласование не отправляется
func (i impl) SubmitPlan(id string) error {
	rec, err := i.getPlan(id)
	if err != nil {
		return err
	}
	if rec.Status != models.TrainingPlanStatusDraft {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.TrainingPlanStatusDraft.ToHuman())
	}
	if len(rec.Items) == 0 {
		return apperrors.New(apperrors.KindEmptyPlan, "в плане обучения нет ни одного курса")
	}
	return i.setPlanStatus(rec, models.TrainingPlanStatusSubmitted, nil, "")
}

func (i impl) ApprovePlanManager(id string, data trainingapimodels.ApproveData) error {
	rec, err := i.getPlan(id)
	if err != nil {
		return err
	}
	if rec.Status != models.TrainingPlanStatusSubmitted {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.TrainingPlanStatusSubmitted.ToHuman())
	}
	updMap := map[string]interface{}{
		"ApprovedByManager": true,
		"ManagerNotes":      data.Notes,
	}
	return i.setPlanStatus(rec, models.TrainingPlanStatusApprovedManager, updMap, data.Notes)
}

func (i impl) ApprovePlanHr(id string, data trainingapimodels.ApproveData) error {
	rec, err := i.getPlan(id)
	if err != nil {
		return err
	}
	if rec.Status != models.TrainingPlanStatusApprovedManager {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.TrainingPlanStatusApprovedManager.ToHuman())
	}
	updMap := map[string]interface{}{
		"ApprovedByHr": true,
		"HrNotes":      data.Notes,
	}
	return i.setPlanStatus(rec, models.TrainingPlanStatusApprovedHr, updMap, data.Notes)
}

func (i impl) ApprovePlanFinance(id string, data trainingapimodels.ApproveData) error {
	rec, err := i.getPlan(id)
	if err != nil {
		return err
	}
	if rec.Status != models.TrainingPlanStatusApprovedHr {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.TrainingPlanStatusApprovedHr.ToHuman())
	}
	updMap := map[string]interface{}{
		"ApprovedByFinance": true,
		"FinanceNotes":      data.Notes,
	}
	return i.setPlanStatus(rec, models.TrainingPlanStatusApprovedFinance, updMap, data.Notes)
}

func (i impl) RejectPlan(id string, data trainingapimodels.RejectData) error {
	rec, err := i.getPlan(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowReject() {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.TrainingPlanStatusSubmitted.ToHuman())
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
	return i.setPlanStatus(rec, models.TrainingPlanStatusRejected, updMap, data.Notes)
}

func (i impl) CompletePlan(id string) error {
	rec, err := i.getPlan(id)
	if err != nil {
		return err
	}
	if rec.Status != models.TrainingPlanStatusApprovedFinance {
		return apperrors.NewInvalidTransition(rec.Status.ToHuman(), models.TrainingPlanStatusApprovedFinance.ToHuman())
	}
	for _, item := range rec.Items {
		if !item.Status.IsTerminal() {
			return apperrors.NewValidation("в плане остались незавершенные курсы")
		}
	}
	return i.setPlanStatus(rec, models.TrainingPlanStatusCompleted, nil, "")
}

// AddItem курсы добавляются только в черновик, без дублей
func (i impl) AddItem(planID string, data trainingapimodels.ItemData) (id string, err error) {
	logger := log.WithField("plan_id", planID)
	plan, err := i.getPlan(planID)
	if err != nil {
		return "", err
	}
	if plan.Status != models.TrainingPlanStatusDraft {
		return "", apperrors.NewInvalidTransition(plan.Status.ToHuman(), models.TrainingPlanStatusDraft.ToHuman())
	}
	if plan.HasCourse(data.CourseID) {
		return "", apperrors.NewValidation("курс уже есть в плане обучения")
	}
	course, err := i.courseStore.GetByID(data.CourseID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения курса")
		return "", err
	}
	if course == nil {
		return "", apperrors.NewNotFound("курс не найден")
	}
	rec := dbmodels.TrainingPlanItem{
		PlanID:   plan.ID,
		CourseID: data.CourseID,
		Quarter:  data.Quarter,
		Priority: data.Priority,
		Status:   models.TrainingItemStatusPlanned,
	}
	id, err = i.itemStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка добавления курса в план")
		return "", err
	}
	logger.WithField("rec_id", id).Info("курс добавлен в план обучения")
	return id, nil
}

func (i impl) RemoveItem(id string) error {
	logger := log.WithField("rec_id", id)
	item, err := i.getItem(id)
	if err != nil {
		return err
	}
	plan, err := i.getPlan(item.PlanID)
	if err != nil {
		return err
	}
	if plan.Status != models.TrainingPlanStatusDraft {
		return apperrors.NewInvalidTransition(plan.Status.ToHuman(), models.TrainingPlanStatusDraft.ToHuman())
	}
	err = i.itemStore.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления пункта плана")
		return err
	}
	logger.Info("пункт удален из плана обучения")
	return nil
}

func (i impl) ScheduleItem(id string, data trainingapimodels.ScheduleData) error {
	item, err := i.getItem(id)
	if err != nil {
		return err
	}
	if item.Status != models.TrainingItemStatusPlanned {
		return apperrors.NewInvalidTransition(item.Status.ToHuman(), models.TrainingItemStatusPlanned.ToHuman())
	}
	updMap := map[string]interface{}{
		"ScheduledDate": data.Date,
	}
	return i.setItemStatus(item, models.TrainingItemStatusScheduled, updMap)
}

func (i impl) StartItem(id string) error {
	item, err := i.getItem(id)
	if err != nil {
		return err
	}
	if item.Status != models.TrainingItemStatusScheduled {
		return apperrors.NewInvalidTransition(item.Status.ToHuman(), models.TrainingItemStatusScheduled.ToHuman())
	}
	return i.setItemStatus(item, models.TrainingItemStatusInProgress, nil)
}

// CompleteItem завершение пункта подтягивает навыки сотрудника
// до уровня курса
func (i impl) CompleteItem(id string, data trainingapimodels.CompleteData) error {
	logger := log.WithField("rec_id", id)
	item, err := i.getItem(id)
	if err != nil {
		return err
	}
	if !item.Status.AllowComplete() {
		return apperrors.NewInvalidTransition(item.Status.ToHuman(), models.TrainingItemStatusScheduled.ToHuman())
	}
	plan, err := i.getPlan(item.PlanID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"CompletedDate":    data.Date,
		"EmployeeRating":   data.Rating,
		"EmployeeComments": data.Comments,
	}
	err = i.setItemStatus(item, models.TrainingItemStatusCompleted, updMap)
	if err != nil {
		return err
	}
	err = skillgap.Instance.OnCourseCompleted(plan.EmployeeID, item.CourseID)
	if err != nil {
		logger.WithError(err).Error("ошибка повышения навыков по итогам курса")
		return err
	}
	return nil
}

// EvaluateItem оценка руководителя по завершенному обучению
func (i impl) EvaluateItem(id string, data trainingapimodels.EvaluationData) error {
	logger := log.WithField("rec_id", id)
	item, err := i.getItem(id)
	if err != nil {
		return err
	}
	if item.Status != models.TrainingItemStatusCompleted {
		return apperrors.NewInvalidTransition(item.Status.ToHuman(), models.TrainingItemStatusCompleted.ToHuman())
	}
	updMap := map[string]interface{}{
		"ManagerRating":   data.Rating,
		"ManagerComments": data.Comments,
	}
	err = i.itemStore.Update(item.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения оценки руководителя")
		return err
	}
	logger.Info("сохранена оценка руководителя")
	return nil
}

func (i impl) CancelItem(id string) error {
	item, err := i.getItem(id)
	if err != nil {
		return err
	}
	if item.Status.IsTerminal() {
		return apperrors.NewInvalidTransition(item.Status.ToHuman(), models.TrainingItemStatusPlanned.ToHuman())
	}
	return i.setItemStatus(item, models.TrainingItemStatusCancelled, nil)
}

func (i impl) setPlanStatus(rec *dbmodels.TrainingPlan, newStatus models.TrainingPlanStatus, updMap map[string]interface{}, comment string) error {
	logger := log.
		WithField("rec_id", rec.ID).
		WithField("new_status", newStatus)
	if updMap == nil {
		updMap = map[string]interface{}{}
	}
	updMap["Status"] = newStatus
	err := i.planStore.Update(rec.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка смены статуса плана обучения")
		return err
	}
	logger.Info("изменен статус плана обучения")
	notification.Instance.Dispatch(models.StatusEvent{
		Entity:     models.TrainingPlanEntity,
		EntityID:   rec.ID,
		EmployeeID: rec.EmployeeID,
		OldStatus:  string(rec.Status),
		NewStatus:  string(newStatus),
		Comment:    comment,
	})
	return nil
}

func (i impl) setItemStatus(rec *dbmodels.TrainingPlanItem, newStatus models.TrainingItemStatus, updMap map[string]interface{}) error {
	logger := log.
		WithField("rec_id", rec.ID).
		WithField("new_status", newStatus)
	if updMap == nil {
		updMap = map[string]interface{}{}
	}
	updMap["Status"] = newStatus
	err := i.itemStore.Update(rec.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка смены статуса пункта плана")
		return err
	}
	logger.Info("изменен статус пункта плана обучения")
	plan, err := i.planStore.GetByID(rec.PlanID)
	if err == nil && plan != nil {
		notification.Instance.Dispatch(models.StatusEvent{
			Entity:     models.TrainingItemEntity,
			EntityID:   rec.ID,
			EmployeeID: plan.EmployeeID,
			OldStatus:  string(rec.Status),
			NewStatus:  string(newStatus),
		})
	}
	return nil
}

func (i impl) getPlan(id string) (*dbmodels.TrainingPlan, error) {
	rec, err := i.planStore.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения плана обучения")
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("план обучения не найден")
	}
	return rec, nil
}

func (i impl) getItem(id string) (*dbmodels.TrainingPlanItem, error) {
	rec, err := i.itemStore.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения пункта плана")
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("пункт плана обучения не найден")
	}
	return rec, nil
}
