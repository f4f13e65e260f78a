package notification

import (
	"erp-tools-backend/models"
)

// audience получатели уведомления о переходе
type audience struct {
	Employee bool
	Manager  bool
	Hr       bool
	Finance  bool
}

type transitionKey struct {
	Entity models.EntityKind
	Old    string
	New    string
}

// anyStatus подстановка для переходов, доступных из нескольких статусов
// (отклонение и отмена)
const anyStatus = "*"

var audienceRules = map[transitionKey]audience{
	// командировки
	{models.MissionEntity, string(models.MissionStatusDraft), string(models.MissionStatusSubmitted)}:                      {Employee: true, Manager: true, Hr: true},
	{models.MissionEntity, string(models.MissionStatusSubmitted), string(models.MissionStatusApprovedManager)}:            {Employee: true, Hr: true},
	{models.MissionEntity, string(models.MissionStatusApprovedManager), string(models.MissionStatusApprovedHr)}:           {Employee: true, Finance: true},
	{models.MissionEntity, string(models.MissionStatusApprovedHr), string(models.MissionStatusApprovedFinance)}:           {Employee: true, Manager: true},
	{models.MissionEntity, string(models.MissionStatusApprovedFinance), string(models.MissionStatusCompleted)}:            {Employee: true, Manager: true, Hr: true},
	{models.MissionEntity, anyStatus, string(models.MissionStatusRejected)}:                                               {Employee: true, Manager: true},
	{models.MissionEntity, anyStatus, string(models.MissionStatusCancelled)}:                                              {Employee: true, Manager: true},
	// заявки на отсутствие
	{models.AvailabilityEntity, string(models.AvailabilityStatusRequested), string(models.AvailabilityStatusApproved)}:    {Employee: true, Manager: true},
	{models.AvailabilityEntity, string(models.AvailabilityStatusRequested), string(models.AvailabilityStatusRejected)}:    {Employee: true, Manager: true},
	{models.AvailabilityEntity, string(models.AvailabilityStatusRequested), string(models.AvailabilityStatusCancelled)}:   {Employee: true},
	// планы обучения
	{models.TrainingPlanEntity, string(models.TrainingPlanStatusDraft), string(models.TrainingPlanStatusSubmitted)}:       {Employee: true, Manager: true, Hr: true},
	{models.TrainingPlanEntity, string(models.TrainingPlanStatusSubmitted), string(models.TrainingPlanStatusApprovedManager)}: {Employee: true, Hr: true},
	{models.TrainingPlanEntity, string(models.TrainingPlanStatusApprovedManager), string(models.TrainingPlanStatusApprovedHr)}: {Employee: true, Finance: true},
	{models.TrainingPlanEntity, string(models.TrainingPlanStatusApprovedHr), string(models.TrainingPlanStatusApprovedFinance)}: {Employee: true, Manager: true},
	{models.TrainingPlanEntity, string(models.TrainingPlanStatusApprovedFinance), string(models.TrainingPlanStatusCompleted)}:  {Employee: true, Manager: true, Hr: true},
	{models.TrainingPlanEntity, anyStatus, string(models.TrainingPlanStatusRejected)}:                                     {Employee: true, Manager: true},
	// пункты плана обучения
	{models.TrainingItemEntity, string(models.TrainingItemStatusPlanned), string(models.TrainingItemStatusScheduled)}:     {Employee: true},
	{models.TrainingItemEntity, anyStatus, string(models.TrainingItemStatusCompleted)}:                                    {Employee: true, Manager: true},
}

// findAudience точный ключ имеет приоритет над подстановочным
func findAudience(event models.StatusEvent) (audience, bool) {
	rule, found := audienceRules[transitionKey{event.Entity, event.OldStatus, event.NewStatus}]
	if found {
		return rule, true
	}
	rule, found = audienceRules[transitionKey{event.Entity, anyStatus, event.NewStatus}]
	return rule, found
}

var entityHumanName = map[models.EntityKind]string{
	models.MissionEntity:      "Командировка",
	models.AvailabilityEntity: "Заявка на отсутствие",
	models.TrainingPlanEntity: "План обучения",
	models.TrainingItemEntity: "Пункт плана обучения",
}

func statusHuman(entity models.EntityKind, status string) string {
	switch entity {
	case models.MissionEntity:
		return models.MissionStatus(status).ToHuman()
	case models.AvailabilityEntity:
		return models.AvailabilityStatus(status).ToHuman()
	case models.TrainingPlanEntity:
		return models.TrainingPlanStatus(status).ToHuman()
	case models.TrainingItemEntity:
		return models.TrainingItemStatus(status).ToHuman()
	}
	return status
}
