package models

type EntityKind string

const (
	MissionEntity      EntityKind = "MISSION"
	AvailabilityEntity EntityKind = "AVAILABILITY"
	TrainingPlanEntity EntityKind = "TRAINING_PLAN"
	TrainingItemEntity EntityKind = "TRAINING_PLAN_ITEM"
)

// StatusEvent доменное событие смены статуса.
// Переход сам формирует событие со старым статусом,
// диспетчер уведомлений не занимается диффом записи.
type StatusEvent struct {
	Entity     EntityKind
	EntityID   string
	EmployeeID string
	OldStatus  string
	NewStatus  string
	Comment    string
}
