package models

type MissionStatus string

const (
	MissionStatusDraft           MissionStatus = "DRAFT"
	MissionStatusSubmitted       MissionStatus = "SUBMITTED"
	MissionStatusApprovedManager MissionStatus = "APPROVED_MANAGER"
	MissionStatusApprovedHr      MissionStatus = "APPROVED_HR"
	MissionStatusApprovedFinance MissionStatus = "APPROVED_FINANCE"
	MissionStatusRejected        MissionStatus = "REJECTED"
	MissionStatusCancelled       MissionStatus = "CANCELLED"
	MissionStatusCompleted       MissionStatus = "COMPLETED"
)

var missionStatusHumanName = map[MissionStatus]string{
	MissionStatusDraft:           "Черновик",
	MissionStatusSubmitted:       "Отправлена на согласование",
	MissionStatusApprovedManager: "Согласована руководителем",
	MissionStatusApprovedHr:      "Согласована HR",
	MissionStatusApprovedFinance: "Согласована финансовым отделом",
	MissionStatusRejected:        "Отклонена",
	MissionStatusCancelled:       "Отменена",
	MissionStatusCompleted:       "Завершена",
}

func (s MissionStatus) ToHuman() string {
	if human, exist := missionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s MissionStatus) IsTerminal() bool {
	switch s {
	case MissionStatusCompleted, MissionStatusRejected, MissionStatusCancelled:
		return true
	}
	return false
}

// AllowReject отклонение доступно из любого статуса, кроме черновика и терминальных
func (s MissionStatus) AllowReject() bool {
	switch s {
	case MissionStatusDraft, MissionStatusCompleted, MissionStatusRejected, MissionStatusCancelled:
		return false
	}
	return true
}

func (s MissionStatus) AllowCancel() bool {
	return !s.IsTerminal()
}

type AvailabilityStatus string

const (
	AvailabilityStatusRequested AvailabilityStatus = "REQUESTED"
	AvailabilityStatusApproved  AvailabilityStatus = "APPROVED"
	AvailabilityStatusRejected  AvailabilityStatus = "REJECTED"
	AvailabilityStatusCancelled AvailabilityStatus = "CANCELLED"
)

var availabilityStatusHumanName = map[AvailabilityStatus]string{
	AvailabilityStatusRequested: "Запрошена",
	AvailabilityStatusApproved:  "Согласована",
	AvailabilityStatusRejected:  "Отклонена",
	AvailabilityStatusCancelled: "Отменена",
}

func (s AvailabilityStatus) ToHuman() string {
	if human, exist := availabilityStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type TrainingPlanStatus string

const (
	TrainingPlanStatusDraft           TrainingPlanStatus = "DRAFT"
	TrainingPlanStatusSubmitted       TrainingPlanStatus = "SUBMITTED"
	TrainingPlanStatusApprovedManager TrainingPlanStatus = "APPROVED_MANAGER"
	TrainingPlanStatusApprovedHr      TrainingPlanStatus = "APPROVED_HR"
	TrainingPlanStatusApprovedFinance TrainingPlanStatus = "APPROVED_FINANCE"
	TrainingPlanStatusRejected        TrainingPlanStatus = "REJECTED"
	TrainingPlanStatusCompleted       TrainingPlanStatus = "COMPLETED"
)

var trainingPlanStatusHumanName = map[TrainingPlanStatus]string{
	TrainingPlanStatusDraft:           "Черновик",
	TrainingPlanStatusSubmitted:       "Отправлен на согласование",
	TrainingPlanStatusApprovedManager: "Согласован руководителем",
	TrainingPlanStatusApprovedHr:      "Согласован HR",
	TrainingPlanStatusApprovedFinance: "Согласован финансовым отделом",
	TrainingPlanStatusRejected:        "Отклонен",
	TrainingPlanStatusCompleted:       "Завершен",
}

func (s TrainingPlanStatus) ToHuman() string {
	if human, exist := trainingPlanStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// AllowReject план нельзя отклонить из черновика и терминальных статусов
func (s TrainingPlanStatus) AllowReject() bool {
	switch s {
	case TrainingPlanStatusDraft, TrainingPlanStatusCompleted, TrainingPlanStatusRejected:
		return false
	}
	return true
}

type TrainingItemStatus string

const (
	TrainingItemStatusPlanned    TrainingItemStatus = "PLANNED"
	TrainingItemStatusScheduled  TrainingItemStatus = "SCHEDULED"
	TrainingItemStatusInProgress TrainingItemStatus = "IN_PROGRESS"
	TrainingItemStatusCompleted  TrainingItemStatus = "COMPLETED"
	TrainingItemStatusCancelled  TrainingItemStatus = "CANCELLED"
)

var trainingItemStatusHumanName = map[TrainingItemStatus]string{
	TrainingItemStatusPlanned:    "Запланировано",
	TrainingItemStatusScheduled:  "Назначена дата",
	TrainingItemStatusInProgress: "В процессе",
	TrainingItemStatusCompleted:  "Завершено",
	TrainingItemStatusCancelled:  "Отменено",
}

func (s TrainingItemStatus) ToHuman() string {
	if human, exist := trainingItemStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s TrainingItemStatus) IsTerminal() bool {
	return s == TrainingItemStatusCompleted || s == TrainingItemStatusCancelled
}

func (s TrainingItemStatus) AllowComplete() bool {
	return s == TrainingItemStatusScheduled || s == TrainingItemStatusInProgress
}

// ApproverParty сторона согласования в цепочке
type ApproverParty string

const (
	PartyManager ApproverParty = "MANAGER"
	PartyHr      ApproverParty = "HR"
	PartyFinance ApproverParty = "FINANCE"
)

var partyHumanName = map[ApproverParty]string{
	PartyManager: "Руководитель",
	PartyHr:      "HR",
	PartyFinance: "Финансовый отдел",
}

func (p ApproverParty) ToHuman() string {
	if human, exist := partyHumanName[p]; exist {
		return human
	}
	return string(p)
}

type InterviewStatus string

const (
	InterviewStatusPlanned   InterviewStatus = "PLANNED"
	InterviewStatusDone      InterviewStatus = "DONE"
	InterviewStatusCancelled InterviewStatus = "CANCELLED"
)

// Приоритет пункта плана обучения (1 - низкий, 3 - высокий)
const (
	ItemPriorityLow    = 1
	ItemPriorityMedium = 2
	ItemPriorityHigh   = 3
)
