package models

type Module string

const (
	CoreModule        Module = "CORE"
	CrmModule         Module = "CRM"
	SalesModule       Module = "SALES"
	HrModule          Module = "HR"
	PayrollModule     Module = "PAYROLL"
	AccountingModule  Module = "ACCOUNTING"
	RecruitmentModule Module = "RECRUITMENT"
	UsersModule       Module = "USERS"
	AnalyticsModule   Module = "ANALYTICS"
)

// AllModules порядок фиксирован для стабильной выдачи карты доступов
var AllModules = []Module{
	CoreModule,
	CrmModule,
	SalesModule,
	HrModule,
	PayrollModule,
	AccountingModule,
	RecruitmentModule,
	UsersModule,
	AnalyticsModule,
}

type AccessLevel string

const (
	AccessNone   AccessLevel = "NO_ACCESS"
	AccessRead   AccessLevel = "READ"
	AccessCreate AccessLevel = "CREATE"
	AccessUpdate AccessLevel = "UPDATE"
	AccessDelete AccessLevel = "DELETE"
	AccessAdmin  AccessLevel = "ADMIN"
)

var accessRank = map[AccessLevel]int{
	AccessNone:   0,
	AccessRead:   1,
	AccessCreate: 2,
	AccessUpdate: 3,
	AccessDelete: 4,
	AccessAdmin:  5,
}

func (l AccessLevel) Rank() int {
	return accessRank[l]
}

func (l AccessLevel) IsValid() bool {
	_, ok := accessRank[l]
	return ok
}

// AtLeast сравнение по общему порядку уровней доступа
func (l AccessLevel) AtLeast(min AccessLevel) bool {
	return accessRank[l] >= accessRank[min]
}

func MaxAccess(a, b AccessLevel) AccessLevel {
	if accessRank[a] >= accessRank[b] {
		return a
	}
	return b
}

var accessHumanName = map[AccessLevel]string{
	AccessNone:   "Нет доступа",
	AccessRead:   "Просмотр",
	AccessCreate: "Создание",
	AccessUpdate: "Изменение",
	AccessDelete: "Удаление",
	AccessAdmin:  "Администрирование",
}

func (l AccessLevel) ToHuman() string {
	if human, exist := accessHumanName[l]; exist {
		return human
	}
	return string(l)
}

type Capability string

const (
	CapabilityView   Capability = "VIEW"
	CapabilityAdd    Capability = "ADD"
	CapabilityChange Capability = "CHANGE"
	CapabilityDelete Capability = "DELETE"
)
