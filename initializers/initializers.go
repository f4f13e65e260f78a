package initializers

import (
	"erp-tools-backend/config"
	"erp-tools-backend/fiberlog"
	accesshandler "erp-tools-backend/lib/access"
	audithandler "erp-tools-backend/lib/audit"
	authhandler "erp-tools-backend/lib/auth"
	availabilityhandler "erp-tools-backend/lib/availability"
	dashboardhandler "erp-tools-backend/lib/dashboard"
	dictshandler "erp-tools-backend/lib/dicts"
	employeehandler "erp-tools-backend/lib/employee"
	xlsexport "erp-tools-backend/lib/export/xls"
	interviewhandler "erp-tools-backend/lib/interview"
	missionhandler "erp-tools-backend/lib/mission"
	notificationhandler "erp-tools-backend/lib/notification"
	rolehandler "erp-tools-backend/lib/role"
	skillgaphandler "erp-tools-backend/lib/skillgap"
	skillshandler "erp-tools-backend/lib/skills"
	traininghandler "erp-tools-backend/lib/training"
	usershandler "erp-tools-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	// обработчики без зависимостей друг от друга, кроме указанных ниже
	accesshandler.NewHandler()
	notificationhandler.NewHandler()
	xlsexport.NewHandler()
	rolehandler.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	dictshandler.NewHandler()
	employeehandler.NewHandler()
	// skillgap должен быть создан до skills и training - они вызывают его триггеры
	skillgaphandler.NewHandler()
	skillshandler.NewHandler()
	missionhandler.NewHandler()
	availabilityhandler.NewHandler()
	traininghandler.NewHandler()
	interviewhandler.NewHandler()
	dashboardhandler.NewHandler()
	audithandler.NewHandler()
}
