package db

import (
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"Role", &dbmodels.Role{}},
		{"RolePermission", &dbmodels.RolePermission{}},
		{"User", &dbmodels.User{}},
		{"Department", &dbmodels.Department{}},
		{"JobTitle", &dbmodels.JobTitle{}},
		{"Skill", &dbmodels.Skill{}},
		{"Currency", &dbmodels.Currency{}},
		{"CompanySettings", &dbmodels.CompanySettings{}},
		{"Employee", &dbmodels.Employee{}},
		{"EmployeeSkill", &dbmodels.EmployeeSkill{}},
		{"JobSkillRequirement", &dbmodels.JobSkillRequirement{}},
		{"TrainingCourse", &dbmodels.TrainingCourse{}},
		{"TrainingSkill", &dbmodels.TrainingSkill{}},
		{"TrainingPlan", &dbmodels.TrainingPlan{}},
		{"TrainingPlanItem", &dbmodels.TrainingPlanItem{}},
		{"Mission", &dbmodels.Mission{}},
		{"Availability", &dbmodels.Availability{}},
		{"Interview", &dbmodels.Interview{}},
		{"ActivityLog", &dbmodels.ActivityLog{}},
	}
	for _, m := range migrations {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "ошибка создания структуры %s", m.name)
		}
	}
	log.Info("Миграция прошла успешно")
	return nil
}
