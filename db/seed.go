package db

import (
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// InitSeed подготовка справочников и учетной записи администратора на пустой базе
func InitSeed() {
	seedDefaultCurrency()
	seedSuperuser()
}

// ровно одна валюта по умолчанию
func seedDefaultCurrency() {
	var count int64
	DB.Model(&dbmodels.Currency{}).Count(&count)
	if count > 0 {
		return
	}
	rec := dbmodels.Currency{
		Code:      "RUB",
		Name:      "Российский рубль",
		Symbol:    "₽",
		IsDefault: true,
	}
	if err := DB.Save(&rec).Error; err != nil {
		log.WithError(err).Error("ошибка создания валюты по умолчанию")
		return
	}
	log.Info("Создана валюта по умолчанию")
}

func seedSuperuser() {
	var count int64
	DB.Model(&dbmodels.User{}).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("ошибка генерации пароля администратора")
		return
	}
	rec := dbmodels.User{
		Email:       "admin@localhost",
		Password:    string(hash),
		FirstName:   "Администратор",
		LastName:    "Системы",
		IsActive:    true,
		IsSuperuser: true,
	}
	if err := DB.Save(&rec).Error; err != nil {
		log.WithError(err).Error("ошибка создания учетной записи администратора")
		return
	}
	log.Warn("Создана учетная запись администратора admin@localhost, смените пароль")
}
