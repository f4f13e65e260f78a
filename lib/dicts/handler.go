package dictshandler

import (
	"erp-tools-backend/db"
	dictsstore "erp-tools-backend/lib/dicts/store"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	dictapimodels "erp-tools-backend/models/api/dict"
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CreateDepartment(data dictapimodels.DepartmentData) (id string, err error)
	UpdateDepartment(id string, data dictapimodels.DepartmentData) error
	DeleteDepartment(id string) error
	ListDepartments() (list []dictapimodels.DepartmentView, err error)
	CreateJobTitle(data dictapimodels.JobTitleData) (id string, err error)
	UpdateJobTitle(id string, data dictapimodels.JobTitleData) error
	DeleteJobTitle(id string) error
	ListJobTitles() (list []dictapimodels.JobTitleView, err error)
	CreateSkill(data dictapimodels.SkillData) (id string, err error)
	UpdateSkill(id string, data dictapimodels.SkillData) error
	DeleteSkill(id string) error
	ListSkills() (list []dictapimodels.SkillView, err error)
	CreateCurrency(data dictapimodels.CurrencyData) (id string, err error)
	UpdateCurrency(id string, data dictapimodels.CurrencyData) error
	DeleteCurrency(id string) error
	ListCurrencies() (list []dictapimodels.CurrencyView, err error)
	SetDefaultCurrency(id string) error
	GetCompanySettings() (view dictapimodels.CompanySettingsView, err error)
	SaveCompanySettings(data dictapimodels.CompanySettingsData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: dictsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store dictsstore.Provider
}

func (i impl) CreateDepartment(data dictapimodels.DepartmentData) (id string, err error) {
	rec := dbmodels.Department{
		Name: data.Name,
	}
	if data.ParentID != "" {
		rec.ParentID = &data.ParentID
	}
	id, err = i.store.CreateDepartment(rec)
	if err != nil {
		log.WithError(err).Error("Ошибка создания подразделения")
		return "", err
	}
	log.WithField("rec_id", id).Info("Создано подразделение")
	return id, nil
}

func (i impl) UpdateDepartment(id string, data dictapimodels.DepartmentData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"Name": data.Name,
	}
	if data.ParentID != "" {
		updMap["ParentID"] = data.ParentID
	} else {
		updMap["ParentID"] = nil
	}
	err := i.store.UpdateDepartment(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления подразделения")
		return err
	}
	logger.Info("обновлено подразделение")
	return nil
}

func (i impl) DeleteDepartment(id string) error {
	err := i.store.DeleteDepartment(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка удаления подразделения")
		return err
	}
	return nil
}

func (i impl) ListDepartments() (list []dictapimodels.DepartmentView, err error) {
	recList, err := i.store.ListDepartments()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка подразделений")
		return nil, err
	}
	result := make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.DepartmentConvert(rec))
	}
	return result, nil
}

func (i impl) CreateJobTitle(data dictapimodels.JobTitleData) (id string, err error) {
	rec := dbmodels.JobTitle{
		Name: data.Name,
	}
	if data.DepartmentID != "" {
		rec.DepartmentID = &data.DepartmentID
	}
	id, err = i.store.CreateJobTitle(rec)
	if err != nil {
		log.WithError(err).Error("Ошибка создания должности")
		return "", err
	}
	log.WithField("rec_id", id).Info("Создана должность")
	return id, nil
}

func (i impl) UpdateJobTitle(id string, data dictapimodels.JobTitleData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"Name": data.Name,
	}
	if data.DepartmentID != "" {
		updMap["DepartmentID"] = data.DepartmentID
	} else {
		updMap["DepartmentID"] = nil
	}
	err := i.store.UpdateJobTitle(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления должности")
		return err
	}
	logger.Info("обновлена должность")
	return nil
}

func (i impl) DeleteJobTitle(id string) error {
	err := i.store.DeleteJobTitle(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка удаления должности")
		return err
	}
	return nil
}

func (i impl) ListJobTitles() (list []dictapimodels.JobTitleView, err error) {
	recList, err := i.store.ListJobTitles()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка должностей")
		return nil, err
	}
	result := make([]dictapimodels.JobTitleView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.JobTitleConvert(rec))
	}
	return result, nil
}

func (i impl) CreateSkill(data dictapimodels.SkillData) (id string, err error) {
	rec := dbmodels.Skill{
		Name:        data.Name,
		Description: data.Description,
	}
	id, err = i.store.CreateSkill(rec)
	if err != nil {
		log.WithError(err).Error("Ошибка создания навыка")
		return "", err
	}
	log.WithField("rec_id", id).Info("Создан навык")
	return id, nil
}

func (i impl) UpdateSkill(id string, data dictapimodels.SkillData) error {
	logger := log.WithField("rec_id", id)
	err := i.store.UpdateSkill(id, map[string]interface{}{
		"Name":        data.Name,
		"Description": data.Description,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления навыка")
		return err
	}
	logger.Info("обновлен навык")
	return nil
}

func (i impl) DeleteSkill(id string) error {
	err := i.store.DeleteSkill(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка удаления навыка")
		return err
	}
	return nil
}

func (i impl) ListSkills() (list []dictapimodels.SkillView, err error) {
	recList, err := i.store.ListSkills()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка навыков")
		return nil, err
	}
	result := make([]dictapimodels.SkillView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.SkillConvert(rec))
	}
	return result, nil
}

func (i impl) CreateCurrency(data dictapimodels.CurrencyData) (id string, err error) {
	rec := dbmodels.Currency{
		Code:   data.Code,
		Name:   data.Name,
		Symbol: data.Symbol,
	}
	id, err = i.store.CreateCurrency(rec)
	if err != nil {
		log.WithError(err).Error("Ошибка создания валюты")
		return "", err
	}
	log.WithField("rec_id", id).Info("Создана валюта")
	return id, nil
}

func (i impl) UpdateCurrency(id string, data dictapimodels.CurrencyData) error {
	logger := log.WithField("rec_id", id)
	err := i.store.UpdateCurrency(id, map[string]interface{}{
		"Code":   data.Code,
		"Name":   data.Name,
		"Symbol": data.Symbol,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления валюты")
		return err
	}
	logger.Info("обновлена валюта")
	return nil
}

// DeleteCurrency валюту по умолчанию удалить нельзя
func (i impl) DeleteCurrency(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetCurrency(id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения валюты")
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("валюта не найдена")
	}
	if rec.IsDefault {
		return apperrors.NewValidation("нельзя удалить валюту по умолчанию")
	}
	err = i.store.DeleteCurrency(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления валюты")
		return err
	}
	logger.Info("удалена валюта")
	return nil
}

func (i impl) ListCurrencies() (list []dictapimodels.CurrencyView, err error) {
	recList, err := i.store.ListCurrencies()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка валют")
		return nil, err
	}
	result := make([]dictapimodels.CurrencyView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.CurrencyConvert(rec))
	}
	return result, nil
}

func (i impl) SetDefaultCurrency(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.SetDefaultCurrency(id)
	if err != nil {
		logger.WithError(err).Error("ошибка смены валюты по умолчанию")
		return err
	}
	logger.Info("изменена валюта по умолчанию")
	return nil
}

func (i impl) GetCompanySettings() (view dictapimodels.CompanySettingsView, err error) {
	rec, err := i.store.GetCompanySettings()
	if err != nil {
		log.WithError(err).Error("ошибка получения реквизитов компании")
		return dictapimodels.CompanySettingsView{}, err
	}
	if rec == nil {
		return dictapimodels.CompanySettingsView{}, nil
	}
	return dictapimodels.CompanySettingsConvert(*rec), nil
}

func (i impl) SaveCompanySettings(data dictapimodels.CompanySettingsData) error {
	rec, err := i.store.GetCompanySettings()
	if err != nil {
		log.WithError(err).Error("ошибка получения реквизитов компании")
		return err
	}
	if rec == nil {
		rec = &dbmodels.CompanySettings{}
	}
	rec.CompanyName = data.CompanyName
	rec.Address = data.Address
	rec.Phone = data.Phone
	rec.Email = data.Email
	rec.TaxNumber = data.TaxNumber
	err = i.store.SaveCompanySettings(*rec)
	if err != nil {
		log.WithError(err).Error("ошибка сохранения реквизитов компании")
		return err
	}
	log.Info("сохранены реквизиты компании")
	return nil
}
