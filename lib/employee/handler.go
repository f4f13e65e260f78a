package employeehandler

import (
	"erp-tools-backend/db"
	employeestore "erp-tools-backend/lib/employee/store"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	employeeapimodels "erp-tools-backend/models/api/employee"
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data employeeapimodels.EmployeeData) (id string, err error)
	GetByID(id string) (item employeeapimodels.EmployeeView, err error)
	GetByUserID(userID string) (rec *dbmodels.Employee, err error)
	Update(id string, data employeeapimodels.EmployeeData) error
	Delete(id string) error
	List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Create(data employeeapimodels.EmployeeData) (id string, err error) {
	rec := dbmodels.Employee{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		IsHr:      data.IsHr,
		IsFinance: data.IsFinance,
		HireDate:  data.HireDate,
	}
	setRef(&rec.DepartmentID, data.DepartmentID)
	setRef(&rec.JobTitleID, data.JobTitleID)
	setRef(&rec.ManagerID, data.ManagerID)
	setRef(&rec.SecondManagerID, data.SecondManagerID)
	setRef(&rec.UserID, data.UserID)
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("Ошибка создания сотрудника")
		return "", err
	}
	log.WithField("rec_id", id).Info("Создан сотрудник")
	return id, nil
}

func (i impl) GetByID(id string) (item employeeapimodels.EmployeeView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) GetByUserID(userID string) (rec *dbmodels.Employee, err error) {
	rec, err = i.store.GetByUserID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка поиска сотрудника по пользователю")
		return nil, err
	}
	return rec, nil
}

func (i impl) Update(id string, data employeeapimodels.EmployeeData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"FirstName":       data.FirstName,
		"LastName":        data.LastName,
		"Email":           data.Email,
		"Phone":           data.Phone,
		"DepartmentID":    refValue(data.DepartmentID),
		"JobTitleID":      refValue(data.JobTitleID),
		"ManagerID":       refValue(data.ManagerID),
		"SecondManagerID": refValue(data.SecondManagerID),
		"IsHr":            data.IsHr,
		"IsFinance":       data.IsFinance,
		"HireDate":        data.HireDate,
		"UserID":          refValue(data.UserID),
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления сотрудника")
		return err
	}
	logger.Info("обновлен сотрудник")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления сотрудника")
		return err
	}
	logger.Info("удален сотрудник")
	return nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	storeFilter := employeestore.ListFilter{
		DepartmentID: filter.DepartmentID,
		JobTitleID:   filter.JobTitleID,
		ManagerID:    filter.ManagerID,
		Search:       filter.Search,
		Page:         page,
		Limit:        limit,
	}
	rowCount, err = i.store.ListCount(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сотрудников")
		return nil, 0, err
	}
	recList, err := i.store.List(storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сотрудников")
		return nil, 0, err
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, employeeapimodels.EmployeeConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) getRec(id string) (*dbmodels.Employee, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения сотрудника")
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("сотрудник не найден")
	}
	return rec, nil
}

func setRef(field **string, value string) {
	if value != "" {
		*field = &value
	}
}

func refValue(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
