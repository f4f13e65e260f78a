package dictapimodels

import (
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
)

type DepartmentData struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
}

func (r DepartmentData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название подразделения")
	}
	return nil
}

type DepartmentView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	view := DepartmentView{
		ID:   rec.ID,
		Name: rec.Name,
	}
	if rec.ParentID != nil {
		view.ParentID = *rec.ParentID
	}
	return view
}

type JobTitleData struct {
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}

func (r JobTitleData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название должности")
	}
	return nil
}

type JobTitleView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DepartmentID   string `json:"department_id,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
}

func JobTitleConvert(rec dbmodels.JobTitle) JobTitleView {
	view := JobTitleView{
		ID:   rec.ID,
		Name: rec.Name,
	}
	if rec.DepartmentID != nil {
		view.DepartmentID = *rec.DepartmentID
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	return view
}

type SkillData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r SkillData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название навыка")
	}
	return nil
}

type SkillView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func SkillConvert(rec dbmodels.Skill) SkillView {
	return SkillView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
	}
}

type CurrencyData struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

func (r CurrencyData) Validate() error {
	if len(r.Code) != 3 {
		return errors.New("код валюты должен состоять из 3 символов")
	}
	if r.Name == "" {
		return errors.New("не указано название валюты")
	}
	return nil
}

type CurrencyView struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	IsDefault bool   `json:"is_default"`
}

func CurrencyConvert(rec dbmodels.Currency) CurrencyView {
	return CurrencyView{
		ID:        rec.ID,
		Code:      rec.Code,
		Name:      rec.Name,
		Symbol:    rec.Symbol,
		IsDefault: rec.IsDefault,
	}
}

type CompanySettingsData struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	TaxNumber   string `json:"tax_number"`
}

func (r CompanySettingsData) Validate() error {
	if r.CompanyName == "" {
		return errors.New("не указано название компании")
	}
	return nil
}

type CompanySettingsView struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	TaxNumber   string `json:"tax_number"`
}

func CompanySettingsConvert(rec dbmodels.CompanySettings) CompanySettingsView {
	return CompanySettingsView{
		CompanyName: rec.CompanyName,
		Address:     rec.Address,
		Phone:       rec.Phone,
		Email:       rec.Email,
		TaxNumber:   rec.TaxNumber,
	}
}
