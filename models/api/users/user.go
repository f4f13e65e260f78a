package usersapimodels

import (
	apimodels "erp-tools-backend/models/api"
	dbmodels "erp-tools-backend/models/db"
	"strings"

	"github.com/pkg/errors"
)

type UserCreateData struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	IsSuperuser bool     `json:"is_superuser"`
	RoleIDs     []string `json:"role_ids"`
}

func (r UserCreateData) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return errors.New("указана некорректная почта")
	}
	if len(r.Password) < 8 {
		return errors.New("пароль должен содержать не менее 8 символов")
	}
	return nil
}

type UserEditData struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	IsActive    *bool    `json:"is_active"`
	IsSuperuser *bool    `json:"is_superuser"`
	RoleIDs     []string `json:"role_ids"`
}

func (r UserEditData) Validate() error {
	return nil
}

type UserFilter struct {
	apimodels.Pagination
	Search string `json:"search"`
}

type UserView struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	FullName    string   `json:"full_name"`
	IsActive    bool     `json:"is_active"`
	IsSuperuser bool     `json:"is_superuser"`
	Roles       []string `json:"roles"`
}

func UserConvert(rec dbmodels.User) UserView {
	view := UserView{
		ID:          rec.ID,
		Email:       rec.Email,
		FullName:    rec.GetFullName(),
		IsActive:    rec.IsActive,
		IsSuperuser: rec.IsSuperuser,
		Roles:       make([]string, 0, len(rec.Roles)),
	}
	for _, role := range rec.Roles {
		view.Roles = append(view.Roles, role.Name)
	}
	return view
}
