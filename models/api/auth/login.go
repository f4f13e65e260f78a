package authapimodels

import (
	"erp-tools-backend/models"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type JWTResponse struct {
	AccessToken string `json:"access_token"`
}

// CheckAuthResponse идентификация + карта доступов по модулям
type CheckAuthResponse struct {
	UserID      string                               `json:"user_id"`
	Email       string                               `json:"email"`
	FullName    string                               `json:"full_name"`
	IsSuperuser bool                                 `json:"is_superuser"`
	Access      map[models.Module]models.AccessLevel `json:"access"`
}
