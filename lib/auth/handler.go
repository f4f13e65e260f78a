package authhandler

import (
	"time"

	"erp-tools-backend/db"
	"erp-tools-backend/lib/access"
	usersstore "erp-tools-backend/lib/users/store"
	apperrors "erp-tools-backend/lib/utils/app-errors"
	authutils "erp-tools-backend/lib/utils/auth-utils"
	authapimodels "erp-tools-backend/models/api/auth"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	CheckAuth(userID string) (response authapimodels.CheckAuthResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, errors.New("неверная почта или пароль")
	}
	if !user.IsActive {
		logger.Debug("учетная запись отключена")
		return authapimodels.JWTResponse{}, errors.New("учетная запись отключена")
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, errors.New("неверная почта или пароль")
	}
	tokenString, err := authutils.GetToken(user.ID, user.GetFullName(), user.IsSuperuser)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"LastLogin": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления даты последнего входа")
	}
	return authapimodels.JWTResponse{
		AccessToken: tokenString,
	}, nil
}

func (i impl) CheckAuth(userID string) (response authapimodels.CheckAuthResponse, err error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка получения пользователя")
		return authapimodels.CheckAuthResponse{}, err
	}
	if user == nil {
		return authapimodels.CheckAuthResponse{}, apperrors.NewNotFound("пользователь не найден")
	}
	accessMap, err := access.Instance.ResolveAll(userID)
	if err != nil {
		return authapimodels.CheckAuthResponse{}, err
	}
	return authapimodels.CheckAuthResponse{
		UserID:      user.ID,
		Email:       user.Email,
		FullName:    user.GetFullName(),
		IsSuperuser: user.IsSuperuser,
		Access:      accessMap,
	}, nil
}
