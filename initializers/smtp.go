package initializers

import (
	"erp-tools-backend/config"
	"erp-tools-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

// InitSmtp при пустых настройках клиент остается в холостом режиме,
// уведомления только логируются
func InitSmtp() {
	smtpConf := config.Conf.Smtp
	if smtpConf.Host == "" {
		log.Warn("SMTP не настроен, почтовые уведомления отправляться не будут")
	}
	err := smtp.Connect(smtpConf.User, smtpConf.Password, smtpConf.Host, smtpConf.Port, *smtpConf.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
}
