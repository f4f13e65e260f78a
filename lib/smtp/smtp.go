package smtp

import (
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(from, to, message, subject string) error
	SendRaw(from string, to []string, raw io.Reader) error
}

func Connect(user, password, host, port string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) configured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) send(to []string, body io.Reader) error {
	auth := sasl.NewPlainClient("", i.user, i.password)
	if i.tlsEnabled {
		return smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, to, body)
	}
	return smtp.SendMail(i.host+":"+i.port, auth, i.user, to, body)
}

func (i impl) SendEMail(from, to, message, subject string) (err error) {
	logger := log.WithField("sender", from)
	if !i.configured() {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	sendTo := []string{
		to,
	}
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("Subject: ERP - %s\n%s\r\n Отправитель: %s\r\n %s\r\n", subject, mimeHeaders, from, message))

	err = i.send(sendTo, body)
	if err != nil {
		log.WithError(err).Error("Ошибка отправки сообщения")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}

// SendRaw отправка готового MIME сообщения (см. lib/notification)
func (i impl) SendRaw(from string, to []string, raw io.Reader) error {
	logger := log.WithField("sender", from)
	if !i.configured() {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	err := i.send(to, raw)
	if err != nil {
		log.WithError(err).Error("Ошибка отправки сообщения")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}
