package notification

import (
	"bytes"
	"fmt"

	"erp-tools-backend/config"
	"erp-tools-backend/db"
	employeestore "erp-tools-backend/lib/employee/store"
	"erp-tools-backend/lib/smtp"
	"erp-tools-backend/models"
	dbmodels "erp-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Provider рассылка уведомлений о смене статуса.
// Ошибки отправки только логируются, переход записи от них не зависит.
type Provider interface {
	Dispatch(event models.StatusEvent)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db.DB),
		fromEmail:     config.Conf.Smtp.FromEmail,
	}
}

type impl struct {
	employeeStore employeestore.Provider
	fromEmail     string
}

func (i impl) Dispatch(event models.StatusEvent) {
	logger := log.
		WithField("entity", event.Entity).
		WithField("rec_id", event.EntityID).
		WithField("new_status", event.NewStatus)
	rule, found := findAudience(event)
	if !found {
		logger.Debug("для перехода не настроено уведомление")
		return
	}
	recipients := i.resolveRecipients(event, rule)
	if len(recipients) == 0 {
		logger.Debug("нет получателей уведомления")
		return
	}
	raw, err := buildMessage(i.fromEmail, recipients, event)
	if err != nil {
		logger.WithError(err).Error("ошибка формирования письма")
		return
	}
	err = smtp.Instance.SendRaw(i.fromEmail, recipients, bytes.NewReader(raw))
	if err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления")
		return
	}
	logger.WithField("recipients", len(recipients)).Info("отправлено уведомление о смене статуса")
}

func (i impl) resolveRecipients(event models.StatusEvent, rule audience) []string {
	logger := log.
		WithField("entity", event.Entity).
		WithField("rec_id", event.EntityID)
	seen := map[string]bool{}
	result := []string{}
	add := func(email string) {
		if email == "" || seen[email] {
			return
		}
		seen[email] = true
		result = append(result, email)
	}
	var employee *dbmodels.Employee
	if event.EmployeeID != "" {
		rec, err := i.employeeStore.GetByID(event.EmployeeID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения сотрудника для уведомления")
		}
		employee = rec
	}
	if rule.Employee && employee != nil {
		add(employee.Email)
	}
	if rule.Manager && employee != nil {
		if employee.Manager != nil {
			add(employee.Manager.Email)
		}
		if employee.SecondManager != nil {
			add(employee.SecondManager.Email)
		}
	}
	if rule.Hr {
		hrList, err := i.employeeStore.ListHr()
		if err != nil {
			logger.WithError(err).Error("ошибка получения списка HR для уведомления")
		}
		for _, rec := range hrList {
			add(rec.Email)
		}
	}
	if rule.Finance {
		finList, err := i.employeeStore.ListFinance()
		if err != nil {
			logger.WithError(err).Error("ошибка получения списка финансового отдела для уведомления")
		}
		for _, rec := range finList {
			add(rec.Email)
		}
	}
	return result
}

func buildMessage(from string, to []string, event models.StatusEvent) ([]byte, error) {
	entityName := entityHumanName[event.Entity]
	oldStatus := statusHuman(event.Entity, event.OldStatus)
	newStatus := statusHuman(event.Entity, event.NewStatus)
	subject := fmt.Sprintf("ERP - %s: %s", entityName, newStatus)
	body := fmt.Sprintf("%s: смена статуса с %q на %q.", entityName, oldStatus, newStatus)
	htmlBody := fmt.Sprintf("<p>%s: смена статуса с <b>%s</b> на <b>%s</b>.</p>", entityName, oldStatus, newStatus)
	if event.Comment != "" {
		body += fmt.Sprintf("\nКомментарий: %s", event.Comment)
		htmlBody += fmt.Sprintf("<p>Комментарий: %s</p>", event.Comment)
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.AddAlternative("text/html", htmlBody)
	buf := new(bytes.Buffer)
	_, err := msg.WriteTo(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
