package apperrors

import (
	"github.com/pkg/errors"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidTransition
	KindValidation
	KindNotFound
	KindPermissionDenied
	KindEmptyPlan
)

type appError struct {
	kind Kind
	err  error
}

func (e appError) Error() string {
	return e.err.Error()
}

func (e appError) Unwrap() error {
	return e.err
}

func New(kind Kind, msg string) error {
	return appError{kind: kind, err: errors.New(msg)}
}

func Errorf(kind Kind, format string, args ...interface{}) error {
	return appError{kind: kind, err: errors.Errorf(format, args...)}
}

// NewInvalidTransition текст ошибки называет текущий и требуемый статус
func NewInvalidTransition(current, required string) error {
	return Errorf(KindInvalidTransition, "операция недопустима в текущем статусе: %v, требуется статус: %v", current, required)
}

func NewValidation(msg string) error {
	return New(KindValidation, msg)
}

func NewNotFound(msg string) error {
	return New(KindNotFound, msg)
}

func NewPermissionDenied(msg string) error {
	return New(KindPermissionDenied, msg)
}

func GetKind(err error) Kind {
	var appErr appError
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

func IsBusiness(err error) bool {
	return GetKind(err) != KindInternal
}
