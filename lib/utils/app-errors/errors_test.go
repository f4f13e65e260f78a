package apperrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAppErrors(t *testing.T) {
	t.Run(`kind is preserved through wrapping`, func(t *testing.T) {
		err := NewValidation("некорректные данные")
		wrapped := errors.Wrap(err, "контекст")
		require.Equal(t, KindValidation, GetKind(wrapped))
	})

	t.Run(`plain error maps to internal kind`, func(t *testing.T) {
		err := errors.New("что-то пошло не так")
		require.Equal(t, KindInternal, GetKind(err))
		require.Equal(t, false, IsBusiness(err))
	})

	t.Run(`business kinds check`, func(t *testing.T) {
		require.Equal(t, true, IsBusiness(NewNotFound("не найдено")))
		require.Equal(t, true, IsBusiness(NewPermissionDenied("нет доступа")))
		require.Equal(t, true, IsBusiness(New(KindEmptyPlan, "пустой план")))
		require.Equal(t, true, IsBusiness(NewInvalidTransition("Черновик", "Отправлена на согласование")))
	})

	t.Run(`invalid transition message names both statuses`, func(t *testing.T) {
		err := NewInvalidTransition("Черновик", "Отправлена на согласование")
		require.Equal(t, KindInvalidTransition, GetKind(err))
		require.Contains(t, err.Error(), "Черновик")
		require.Contains(t, err.Error(), "Отправлена на согласование")
	})
}
