package helpers

import (
	"context"
	"time"
)

const dateLayout = "02.01.2006"

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// FormatDate дата в человекочитаемом виде для документов и заметок
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}
