package initchecker

import "fmt"

// CheckInit контроль порядка инициализации сервисов при старте
func CheckInit(name string, value any) {
	if value == nil {
		panic(fmt.Sprintf("сервис %s не инициализирован", name))
	}
}
