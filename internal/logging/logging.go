package logging

//go:generate mockgen -destination=mocks/logger_mock.go -package=mocks -mock_names Logger=LoggerMock . Logger

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// DebugAssign отладочное логирование присваивания цепочек: сколько узлов
	// приёмника переиспользовано, сколько создано и сколько освобождено.
	DebugAssign(reused, allocated, released int)
	// DebugClear отладочное логирование очистки цепочки из данного числа узлов.
	DebugClear(released int)
	// WarningDeleteFromEmpty предупреждение об удалении первого элемента пустого списка.
	WarningDeleteFromEmpty()
}

// Nop возвращает логгер ничего не делающий.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) DebugAssign(reused, allocated, released int) {}

func (nopLogger) DebugClear(released int) {}

func (nopLogger) WarningDeleteFromEmpty() {}
