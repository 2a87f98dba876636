// Package iocli абстрагирует терминальный ввод-вывод команд,
// чтобы обработчики можно было тестировать без настоящего stdin.
package iocli

//go:generate moq -out io_mock.go . IO

// IO — терминальный ввод-вывод командных обработчиков.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
