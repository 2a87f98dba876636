// Package validation содержит проверки пользовательского ввода,
// общие для клиентских команд.
package validation

import (
	"fmt"
	"regexp"
)

// UsernamePattern определяет допустимый формат username.
// Username служит первичным ключом и уходит на сервер как JSON-ключ,
// поэтому набор символов жёстко ограничен.
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32

	// MaxModelLen максимальная длина модели машины
	MaxModelLen = 64
)

// ValidateUsername проверяет, что username соответствует требованиям.
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), нижнее
// подчеркивание (_). Длина: 3-32 символа.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidateCarModel проверяет модель машины. Пароль и цена намеренно
// не проверяются глубже: пароль непрозрачен для системы, цену
// разбирает вызывающая сторона.
func ValidateCarModel(model string) error {
	if model == "" {
		return fmt.Errorf("car model cannot be empty")
	}

	if len(model) > MaxModelLen {
		return fmt.Errorf("car model must not exceed %d characters", MaxModelLen)
	}

	return nil
}
