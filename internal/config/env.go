// internal/config/env.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv загружает переопределения из переменных окружения.
// Поля без выставленной переменной не трогаются.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
