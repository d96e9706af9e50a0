package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks a parsed configuration
func Validate(cfg *Config) error {
	if err := getValidator().Struct(cfg); err != nil {
		return fmt.Errorf(ErrMsgInvalidConfig, err)
	}
	return nil
}
