package providers

import (
	"fmt"
	"nellis/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid configuration: %s", v.Errors.One())
	}
	if cv.conf.Cache.Enabled && cv.conf.Cache.TTL < 0 {
		return fmt.Errorf("invalid configuration: cache ttl must not be negative")
	}
	return nil
}
