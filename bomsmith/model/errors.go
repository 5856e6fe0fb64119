package model

import (
	"errors"
	"fmt"
)

var (
	ErrRequired          = errors.New("required value is missing")
	ErrInvalidEnum       = errors.New("value is not one of the allowed tokens")
	ErrLicenseChoice     = errors.New("license choice must hold either a license or an expression")
	ErrLicenseIdentifier = errors.New("license must have either an id or a name")
	ErrDuplicateBOMRef   = errors.New("bom-ref is used more than once")
	ErrUnresolvedRef     = errors.New("ref does not match any component or service")
)

// ValidationError is a single finding of Bom.Validate, located by a field path such as
// "components[0].licenses[1].license.id".
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
