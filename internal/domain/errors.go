package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
)
