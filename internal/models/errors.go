package models

import (
	"errors"
)

var (
	ErrNoRecord              = errors.New("models: no matching record found")
	ErrInvalidCredentials    = errors.New("models: invalid credentials")
	ErrInvalidPassword       = errors.New("models: invalid password")
	ErrDuplicateEmail        = errors.New("models: duplicate email")
	ErrUserNotFound          = errors.New("models: user not found")
	ErrDebtNotFound          = errors.New("models: debt not found")
	ErrScheduleEntryNotFound = errors.New("models: schedule entry not found")
	ErrDuplicateDocumento    = errors.New("models: duplicate document number")
	ErrDebtAlreadyPaid       = errors.New("models: debt already paid")
	ErrEntryAlreadyPaid      = errors.New("models: schedule entry already paid")
	ErrDebtForbidden         = errors.New("models: debt belongs to another user")
	ErrInvalidScheduleParams = errors.New("models: invalid schedule parameters")
	ErrInvalidPeriod         = errors.New("models: invalid month or year")
	ErrInvalidEstado         = errors.New("models: invalid estado")
)
