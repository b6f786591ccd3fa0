package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrRateNotUnique    = errors.New("there already is a rate for this currency")
	ErrSettingNotUnique = errors.New("there already is a setting with this key")
)
