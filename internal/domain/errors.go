package domain

import "errors"

// Domain errors.
var (
	ErrInvalidKey        = errors.New("key is empty after normalization")
	ErrNoLocales         = errors.New("no locales configured")
	ErrNothingProcessed  = errors.New("no locale/namespace pair could be processed")
	ErrWarningsPresent   = errors.New("run produced warnings")
	ErrUpdatesPresent    = errors.New("run updated existing values")
	ErrUnknownLocale     = errors.New("locale is not part of the configured locales")
	ErrUnknownLineEnding = errors.New("unknown line ending")
)
