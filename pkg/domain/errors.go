package domain

import "errors"

// ErrSourceUnavailable is returned when a named line source cannot be opened.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrInvalidSymbol is returned when a definition names a symbol that is not exactly one byte.
var ErrInvalidSymbol = errors.New("invalid symbol")

// ErrInvalidDefinition is returned when an automaton definition cannot be decoded.
var ErrInvalidDefinition = errors.New("invalid definition")

// ErrInputTooLarge is returned when an input line exceeds the adapter limit.
var ErrInputTooLarge = errors.New("input too large")
