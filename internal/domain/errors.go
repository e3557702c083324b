package domain

import "errors"

var (
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrPackNotFound       = errors.New("pack not found")
	ErrIndividualNotFound = errors.New("individual option not found")
	ErrDeliveryFailed     = errors.New("direct message delivery failed")
	ErrSecretNotFound     = errors.New("secret not found")
)
