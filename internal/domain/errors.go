package domain

import "errors"

var (
	ErrValidation          = errors.New("invalid request")
	ErrConfiguration       = errors.New("invalid provider configuration")
	ErrUnsupportedScanType = errors.New("unsupported document type")
	ErrUnsupportedContent  = errors.New("unsupported content type")
	ErrEmptyDocument       = errors.New("document is empty")
)
