package resolver

import "errors"

var (
	ErrEmptyKind      = errors.New("mapping kind is empty")
	ErrEmptyView      = errors.New("mapping view is empty")
	ErrNoMappingsFile = errors.New("mappings file is not configured")
)
