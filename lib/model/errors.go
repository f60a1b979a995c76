package model

import "github.com/pkg/errors"

var (
	ErrInvalidColorFormat   = errors.New("invalid color format")
	ErrInvalidMaterialKind  = errors.New("invalid material kind")
	ErrInvalidRotationSpeed = errors.New("invalid rotation speed")
	ErrInvalidPartCategory  = errors.New("invalid part category")
	ErrDesignNotFound       = errors.New("design not found")
)
