package controller

import "errors"

var (
	ErrNoBody        = errors.New("controller: body is required")
	ErrNoCamera      = errors.New("controller: camera is required")
	ErrInvalidConfig = errors.New("controller: invalid config")
)
