package config

import "errors"

var (
	// ErrUnknownMode indicates a mode name outside next/previous and their aliases.
	ErrUnknownMode = errors.New("config: unknown mode")
	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("config: workers must be ≥ 1")
	// ErrUnknownAttribute indicates an attribute or block the file format does not define.
	ErrUnknownAttribute = errors.New("config: unknown attribute")
	// ErrAttributeType indicates an attribute value of the wrong type.
	ErrAttributeType = errors.New("config: wrong attribute type")
	// ErrSyntax indicates the file is not valid HCL.
	ErrSyntax = errors.New("config: invalid HCL")
)
