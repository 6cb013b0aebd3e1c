package app

import "errors"

var (
	ErrMissingDependency = errors.New("app: missing dependency")
	ErrLoadingToken      = errors.New("app: loading previous sync token")
)
