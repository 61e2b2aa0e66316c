package domain

import "errors"

var (
	ErrPackNotFound = errors.New("pack not found")
	ErrNoPacks      = errors.New("no packs found")
)
