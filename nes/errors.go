package nes

import "github.com/pkg/errors"

// ErrInvalidRom is returned when an iNES image fails to parse: a bad magic
// number, a truncated header, or a payload shorter than the header claims.
var ErrInvalidRom = errors.New("invalid rom image")

// ErrUnsupportedMapper is returned when a ROM names a mapper ID with no
// registered implementation.
var ErrUnsupportedMapper = errors.New("unsupported mapper")
