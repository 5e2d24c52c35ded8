package io

import (
	"errors"

	"github.com/Thegaram/advent-of-code-2019/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))
	ErrTapeValue   = errors.New(f("tape value invalid"))
	ErrTapeOutput  = errors.New(f("tape has no output"))
)
