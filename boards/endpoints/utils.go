package endpoints

import (
	"github.com/dowlandaiello/notedly/errors"
)

// Variables and functions for specific errors
var (
	errInvalidRequest = errors.New("invalid request")
)
