package models

import "errors"

var ErrMalformed = errors.New("malformed record")
