package checkin

import "errors"

// ErrEmptyForm is returned when an opener reports success without a form
var ErrEmptyForm = errors.New("checkin: opener returned no form")
