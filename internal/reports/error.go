package reports

import "errors"

var ErrInvalidYear = errors.New("year is out of range")
