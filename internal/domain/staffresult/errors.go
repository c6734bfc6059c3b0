package staffresult

import "errors"

var ErrResultNotFound = errors.New("staff daily result not found")
