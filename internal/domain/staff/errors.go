package staff

import "errors"

var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrStaffIDTaken  = errors.New("staff id is already in use")
)
