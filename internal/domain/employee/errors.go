package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidGender    = errors.New("gender must be ชาย/male or หญิง/female")
	ErrInvalidStatus    = errors.New("status must be มีสิทธิ์/eligible or หมดสิทธิ์/ineligible")
	ErrEmptyBulkPayload = errors.New("at least one employee is required")
)
