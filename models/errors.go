package models

// Error taxonomy returned by services and the content core. The helper maps
// each type to a fixed HTTP status code; handlers never build status codes
// themselves.

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	if e.Message == "" {
		return "not found"
	}
	return e.Message
}

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	if e.Message == "" {
		return "conflict"
	}
	return e.Message
}

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	if e.Message == "" {
		return "forbidden"
	}
	return e.Message
}

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	if e.Message == "" {
		return "internal server error"
	}
	return e.Message
}

func NotFound(msg string) error       { return ErrorNotFound{Message: msg} }
func Conflict(msg string) error       { return ErrorConflict{Message: msg} }
func Forbidden(msg string) error      { return ErrorForbidden{Message: msg} }
func Validation(msg string) error     { return ErrorValidation{Message: msg} }
func InternalServer(msg string) error { return ErrorInternalServer{Message: msg} }
