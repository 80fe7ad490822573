package service

// ValidationError indicates that a request payload failed validation and the
// handler should answer 400 with the message as is.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

func requiredFieldError(field string) error {
	return ValidationError{Message: "Field '" + field + "' is required"}
}
