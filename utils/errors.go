package utils

// CustomError carries an HTTP status code alongside the message so the global
// error middleware can map it straight onto the response.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError helper to build a CustomError with a specific status code
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}
