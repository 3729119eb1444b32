package service

// NotFoundError marks a lookup miss. Key is the message key handed to the
// translator before the error reaches the client.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string { return e.Key }

// NotFound creates a NotFoundError for a message key
func NotFound(key string) *NotFoundError {
	return &NotFoundError{Key: key}
}

// InvalidArgumentError marks a request that fails validation before any
// computation happens
type InvalidArgumentError struct {
	Key string
}

func (e *InvalidArgumentError) Error() string { return e.Key }

// InvalidArgument creates an InvalidArgumentError for a message key
func InvalidArgument(key string) *InvalidArgumentError {
	return &InvalidArgumentError{Key: key}
}
