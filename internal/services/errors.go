package services

// NotFoundError indicates an empty catalog list or a subscriber lookup that
// matched nothing. Handlers map it to a 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}
