package errors

// Exception is an error that already knows the HTTP status it should
// surface as. Sentinels built from it cross the service boundary and
// are mapped onto responses by the handler; the API client rebuilds
// them on the other side from the response status and message.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}
