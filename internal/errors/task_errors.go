package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrTaskIDRequired = &Exception{
	Message:    "task id is required",
	StatusCode: http.StatusBadRequest,
}

var ErrTitleRequired = &Exception{
	Message:    "title is required",
	StatusCode: http.StatusBadRequest,
}

var ErrEmptyUpdate = &Exception{
	Message:    "update payload has no recognized fields",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidJSON = &Exception{
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidStatus = &Exception{
	Message:    "status must be one of PENDING, IN_PROGRESS, COMPLETED, CANCELLED",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidPriority = &Exception{
	Message:    "priority must be one of LOW, MEDIUM, HIGH",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidDueDate = &Exception{
	Message:    "dueDate must be an RFC 3339 date-time string",
	StatusCode: http.StatusBadRequest,
}
