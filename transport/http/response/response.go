package response

import (
	"encoding/json"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"net/http"
)

type Message struct {
	Message string `json:"message"`
}

// Error is the body of every failed request. Detail holds either a plain
// message or the list of rejected fields.
type Error struct {
	Detail any `json:"detail"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)
	}

	if details := failure.GetDetails(err); len(details) > 0 {
		response(writer, code, Error{Detail: details})

		return
	}

	response(writer, code, Error{Detail: err.Error()})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
