// Package api maps tenantforum errors to HTTP-style JSON responses for the
// host web application.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coregx/tenantforum"
)

// Messages sent for failed lookups.
const (
	MessageNoSuchTopic    = "No such topic."
	MessageNoSuchResponse = "No such response."
	MessageInvalid        = "Invalid data."
	MessageInternal       = "Internal server error."
)

// JSONMessage is an error response body with its HTTP status.
type JSONMessage struct {
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Status  int         `json:"-"`
}

// ErrorResponse translates err into the response the host should send.
//
// Topic and response lookup failures become 404s carrying only the message,
// validation failures 400s with the field errors attached, anything else a 500 that does not leak the
// underlying error.
func ErrorResponse(err error) JSONMessage {
	switch {
	case errors.Is(err, tenantforum.ErrNoSuchTopic):
		return JSONMessage{Message: MessageNoSuchTopic, Status: http.StatusNotFound}
	case errors.Is(err, tenantforum.ErrNoSuchResponse):
		return JSONMessage{Message: MessageNoSuchResponse, Status: http.StatusNotFound}
	case tenantforum.IsValidation(err):
		msg := JSONMessage{Message: MessageInvalid, Code: tenantforum.ErrCodeValidation, Status: http.StatusBadRequest}
		var forumErr *tenantforum.Error
		if errors.As(err, &forumErr) && forumErr.Err != nil {
			msg.Errors = forumErr.Err
		}
		return msg
	default:
		return JSONMessage{Message: MessageInternal, Status: http.StatusInternalServerError}
	}
}

// WriteError writes the response for err.
func WriteError(w http.ResponseWriter, err error) {
	msg := ErrorResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(msg.Status)
	_ = json.NewEncoder(w).Encode(msg)
}
