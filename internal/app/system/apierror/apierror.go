// Package apierror writes the JSON bodies returned by the /api endpoints.
//
// Success:
//
//	{ "ok": true }
//
// Failure:
//
//	{ "error": { "code": "VALIDATION", "message": "Valid email required." } }
package apierror

import (
	"encoding/json"
	"net/http"
)

// Code classifies a failed API call.
type Code string

const (
	// Validation means the client sent missing or malformed data (400).
	Validation Code = "VALIDATION"
	// Config means the server lacks required configuration (503).
	Config Code = "CONFIG"
	// SMTPError means the mail relay could not deliver the message (502).
	SMTPError Code = "SMTP_ERROR"
)

// Status returns the HTTP status used for code.
func (c Code) Status() int {
	switch c {
	case Validation:
		return http.StatusBadRequest
	case Config:
		return http.StatusServiceUnavailable
	case SMTPError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type okBody struct {
	OK bool `json:"ok"`
}

// Detail is the inner error object.
type Detail struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Body is the envelope for error responses.
type Body struct {
	Error Detail `json:"error"`
}

// WriteOK writes 200 {"ok": true}.
func WriteOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, okBody{OK: true})
}

// Write writes an error envelope with the status that belongs to code.
func Write(w http.ResponseWriter, code Code, message string) {
	writeJSON(w, code.Status(), Body{Error: Detail{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
