// ABOUTME: JSON response helpers for the development gateway
// ABOUTME: Errors carry a code and a human readable message
package devserver

import (
	"encoding/json"
	"net/http"
)

const (
	codeBadRequest   = "ERROR_CODE_BAD_REQUEST"
	codeUnauthorized = "ERROR_CODE_UNAUTHORIZED"
	codeAccessDenied = "ERROR_CODE_ACCESS_DENIED"
	codeNotFound     = "ERROR_CODE_NOT_FOUND"
	codeInputError   = "ERROR_CODE_INPUT_ERROR"
	codeInternal     = "ERROR_FATAL"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// decodeObject reads a JSON object body, keeping numbers exact.
func decodeObject(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}
