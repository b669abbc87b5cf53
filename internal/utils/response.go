package utils

import (
	"encoding/json"
	"net/http"
)

// MessageBody is the {"message": ...} envelope used by the auth and write endpoints.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the {"error": ...} envelope used by lookup and validation failures.
type ErrorBody struct {
	Error string `json:"error"`
}

// WriteJSON sends payload as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func Message(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, MessageBody{Message: msg})
}

func Error(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorBody{Error: msg})
}
