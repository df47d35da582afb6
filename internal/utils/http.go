// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// JSON content type. If marshaling fails it responds with 500 Internal
// Server Error and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, report, http.StatusOK)
//	WriteJSON(w, errorResponse{Error: "server not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
