package model

import "time"

// MutationResponse is returned by add, update and delete requests
type MutationResponse struct {
	Successful bool       `json:"successful"`
	Value      *RegionDTO `json:"value,omitempty"`
}

// ErrorResponse is the uniform error body. Exactly one of Message or Errors is set.
type ErrorResponse struct {
	Timestamp      time.Time      `json:"timestamp"`
	Status         int            `json:"status"`
	Message        string         `json:"message,omitempty"`
	Errors         []string       `json:"errors,omitempty"`
	ViolatedFields map[string]any `json:"violated-fields,omitempty"`
}
