package transport

import (
	"encoding/json"

	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
)

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope with optional metadata.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// TaskListResponse wraps the ordered task collection.
type TaskListResponse struct {
	Tasks []domain.Task `json:"tasks"`
}

// TaskCreatedResponse carries the store-assigned identifier.
type TaskCreatedResponse struct {
	ID int64 `json:"id"`
}

// SeedResponse reports how many seed descriptors were actually inserted.
type SeedResponse struct {
	Inserted int `json:"inserted"`
}
