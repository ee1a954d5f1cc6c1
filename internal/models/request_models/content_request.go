package request_models

import (
	"encoding/json"

	"pawtrip/internal/models/response_models"
)

// ContentRequest describes one activity to illustrate or narrate. Pet is
// optional; the stored profile is used when it is absent.
type ContentRequest struct {
	Activity response_models.Activity `json:"activity"`
	Pet      *PetInfo                 `json:"pet,omitempty"`
	CityName string                   `json:"cityName"`
	Locale   string                   `json:"locale"`
}

// ParsePlanRequest carries an untrusted AI trip-plan payload: either the
// plan object itself or a string containing it.
type ParsePlanRequest struct {
	Payload json.RawMessage `json:"payload" binding:"required"`
}
