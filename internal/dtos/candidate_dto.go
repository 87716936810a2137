// Package dtos defines the request payloads accepted by the API, with gin
// binding tags for validation.
package dtos

// MoveStageRequest moves a candidate to a new pipeline stage.
type MoveStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}
