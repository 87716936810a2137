// Package handlers contains the gin HTTP handlers for the dashboard API.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/sushant-97/ats-system/internal/store"
)

// bindError writes a 400 with per-field human-readable messages when the
// failure came from validation, or a generic parse error otherwise.
// Submissions with field errors are rejected the way the forms block them.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldName(fe)] = fieldMessage(fe)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
}

func fieldName(fe validator.FieldError) string {
	// Field() is the Go field name; the API speaks lowerCamel.
	name := fe.Field()
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("Select at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "url":
		return "Please enter a valid URL"
	case "email":
		return "Please enter a valid email"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return "Invalid date/time format"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	default:
		return "Invalid value"
	}
}

// respondError maps store errors onto HTTP statuses: missing mutation
// targets become 404s rather than the silent no-ops of the original UI.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrCandidateNotFound),
		errors.Is(err, store.ErrJobNotFound),
		errors.Is(err, store.ErrApplicationNotFound),
		errors.Is(err, store.ErrInterviewNotFound),
		errors.Is(err, store.ErrDocumentNotFound),
		errors.Is(err, store.ErrUploadNotFound),
		errors.Is(err, store.ErrListingNotFound),
		errors.Is(err, store.ErrListingNotSaved):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
