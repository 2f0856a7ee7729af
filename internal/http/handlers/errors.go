package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/domain"
	"navetteclub/internal/http/middleware"
)

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"details":    details,
		"request_id": middleware.GetRequestID(c),
		"message":    message,
	})
}

// RespondDomainError maps domain errors to HTTP responses. Field-level
// validation failures return the full field map so forms can highlight every
// offending input at once.
func RespondDomainError(c *gin.Context, err error) {
	var fe domain.FieldErrors
	switch {
	case errors.As(err, &fe):
		respondError(c, http.StatusBadRequest, "validation_error", "certains champs sont invalides", fe.Fields)
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "une erreur interne est survenue", nil)
	}
}
