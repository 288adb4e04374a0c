// Package controller holds the HTTP glue shared by the per-area
// controllers: translating pipeline failure kinds into response codes.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvtien/studybuddy/internal/apperr"
	"github.com/mvtien/studybuddy/internal/dto"
)

// WriteError maps a service error onto an HTTP status: bad input is the
// caller's fault, an unavailable oracle is a bad gateway, everything
// else is internal. The error text rides along in Details.
func WriteError(ctx *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrOracleUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, apperr.ErrPersistence):
		status = http.StatusInternalServerError
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}
