// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appauth "github.com/bridgelms/bridgelms/internal/app/auth"
	"github.com/bridgelms/bridgelms/internal/app/models/dto"
	"github.com/bridgelms/bridgelms/internal/middleware"
)

// parseIDParam reads a numeric path parameter. A non-numeric value aborts
// the request with a validation error.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid identifier")
		errorDetail = errorDetail.WithField(name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive integer")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// callerOrAbort rebuilds the authenticated caller. Failure means the auth
// middleware did not run, which is a server wiring problem.
func callerOrAbort(ctx *gin.Context) (appauth.Caller, bool) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return appauth.Caller{}, false
	}
	return caller, true
}
