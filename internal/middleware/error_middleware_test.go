package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", apperrors.NewResourceNotFoundError("Course not found"), http.StatusNotFound},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"wrapped forbidden", apperrors.NewForbiddenError("Not enrolled in this course"), http.StatusForbidden},
		{"not enrolled", apperrors.NewCustomError(apperrors.ErrNotEnrolled, "Not enrolled in this course"), http.StatusForbidden},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusConflict},
		{"already checked in", apperrors.ErrAlreadyCheckedIn, http.StatusConflict},
		{"course full", apperrors.ErrCourseFull, http.StatusBadRequest},
		{"bad request", apperrors.NewBadRequestError("Invalid resource type or missing file/URL"), http.StatusBadRequest},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"admin registration", apperrors.ErrAdminRegistration, http.StatusBadRequest},
		{"unknown error", errors.New("pg went away"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandleAPIErrorSurfacesWrappedMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, apperrors.NewForbiddenError("Access denied to this course"))
	assert.Contains(t, w.Body.String(), "Access denied to this course")
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Contains(t, w.Body.String(), "Internal server error")
}
