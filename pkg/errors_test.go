package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb unavailable")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, "INTERNAL_ERROR: An internal error occurred: dynamodb unavailable", appErr.Error())
	assert.Equal(t, HTTPError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}, appErr.ToHTTPError())

	simple := NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	assert.Nil(t, simple.Unwrap())
	assert.Equal(t, http.StatusNotFound, simple.HTTPStatus)

	custom := simple.WithMessage("Estimate est-1 not found")
	assert.Equal(t, "Estimate est-1 not found", custom.Message)
	assert.Equal(t, "Estimate not found", simple.Message)
}
