package handlers

import (
	"errors"
	"net/http"

	"claims_xpto/internal/domain/costing"
	"claims_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// unknownProcessTypeError reports the offending code to the caller.
func unknownProcessTypeError(err error) *pkg.AppError {
	appErr := pkg.NewDomainError("UNKNOWN_PROCESS_TYPE", "Unknown process type", err, http.StatusBadRequest)
	var upt *costing.UnknownProcessTypeError
	if errors.As(err, &upt) {
		return appErr.WithMessage(upt.Error())
	}
	return appErr
}
