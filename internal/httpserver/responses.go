package httpserver

import (
	"errors"
	"net/http"

	"catring/internal/domain"
	customersvc "catring/internal/service/customer"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP status codes. Errors without a
// known sentinel are treated as rejected input.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrAddressRequired):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, customersvc.ErrInvalidCredentials), errors.Is(err, customersvc.ErrInvalidToken):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
