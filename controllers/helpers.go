package controllers

import (
	"errors"

	"github.com/HandyAndyTobes/lunch-club-orders-app/pkg/resp"
	"github.com/HandyAndyTobes/lunch-club-orders-app/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fail maps service errors onto the JSON envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrEmptyName),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidStock):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDessertUnavailable),
		errors.Is(err, services.ErrDuplicateOption),
		errors.Is(err, services.ErrDuplicateDessert):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}
