package main

import (
	"errors"
	"net/http"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/repository"

	"github.com/labstack/echo/v4"
)

type pageInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func respond(c echo.Context, status int, data interface{}, message string) error {
	body := echo.Map{"success": true}
	if data != nil {
		body["data"] = data
	}
	if message != "" {
		body["message"] = message
	}
	return c.JSON(status, body)
}

func respondList(c echo.Context, data interface{}, p pageInfo) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"data":       data,
		"pagination": p,
	})
}

// writeError is the single boundary translator from error kind to transport
// status: validation 400, auth 401 with code, storage 500 opaque, unknown 500.
func writeError(c echo.Context, err error) error {
	var ve *auth.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Validation error",
			"details": ve.Message,
		})
	}
	if ae, ok := auth.AsAuthError(err); ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"error":   ae.Message,
			"code":    ae.Code,
		})
	}
	var de *auth.DatabaseError
	if errors.As(err, &de) {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Database error occurred",
		})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"success": false,
		"error":   "Internal server error",
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"success": false,
		"error":   message,
	})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, echo.Map{
		"success": false,
		"error":   message,
	})
}

// notFoundOr answers a missing record with 404 and routes every other error
// kind through writeError.
func notFoundOr(c echo.Context, err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c, message)
	}
	return writeError(c, err)
}
