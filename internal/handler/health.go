package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root answers the bare "/" path with a short status message so that a
// browser pointed at the service sees something other than a 404.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Backend is running"})
}
