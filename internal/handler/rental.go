// This file defines handlers for the rental place endpoints.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencydesk/backoffice-api/internal/repository"
)

var (
	placeKey      = []string{"place_id", "name", "address", "type", "capacity"}
	placeUsageKey = []string{"name", "address", "start_time", "end_time"}
)

// RentalHandler serves the rental place read endpoints.
type RentalHandler struct {
	Repo *repository.RentalRepo // Repo provides the rental queries
}

// NewRentalHandler constructs a RentalHandler and panics if the repository
// is nil.
func NewRentalHandler(repo *repository.RentalRepo) *RentalHandler {
	if repo == nil {
		panic("nil repository passed to NewRentalHandler")
	}
	return &RentalHandler{Repo: repo}
}

// Available handles GET /v1/rental/available. start_dt and end_dt are
// required datetimes bounding the desired rental window.
func (h *RentalHandler) Available(c echo.Context) error {
	start, err := parseDateTime(c, "start_dt")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_dt: " + err.Error()})
	}
	end, err := parseDateTime(c, "end_dt")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_dt: " + err.Error()})
	}
	rows, err := h.Repo.AvailablePlaces(c.Request().Context(), start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(placeKey, rows))
}

// InUseOnDate handles GET /v1/rental/in-use-on-date. target_date is the
// required YYYY-MM-DD day to check.
func (h *RentalHandler) InUseOnDate(c echo.Context) error {
	target, err := parseDate(c, "target_date")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "target_date: " + err.Error()})
	}
	rows, err := h.Repo.InUseOn(c.Request().Context(), target)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(placeUsageKey, rows))
}
