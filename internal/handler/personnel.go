// This file defines handlers for the roster endpoints: personnel by type,
// availability inside a time window, and the actor rankings.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencydesk/backoffice-api/internal/repository"
)

// Default parameter values mirror the catalog contracts: the by-type query
// looks at the four core roles, availability checks actors and crew.
var (
	defaultTypeFilter     = []string{"Director", "Costumer", "Makeup", "Actor"}
	defaultAvailableTypes = []string{"Actor", "Crew"}
	personnelSummaryKey   = []string{"personnel_id", "name", "personnel_type"}
	actorTotalProjectsKey = []string{"name", "total_projects"}
	actorTotalJobsKey     = []string{"name", "total_jobs"}
)

// PersonnelHandler serves the personnel-centric read endpoints.
type PersonnelHandler struct {
	Repo *repository.PersonnelRepo // Repo provides the roster queries
}

// NewPersonnelHandler constructs a PersonnelHandler and panics if the
// repository is nil.
func NewPersonnelHandler(repo *repository.PersonnelRepo) *PersonnelHandler {
	if repo == nil {
		panic("nil repository passed to NewPersonnelHandler")
	}
	return &PersonnelHandler{Repo: repo}
}

// ByType handles GET /v1/personnel/by-type. Optional repeated
// personnel_types parameters select the roles (default Director, Costumer,
// Makeup, Actor); limit defaults to 10 with a floor of 1.
func (h *PersonnelHandler) ByType(c echo.Context) error {
	types := typeList(c, "personnel_types", defaultTypeFilter)
	limit, err := parseLimit(c, "limit", 10)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	rows, err := h.Repo.ListByType(c.Request().Context(), types, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(personnelSummaryKey, rows))
}

// Available handles GET /v1/personnel/available. start_dt and end_dt are
// required datetimes; personnel_types defaults to Actor and Crew.
func (h *PersonnelHandler) Available(c echo.Context) error {
	start, err := parseDateTime(c, "start_dt")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_dt: " + err.Error()})
	}
	end, err := parseDateTime(c, "end_dt")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_dt: " + err.Error()})
	}
	types := typeList(c, "personnel_types", defaultAvailableTypes)
	rows, err := h.Repo.FindAvailable(c.Request().Context(), start, end, types)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(personnelSummaryKey, rows))
}

// TopActors handles GET /v1/personnel/actors/top-projects. n defaults to 3.
func (h *PersonnelHandler) TopActors(c echo.Context) error {
	n, err := parseLimit(c, "n", 3)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	rows, err := h.Repo.TopActorsByProjects(c.Request().Context(), n)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(actorTotalProjectsKey, rows))
}

// LeastActors handles GET /v1/personnel/actors/least-jobs. n defaults to 5.
func (h *PersonnelHandler) LeastActors(c echo.Context) error {
	n, err := parseLimit(c, "n", 5)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	rows, err := h.Repo.LeastActorsByJobs(c.Request().Context(), n)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(actorTotalJobsKey, rows))
}
