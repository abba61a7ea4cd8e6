// This file defines handlers for the listing and aggregation endpoints:
// the searchable assignment overview, contract overlap, expense summary,
// and the performer/partner lookups.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencydesk/backoffice-api/internal/repository"
)

var (
	assignmentKey     = []string{"personnel_name", "personnel_type", "production_title", "role_title"}
	contractKey       = []string{"personnel_id", "name", "personnel_type", "contract_hire_date", "contract_expiration_date"}
	expenseSummaryKey = []string{"production_title", "total_expense"}
	performerKey      = []string{"performer_name", "performance_type", "agency"}
	partnerKey        = []string{"partner_name", "service_type", "personnel_name"}
)

// StatsHandler serves the cross-entity listing and aggregation endpoints.
type StatsHandler struct {
	Repo *repository.StatsRepo // Repo provides the listing and aggregation queries
}

// NewStatsHandler constructs a StatsHandler and panics if the repository is
// nil.
func NewStatsHandler(repo *repository.StatsRepo) *StatsHandler {
	if repo == nil {
		panic("nil repository passed to NewStatsHandler")
	}
	return &StatsHandler{Repo: repo}
}

// Assignments handles GET /v1/stats/personnel/assignments. name_search and
// title_search are optional substring filters; when both are present their
// matches are unioned, not intersected.
func (h *StatsHandler) Assignments(c echo.Context) error {
	nameSearch := c.QueryParam("name_search")
	titleSearch := c.QueryParam("title_search")
	rows, err := h.Repo.ListAssignments(c.Request().Context(), nameSearch, titleSearch)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(assignmentKey, rows))
}

// Contracts handles GET /v1/stats/personnel/contracts. start_date and
// end_date are required dates; name_search is optional.
func (h *StatsHandler) Contracts(c echo.Context) error {
	start, err := parseDate(c, "start_date")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date: " + err.Error()})
	}
	end, err := parseDate(c, "end_date")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date: " + err.Error()})
	}
	rows, err := h.Repo.ContractsOverlapping(c.Request().Context(), start, end, c.QueryParam("name_search"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(contractKey, rows))
}

// ExpenseSummary handles GET /v1/stats/production/expenses/summary.
func (h *StatsHandler) ExpenseSummary(c echo.Context) error {
	rows, err := h.Repo.ExpenseSummary(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(expenseSummaryKey, rows))
}

// Performers handles GET /v1/stats/performers.
func (h *StatsHandler) Performers(c echo.Context) error {
	rows, err := h.Repo.ListPerformers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(performerKey, rows))
}

// PartnersForPerformer handles GET /v1/stats/partners/for-performer.
// performer_name is the required exact name; an unknown name or a name
// without a performer sub-record yields 404 rather than an empty list.
func (h *StatsHandler) PartnersForPerformer(c echo.Context) error {
	name := c.QueryParam("performer_name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "performer_name is required"})
	}
	rows, err := h.Repo.PartnersForPerformer(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrPerformerNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "performer '" + name + "' not found or is not listed as a performer"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(partnerKey, rows))
}
