// This file defines handlers for the schedule endpoints: activity counts,
// music productions with release info, and the upcoming schedule.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agencydesk/backoffice-api/internal/repository"
)

var (
	activityCountKey   = []string{"taskname", "activity_count"}
	musicProductionKey = []string{"production_title", "performer_name", "plan_release_quarter", "plan_release_year"}
	upcomingKey        = []string{"start_dt", "end_dt", "taskname", "location", "production_title", "personnel_name"}
)

// ScheduleHandler serves the schedule read endpoints.
type ScheduleHandler struct {
	Repo *repository.ScheduleRepo // Repo provides the schedule queries
}

// NewScheduleHandler constructs a ScheduleHandler and panics if the
// repository is nil.
func NewScheduleHandler(repo *repository.ScheduleRepo) *ScheduleHandler {
	if repo == nil {
		panic("nil repository passed to NewScheduleHandler")
	}
	return &ScheduleHandler{Repo: repo}
}

// ActivityCounts handles GET /v1/schedule/activity/counts. start_dt and
// end_dt are required datetimes; only entries fully contained in the window
// are counted.
func (h *ScheduleHandler) ActivityCounts(c echo.Context) error {
	start, err := parseDateTime(c, "start_dt")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_dt: " + err.Error()})
	}
	end, err := parseDateTime(c, "end_dt")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_dt: " + err.Error()})
	}
	rows, err := h.Repo.ActivityCounts(c.Request().Context(), start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(activityCountKey, rows))
}

// MusicProductions handles GET /v1/schedule/production/music. start_date is
// the required lower bound on the production contract hire date.
func (h *ScheduleHandler) MusicProductions(c echo.Context) error {
	start, err := parseDate(c, "start_date")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date: " + err.Error()})
	}
	rows, err := h.Repo.MusicProductions(c.Request().Context(), start)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(musicProductionKey, rows))
}

// Upcoming handles GET /v1/schedule/upcoming. current_datetime is optional
// and defaults to the clock time at request arrival.
func (h *ScheduleHandler) Upcoming(c echo.Context) error {
	from := time.Now()
	if c.QueryParam("current_datetime") != "" {
		t, err := parseDateTime(c, "current_datetime")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "current_datetime: " + err.Error()})
		}
		from = t
	}
	rows, err := h.Repo.Upcoming(c.Request().Context(), from)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, Wrap(upcomingKey, rows))
}
