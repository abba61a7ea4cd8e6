package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/backoffice-api/internal/repository"
)

// newTestContext builds an echo context for a GET request with the given
// raw query string.
func newTestContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.RawQuery = rawQuery
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParseDateTimeLayouts(t *testing.T) {
	want := time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC)
	for _, raw := range []string{
		"2024-02-10T09:30:00",
		"2024-02-10T09:30:00Z",
		"2024-02-10 09:30:00",
	} {
		c := newTestContext(t, "start_dt="+raw)
		got, err := parseDateTime(c, "start_dt")
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), raw)
	}

	// A bare date parses to midnight.
	c := newTestContext(t, "start_dt=2024-02-10")
	got, err := parseDateTime(c, "start_dt")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateTimeRejectsMissingAndMalformed(t *testing.T) {
	_, err := parseDateTime(newTestContext(t, ""), "start_dt")
	assert.ErrorIs(t, err, errMissingParam)

	_, err = parseDateTime(newTestContext(t, "start_dt=notadate"), "start_dt")
	assert.Error(t, err)
}

func TestParseLimit(t *testing.T) {
	n, err := parseLimit(newTestContext(t, ""), "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n, "absent parameter falls back to the default")

	n, err = parseLimit(newTestContext(t, "limit=25"), "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	n, err = parseLimit(newTestContext(t, "limit=0"), "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "limits are floored at 1")

	_, err = parseLimit(newTestContext(t, "limit=ten"), "limit", 10)
	assert.Error(t, err)
}

func TestTypeList(t *testing.T) {
	def := []string{"Actor", "Crew"}

	got := typeList(newTestContext(t, ""), "personnel_types", def)
	assert.Equal(t, def, got, "no occurrences falls back to the default set")

	got = typeList(newTestContext(t, "personnel_types=Director&personnel_types=Makeup"), "personnel_types", def)
	assert.Equal(t, []string{"Director", "Makeup"}, got)
}

func TestHandlersRejectMissingRequiredParams(t *testing.T) {
	// The repositories are never reached on these paths, so a nil DB handle
	// is safe.
	p := NewPersonnelHandler(repository.NewPersonnelRepo(nil))
	s := NewStatsHandler(repository.NewStatsRepo(nil))
	r := NewRentalHandler(repository.NewRentalRepo(nil))

	cases := []struct {
		name string
		call func(echo.Context) error
	}{
		{"available without window", p.Available},
		{"contracts without range", s.Contracts},
		{"partners without name", s.PartnersForPerformer},
		{"rental available without window", r.Available},
		{"rental in-use without date", r.InUseOnDate},
	}
	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, tc.call(e.NewContext(req, rec)), tc.name)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.name)
	}
}
