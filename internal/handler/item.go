// This file defines handlers for the item CRUD subsystem. Items are the
// write-side demo surface: mutations return the record directly (no
// envelope) and publish an item.changed event for the audit consumer.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agencydesk/backoffice-api/internal/model"
	"github.com/agencydesk/backoffice-api/internal/queue"
	"github.com/agencydesk/backoffice-api/internal/repository"
	queue_publisher "github.com/agencydesk/backoffice-api/internal/service"
)

// ItemHandler serves the item CRUD endpoints.
type ItemHandler struct {
	Repo *repository.ItemRepo // Repo provides item persistence
}

// NewItemHandler constructs an ItemHandler and panics if the repository is
// nil.
func NewItemHandler(repo *repository.ItemRepo) *ItemHandler {
	if repo == nil {
		panic("nil repository passed to NewItemHandler")
	}
	return &ItemHandler{Repo: repo}
}

// List handles GET /v1/items and returns all items.
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /v1/items. The body carries name and description;
// name must be non-empty after trimming. Responds 201 with the created
// record including its generated id.
func (h *ItemHandler) Create(c echo.Context) error {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	item := &model.Item{Name: name, Description: body.Description}
	if err := h.Repo.Create(c.Request().Context(), item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create item"})
	}
	publishItemEvent("create", item)
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/items/:id. A missing id yields 404; on success the
// updated record is returned.
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	item, err := h.Repo.UpdateByID(c.Request().Context(), id, name, body.Description)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	publishItemEvent("update", item)
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/items/:id. A missing id yields 404; on success
// the response is 204 with no body.
func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	// Snapshot before deleting so the audit event carries the field values.
	item, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.Repo.DeleteByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	publishItemEvent("delete", item)
	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /v1/items/search?q=. The q parameter is a required
// substring matched against item names.
func (h *ItemHandler) Search(c echo.Context) error {
	keyword := c.QueryParam("q")
	if keyword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q is required"})
	}
	items, err := h.Repo.SearchByName(c.Request().Context(), keyword)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}

// publishItemEvent fires the item.changed event in the background. Publish
// failures are logged inside the publisher and deliberately not surfaced to
// the client: the mutation itself has already committed.
func publishItemEvent(action string, it *model.Item) {
	ev := queue.ItemChangedEvent{
		Action:      action,
		ItemID:      it.ID,
		Name:        it.Name,
		Description: it.Description,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishItemChanged(ctx, ev)
	}()
}
