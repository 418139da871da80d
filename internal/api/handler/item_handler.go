package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/glossario/glossary-api/internal/api/metrics"
	"github.com/glossario/glossary-api/internal/core/domain"
	"github.com/glossario/glossary-api/internal/core/ports"
)

// ItemHandler handles HTTP requests for the item collection. Items carry no
// fixed schema: any JSON object is accepted and stored as-is, with the id
// assigned server-side.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// Create stores a new item.
//
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Arbitrary item fields"
// @Success      201   {object}  object
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	payload := domain.Item{}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	item, err := h.service.Create(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	metrics.ItemMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, item)
}

// Update merges a payload over an existing item.
//
// @Summary      Update an item by id
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      int     true  "Item id"
// @Param        body  body      object  true  "Fields to merge"
// @Success      200   {object}  object
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid item id"})
	}

	payload := domain.Item{}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	item, err := h.service.Update(c.Request().Context(), id, payload)
	if err != nil {
		return err
	}

	metrics.ItemMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, item)
}

// List returns all items in creation order. No authentication required.
//
// @Summary      List items
// @Tags         items
// @Produce      json
// @Success      200  {array}  object
// @Router       /v1/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
