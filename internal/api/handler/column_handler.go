package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ShaharSolema/TasksFlow/internal/api/metrics"
	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/core/ports"
)

// ColumnHandler handles the per-kind board column endpoints.
type ColumnHandler struct {
	service ports.BoardService
}

func NewColumnHandler(service ports.BoardService) *ColumnHandler {
	return &ColumnHandler{service: service}
}

type addColumnRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

type updateColumnRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type reorderColumnsRequest struct {
	Order []string `json:"order" validate:"required"`
}

type columnsResponse struct {
	Columns []domain.Column `json:"columns"`
}

// paramKind parses the :kind path segment, rejecting anything that is not a
// known board kind before the service is reached.
func paramKind(c echo.Context) (domain.Kind, error) {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "kind must be task or job")
	}
	return kind, nil
}

// List handles GET /columns/:kind.
//
// @Summary      List board columns for a kind
// @Tags         columns
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Board kind (task or job)"
// @Success      200   {object}  columnsResponse
// @Failure      400   {object}  map[string]string
// @Router       /columns/{kind} [get]
func (h *ColumnHandler) List(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	kind, err := paramKind(c)
	if err != nil {
		return err
	}

	columns, err := h.service.Columns(c.Request().Context(), userID, kind)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, columnsResponse{Columns: columns})
}

// Add handles POST /columns/:kind.
//
// @Summary      Add a board column
// @Tags         columns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string            true  "Board kind (task or job)"
// @Param        body  body      addColumnRequest  true  "Column details"
// @Success      201   {object}  columnsResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /columns/{kind} [post]
func (h *ColumnHandler) Add(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	kind, err := paramKind(c)
	if err != nil {
		return err
	}

	var req addColumnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	columns, err := h.service.AddColumn(c.Request().Context(), userID, kind, req.Name, req.Color)
	if err != nil {
		return err
	}

	metrics.BoardOps.WithLabelValues(string(kind), "add_column").Inc()
	return c.JSON(http.StatusCreated, columnsResponse{Columns: columns})
}

// Update handles PATCH /columns/:kind/:key.
//
// @Summary      Rename or recolor a board column
// @Tags         columns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string               true  "Board kind (task or job)"
// @Param        key   path      string               true  "Column key"
// @Param        body  body      updateColumnRequest  true  "Fields to change"
// @Success      200   {object}  columnsResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /columns/{kind}/{key} [patch]
func (h *ColumnHandler) Update(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	kind, err := paramKind(c)
	if err != nil {
		return err
	}

	var req updateColumnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	columns, err := h.service.UpdateColumn(c.Request().Context(), userID, kind, c.Param("key"), ports.ColumnPatch{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		return err
	}

	metrics.BoardOps.WithLabelValues(string(kind), "update_column").Inc()
	return c.JSON(http.StatusOK, columnsResponse{Columns: columns})
}

// Delete handles DELETE /columns/:kind/:key.
//
// @Summary      Delete a board column
// @Tags         columns
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Board kind (task or job)"
// @Param        key   path      string  true  "Column key"
// @Success      200   {object}  columnsResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /columns/{kind}/{key} [delete]
func (h *ColumnHandler) Delete(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	kind, err := paramKind(c)
	if err != nil {
		return err
	}

	columns, err := h.service.DeleteColumn(c.Request().Context(), userID, kind, c.Param("key"))
	if err != nil {
		return err
	}

	metrics.BoardOps.WithLabelValues(string(kind), "delete_column").Inc()
	return c.JSON(http.StatusOK, columnsResponse{Columns: columns})
}

// Reorder handles PATCH /columns/:kind.
//
// @Summary      Reorder board columns
// @Tags         columns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string                 true  "Board kind (task or job)"
// @Param        body  body      reorderColumnsRequest  true  "Full permutation of the current column keys"
// @Success      200   {object}  columnsResponse
// @Failure      400   {object}  map[string]string
// @Router       /columns/{kind} [patch]
func (h *ColumnHandler) Reorder(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	kind, err := paramKind(c)
	if err != nil {
		return err
	}

	var req reorderColumnsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	columns, err := h.service.ReorderColumns(c.Request().Context(), userID, kind, req.Order)
	if err != nil {
		return err
	}

	metrics.BoardOps.WithLabelValues(string(kind), "reorder_columns").Inc()
	return c.JSON(http.StatusOK, columnsResponse{Columns: columns})
}
